package storage

import (
	"strings"
	"testing"

	"github.com/ashvell/attain/internal/state"
)

func TestExportPlainRoundTrip(t *testing.T) {
	want := sampleState(t)
	payload, err := Export(want, ExportOptions{})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if IsEncrypted(payload) {
		t.Fatal("plain export reported as encrypted")
	}
	got, err := Import(payload, "")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	assertStatesMatch(t, want, got)
}

func TestExportEncryptedRoundTrip(t *testing.T) {
	want := sampleState(t)
	payload, err := Export(want, ExportOptions{Encrypt: true, Passphrase: "hunter2"})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !IsEncrypted(payload) {
		t.Fatal("encrypted export not detected")
	}
	if strings.Contains(string(payload), "Morning stretch") {
		t.Fatal("plaintext leaked into encrypted export")
	}
	got, err := Import(payload, "hunter2")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	assertStatesMatch(t, want, got)
}

func TestImportWrongPassphrase(t *testing.T) {
	payload, err := Export(sampleState(t), ExportOptions{Encrypt: true, Passphrase: "hunter2"})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	_, err = Import(payload, "*******")
	if err == nil {
		t.Fatal("expected error for wrong passphrase")
	}
	if !strings.Contains(err.Error(), "wrong passphrase") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestImportEncryptedWithoutPassphrase(t *testing.T) {
	payload, err := Export(sampleState(t), ExportOptions{Encrypt: true, Passphrase: "hunter2"})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	_, err = Import(payload, "")
	if err == nil {
		t.Fatal("expected error importing without passphrase")
	}
	if !strings.Contains(err.Error(), "passphrase required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExportEncryptWithoutPassphraseStaysPlain(t *testing.T) {
	payload, err := Export(state.New(nil, nil), ExportOptions{Encrypt: true})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if IsEncrypted(payload) {
		t.Fatal("expected plain export when no passphrase is given")
	}
}

func TestImportGarbage(t *testing.T) {
	if _, err := Import([]byte("not even json"), ""); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
