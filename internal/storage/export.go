package storage

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ashvell/attain/internal/state"
)

// ExportOptions controls the portable export format.
type ExportOptions struct {
	Encrypt    bool
	Passphrase string
}

type encryptedExport struct {
	Encrypted bool   `json:"encrypted"`
	Nonce     string `json:"nonce"`
	Data      string `json:"data"`
}

// Export serializes the state to the snapshot document, optionally
// wrapped in AES-GCM encryption keyed by the passphrase.
func Export(st *state.State, opts ExportOptions) ([]byte, error) {
	doc, err := encodeState(st)
	if err != nil {
		return nil, wrapErr("export", "state", err)
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, wrapErr("export", "state", err)
	}
	if opts.Encrypt && opts.Passphrase != "" {
		return encryptData(payload, opts.Passphrase)
	}
	return payload, nil
}

// IsEncrypted reports whether payload carries the encrypted wrapper.
func IsEncrypted(payload []byte) bool {
	var wrapper encryptedExport
	return json.Unmarshal(payload, &wrapper) == nil && wrapper.Encrypted
}

// Import parses an exported document, decrypting it first when it
// carries the encrypted wrapper.
func Import(payload []byte, passphrase string) (*state.State, error) {
	var wrapper encryptedExport
	if err := json.Unmarshal(payload, &wrapper); err == nil && wrapper.Encrypted {
		plain, err := decryptData(wrapper, passphrase)
		if err != nil {
			return nil, err
		}
		payload = plain
	}
	var doc snapshot
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, wrapErr("import", "state", err)
	}
	st, err := decodeState(doc)
	if err != nil {
		return nil, wrapErr("import", "state", err)
	}
	return st, nil
}

func encryptData(payload []byte, passphrase string) ([]byte, error) {
	hash := sha256.Sum256([]byte(passphrase))
	block, err := aes.NewCipher(hash[:])
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	ciphertext := gcm.Seal(nil, nonce, payload, nil)
	wrapped := encryptedExport{
		Encrypted: true,
		Nonce:     base64.StdEncoding.EncodeToString(nonce),
		Data:      base64.StdEncoding.EncodeToString(ciphertext),
	}
	return json.Marshal(wrapped)
}

func decryptData(wrapper encryptedExport, passphrase string) ([]byte, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("import: export is encrypted, passphrase required")
	}
	nonce, err := base64.StdEncoding.DecodeString(wrapper.Nonce)
	if err != nil {
		return nil, wrapErr("import", "nonce", err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(wrapper.Data)
	if err != nil {
		return nil, wrapErr("import", "payload", err)
	}
	hash := sha256.Sum256([]byte(passphrase))
	block, err := aes.NewCipher(hash[:])
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("import: malformed nonce")
	}
	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("import: wrong passphrase or corrupted export")
	}
	return plain, nil
}
