package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/ashvell/attain/internal/calendar"
	"github.com/ashvell/attain/internal/config"
	"github.com/ashvell/attain/internal/models"
	"github.com/ashvell/attain/internal/notify"
	"github.com/ashvell/attain/internal/report"
	"github.com/ashvell/attain/internal/storage"
	"github.com/ashvell/attain/internal/tui"
	"github.com/ashvell/attain/internal/util"
)

func main() {
	dataDir := util.DataDir(config.AppName)
	cfg, err := config.LoadOrCreate(filepath.Join(dataDir, config.ConfigFileName), dataDir)
	util.MustSucceed("load config", err)

	store, cleanup := openStore(cfg)
	defer cleanup()

	if len(os.Args) > 1 {
		runCommand(os.Args[1], os.Args[2:], cfg, store)
		return
	}

	st, err := store.Load()
	util.MustSucceed("load state", err)

	loc := reminderLocation(cfg)
	cal := calendar.NewGregorian(loc)
	clock := calendar.SystemClock{}

	scheduler := notify.NewScheduler(loc, func(a models.Achievement, rt models.ReminderTime) {
		log.Printf("reminder %02d:%02d: %s", rt.Hour, rt.Minute, a.Title)
	})
	util.LogError("sync reminders", scheduler.Sync(st.Achievements(), cfg.NotificationsEnabled))
	scheduler.Start()
	defer scheduler.Stop()

	m := tui.NewDashboard(st, store, cal, clock, cfg.Theme, cfg.DataDir)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func openStore(cfg config.Config) (storage.Store, func()) {
	if cfg.Store == config.StoreSQLite {
		store, err := storage.OpenSQLite(filepath.Join(cfg.DataDir, config.DBFileName))
		util.MustSucceed("open database", err)
		return store, func() { util.LogError("close database", store.Close()) }
	}
	return storage.NewSnapshotStore(filepath.Join(cfg.DataDir, config.SnapshotFileName)), func() {}
}

func reminderLocation(cfg config.Config) *time.Location {
	if cfg.ReminderLocation == "" || cfg.ReminderLocation == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(cfg.ReminderLocation)
	if err != nil {
		util.LogError("load reminder location", err)
		return time.Local
	}
	return loc
}

func runCommand(name string, args []string, cfg config.Config, store storage.Store) {
	switch name {
	case "export":
		runExport(args, store)
	case "import":
		runImport(args, store)
	case "report":
		runReport(args, cfg, store)
	default:
		fmt.Printf("unknown command %q\n", name)
		fmt.Println("usage: attain [export|import|report]")
		os.Exit(2)
	}
}

func runExport(args []string, store storage.Store) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("out", "attain_export.json", "output file")
	encrypt := fs.Bool("encrypt", false, "encrypt the export with a passphrase")
	_ = fs.Parse(args)

	st, err := store.Load()
	util.MustSucceed("load state", err)

	opts := storage.ExportOptions{}
	if *encrypt {
		pass, err := promptPassphrase("Export passphrase: ")
		util.MustSucceed("read passphrase", err)
		opts = storage.ExportOptions{Encrypt: true, Passphrase: pass}
	}
	payload, err := storage.Export(st, opts)
	util.MustSucceed("export state", err)
	util.MustSucceed("write export", os.WriteFile(*out, payload, 0o600))
	fmt.Printf("Exported to %s\n", *out)
}

func runImport(args []string, store storage.Store) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	in := fs.String("in", "attain_export.json", "input file")
	_ = fs.Parse(args)

	payload, err := os.ReadFile(*in)
	util.MustSucceed("read import", err)

	pass := ""
	if storage.IsEncrypted(payload) {
		pass, err = promptPassphrase("Import passphrase: ")
		util.MustSucceed("read passphrase", err)
	}
	st, err := storage.Import(payload, pass)
	util.MustSucceed("import state", err)
	util.MustSucceed("save state", store.Save(st))
	fmt.Printf("Imported %d achievements, %d completions\n", len(st.Achievements()), len(st.Completions()))
}

func runReport(args []string, cfg config.Config, store storage.Store) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	days := fs.Int("days", config.StatsWindowDays, "window length in days")
	out := fs.String("out", "", "output file (default report_<date>.pdf in the data dir)")
	_ = fs.Parse(args)

	st, err := store.Load()
	util.MustSucceed("load state", err)

	cal := calendar.NewGregorian(time.Local)
	end := cal.StartOfDay(time.Now())
	rng := models.Range{Start: cal.AddDays(end, -*days), End: end}
	stats := st.Statistics(rng, cal, time.Now())

	path := *out
	if path == "" {
		path = filepath.Join(cfg.DataDir, fmt.Sprintf("report_%s.pdf", end.Format("2006-01-02")))
	}
	util.MustSucceed("generate report", report.Generate(stats, rng, path))
	fmt.Printf("Report written: %s\n", path)
}

func promptPassphrase(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
