package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atomicstack/formatting-rotor/internal/catalog"
	"github.com/atomicstack/formatting-rotor/internal/logging/events"
	"github.com/atomicstack/formatting-rotor/internal/rotor"
	"github.com/atomicstack/formatting-rotor/internal/settings"
	"github.com/atomicstack/formatting-rotor/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	StorePath    string
	StoreKind    string
	CatalogPath  string
	Width        int
	Height       int
	ShowFooter   bool
	HighContrast bool
	Verbose      bool
	Command      []string
}

// Run executes the requested subcommand, or the interactive rotor when none
// was given.
func Run(cfg Config) error {
	return run(cfg, os.Stdout, runProgram)
}

type programRunner func(*ui.Model) error

func run(cfg Config, out io.Writer, program programRunner) error {
	name := ""
	var args []string
	if len(cfg.Command) > 0 {
		name = strings.ToLower(cfg.Command[0])
		args = cfg.Command[1:]
	}
	events.App.Command(name, args)

	switch name {
	case "", "edit":
		return runInteractive(cfg, out, program)
	case "list":
		return runList(cfg, out, strings.Join(args, " "))
	case "show":
		return runShow(cfg, out)
	case "help":
		return runHelp(out)
	default:
		return fmt.Errorf("unknown command %q (want edit, list, show or help)", name)
	}
}

func runInteractive(cfg Config, out io.Writer, program programRunner) error {
	c, schema, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cfg, schema)
	if err != nil {
		return err
	}
	defer closeStore()

	model, err := ui.NewModel(c, store, schema, ui.Config{
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		HighContrast: cfg.HighContrast,
	})
	if err != nil {
		return err
	}
	if err := program(model); err != nil {
		return err
	}
	if cfg.Verbose {
		reportOutcome(out, model.Rotor())
	}
	return nil
}

func runProgram(model *ui.Model) error {
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func reportOutcome(out io.Writer, r *rotor.Rotor) {
	switch r.Outcome() {
	case rotor.OutcomeSaved:
		changed := r.Session().Changed()
		if len(changed) == 0 {
			fmt.Fprintln(out, "Saved, no settings changed")
			return
		}
		fmt.Fprintf(out, "Saved %d changed setting(s): %s\n", len(changed), strings.Join(changed, ", "))
	case rotor.OutcomeCancelled:
		fmt.Fprintln(out, "Cancelled, no settings written")
	}
}

// loadCatalog returns the built-in catalog and schema, or the ones defined in
// the YAML file at path. Settings declared in the file override the built-in
// schema entries with the same key.
func loadCatalog(path string) (*catalog.Catalog, settings.Schema, error) {
	if strings.TrimSpace(path) == "" {
		return catalog.Default(), settings.DefaultSchema(), nil
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	extra, err := settings.LoadSchemaFile(path)
	if err != nil {
		return nil, nil, err
	}
	return c, settings.DefaultSchema().Merge(extra), nil
}

func openStore(cfg Config, schema settings.Schema) (settings.Store, func(), error) {
	path := cfg.StorePath
	if path == "" && cfg.StoreKind != settings.BackendMemory {
		defaultPath, err := settings.DefaultPath(cfg.StoreKind)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve store path: %w", err)
		}
		path = defaultPath
	}
	store, err := settings.Open(cfg.StoreKind, path, schema)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	closeStore := func() {}
	if closer, ok := store.(io.Closer); ok {
		closeStore = func() { _ = closer.Close() }
	}
	return store, closeStore, nil
}
