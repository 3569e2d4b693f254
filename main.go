package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/formatting-rotor/internal/app"
	"github.com/atomicstack/formatting-rotor/internal/config"
	"github.com/atomicstack/formatting-rotor/internal/logging"
	"github.com/atomicstack/formatting-rotor/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	tty := collectTTYDetails()
	events.App.Start(startupTracePayload(cfg, tty))

	if wantsInteractive(cfg.App) && !tty.interactive() {
		fmt.Fprintln(os.Stderr, "Error: the interactive rotor needs a terminal on stdin and stdout; try the list or show command")
		return 1
	}
	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func wantsInteractive(cfg app.Config) bool {
	return len(cfg.Command) == 0 || strings.EqualFold(cfg.Command[0], "edit")
}

// startupTracePayload records what the process was started with.
func startupTracePayload(cfg config.Config, tty ttyDetails) map[string]interface{} {
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   cfg.Flags,
		"command": cfg.App.Command,
		"config":  cfg,
		"logPath": logging.Path(),
		"tty":     tty,
	}
	for key, lookup := range map[string]func() (string, error){
		"executable": os.Executable,
		"cwd":        os.Getwd,
	} {
		if v, err := lookup(); err == nil {
			payload[key] = v
		} else {
			payload[key+"Error"] = err.Error()
		}
	}
	return payload
}

type ttyDetails struct {
	Probes []ttyProbeResult `json:"probes"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

func collectTTYDetails() ttyDetails {
	return ttyDetails{Probes: []ttyProbeResult{
		probeTerminal("stdin", os.Stdin),
		probeTerminal("stdout", os.Stdout),
		probeTerminal("stderr", os.Stderr),
	}}
}

func probeTerminal(name string, f *os.File) ttyProbeResult {
	result := ttyProbeResult{Name: name}
	if f == nil {
		return result
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return result
	}
	result.IsTerminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Width, result.Height = width, height
	return result
}

func (d ttyDetails) probe(name string) ttyProbeResult {
	for _, p := range d.Probes {
		if p.Name == name {
			return p
		}
	}
	return ttyProbeResult{Name: name}
}

// interactive reports whether both stdin and stdout are terminals.
func (d ttyDetails) interactive() bool {
	return d.probe("stdin").IsTerminal && d.probe("stdout").IsTerminal
}
