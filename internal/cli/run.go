package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/bwmon/internal/config"
	"github.com/rileyhilliard/bwmon/internal/errors"
	"github.com/rileyhilliard/bwmon/internal/exporter"
	"github.com/rileyhilliard/bwmon/internal/logger"
	"github.com/rileyhilliard/bwmon/internal/monitor"
	"github.com/rileyhilliard/bwmon/internal/netstat"
	"github.com/rileyhilliard/bwmon/internal/ui"
	"github.com/rileyhilliard/bwmon/pkg/sshutil"
	"golang.org/x/term"
)

// exitInterrupted is returned when the user backs out of a prompt.
const exitInterrupted = 130

// monitorCommand runs the dashboard until the user quits or a counter read
// fails. A read failure is returned after the terminal has been restored.
func monitorCommand(cfg *config.Config, pick bool) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerminal,
			"Standard output is not a terminal",
			"bwmon draws a full-screen dashboard. Run it in an interactive terminal, or use 'bwmon interfaces' for plain output.")
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	if !cfg.Colors {
		ui.DisableColors()
	}

	reader, closeReader, err := openReader(cfg.Host)
	if err != nil {
		return err
	}
	defer closeReader()

	name, err := resolveInterface(cfg, reader, pick)
	if err != nil {
		return err
	}
	// Fail before taking over the screen if the interface can't be read.
	if _, err := reader.ReadCounters(name); err != nil {
		return err
	}

	opts := dashboardOptions(cfg, name)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.MetricsAddr != "" {
		metrics := exporter.New()
		if _, err := exporter.Serve(ctx, cfg.MetricsAddr, metrics, logger.NewEnvLogger("[exporter]")); err != nil {
			return err
		}
		opts.Observer = metrics
	}

	p := tea.NewProgram(monitor.NewModel(reader, opts), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Dashboard stopped unexpectedly",
			"Try again with --log-file to capture details.")
	}
	if m, ok := final.(monitor.Model); ok {
		return m.Err()
	}
	return nil
}

// dashboardOptions translates a validated config into model options.
func dashboardOptions(cfg *config.Config, iface string) monitor.Options {
	return monitor.Options{
		Interface:   iface,
		Host:        cfg.Host,
		Delay:       cfg.DelayDuration(),
		Units:       cfg.UnitSystem(),
		Scale:       cfg.ScaleMode(),
		RunningPeak: cfg.Peak,
		Lines:       cfg.Lines,
		ASCII:       !cfg.Colors,
		Logger:      logger.NewEnvLogger("[monitor]"),
	}
}

// setupLogging points the standard logger at path, or discards it when
// path is empty. The dashboard owns stdout and stderr while it runs.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(path, "")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot open log file "+path,
			"Check the directory exists and is writable.")
	}
	return func() { f.Close() }, nil
}

// openReader returns the counter source for host, or the local one when
// host is empty. The returned func releases the SSH connection.
func openReader(host string) (netstat.Reader, func(), error) {
	if host == "" {
		return netstat.Local(), func() {}, nil
	}

	client, err := sshutil.Dial(host, sshutil.DefaultOptions())
	if err != nil {
		return nil, nil, err
	}
	return netstat.NewRemoteReader(client), func() {
		client.Close()
		sshutil.CloseAgent()
	}, nil
}

// resolveInterface returns the interface to monitor: the configured one,
// the user's pick, or the auto-detected default.
func resolveInterface(cfg *config.Config, reader netstat.Reader, pick bool) (string, error) {
	if cfg.Interface != "" {
		return cfg.Interface, nil
	}
	if pick {
		return pickInterface(reader)
	}
	if cfg.Host != "" {
		return netstat.DetectFromReader(reader)
	}
	return netstat.DetectDefault(netstat.SystemLister)
}

// pickInterface asks the user to choose among the interfaces reader knows.
func pickInterface(reader netstat.Reader) (string, error) {
	ifaces, err := reader.Interfaces()
	if err != nil {
		return "", err
	}

	options := interfaceOptions(ifaces)
	if len(options) == 0 {
		return "", errors.New(errors.ErrIface,
			"No network interfaces found",
			"Check the counter source is readable.")
	}

	var name string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select interface to monitor").
				Options(options...).
				Value(&name),
		),
	)
	if err := form.Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return "", errors.NewExitError(exitInterrupted)
		}
		return "", errors.WrapWithCode(err, errors.ErrIface,
			"Couldn't get your selection",
			"Try again or pass the interface with -i.")
	}
	return name, nil
}

// interfaceOptions labels each interface with its totals.
func interfaceOptions(ifaces []netstat.Interface) []huh.Option[string] {
	options := make([]huh.Option[string], len(ifaces))
	for i, iface := range ifaces {
		label := fmt.Sprintf("%-12s rx %s  tx %s", iface.Name,
			humanize.IBytes(iface.Counters.RX), humanize.IBytes(iface.Counters.TX))
		options[i] = huh.NewOption(label, iface.Name)
	}
	return options
}
