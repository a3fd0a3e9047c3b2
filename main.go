package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/algoviz/cliparse"
	"github.com/danielhkuo/algoviz/controllers"
	"github.com/danielhkuo/algoviz/dispatch"
	"github.com/danielhkuo/algoviz/page"
	"github.com/danielhkuo/algoviz/reveal"
	"github.com/danielhkuo/algoviz/tui"
)

func main() {
	// Load .env before flags so env fallbacks see it
	if err := cliparse.LoadEnvFile(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	interactive := !cfg.InputGiven && !cfg.Plain && isTerminal(os.Stdout)
	if !cfg.InputGiven && !interactive {
		slog.Error("input required when not running interactively", "command", cfg.Command)
		os.Exit(1)
	}

	closeLog, err := setupLogging(cfg, interactive)
	if err != nil {
		slog.Error("logging setup failed", "error", err)
		os.Exit(1)
	}

	// signal.Notify requires the channel to be buffered
	ctx, cancel := context.WithCancel(context.Background())
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		cancel()
	}()

	code := run(ctx, cfg, interactive, os.Stdout)
	cancel()
	closeLog()
	os.Exit(code)
}

// run builds the page for cfg.Command and either clicks once, printing
// the page as it changes, or hands it to the interactive page
func run(ctx context.Context, cfg cliparse.Config, interactive bool, stdout io.Writer) int {
	ctrl, err := newController(cfg)
	if err != nil {
		slog.Error("page setup failed", "error", err)
		return 1
	}

	styles := tui.DefaultStyles()

	if interactive {
		slog.Info("starting interactive page", "command", cfg.Command, "server", cfg.ServerURL)
		if err := tui.Run(ctx, ctrl, styles); err != nil {
			slog.Error("interactive page failed", "error", err)
			return 1
		}
		return 0
	}

	doc := ctrl.Document()
	switch cfg.Command {
	case cliparse.CommandSort:
		doc.ByID(page.IDNumbersInput).SetValue(cfg.Input)
	case cliparse.CommandParity:
		doc.ByID(page.IDBinaryInput).SetValue(cfg.Input)
		if cfg.Mode != "" {
			doc.ByID(page.IDParityType).SetValue(cfg.Mode)
		}
	}

	stop := tui.NewPrinter(stdout, styles).Attach(doc)
	defer stop()

	if err := ctrl.Click(ctx); err != nil {
		slog.Debug("click failed", "command", cfg.Command, "error", err)
		return 1
	}
	return 0
}

func newController(cfg cliparse.Config) (controllers.Controller, error) {
	client := dispatch.NewClient(cfg.ServerURL, cfg.Timeout)
	revealer := reveal.New(cfg.ShowDelay, cfg.StepDelay)

	switch cfg.Command {
	case cliparse.CommandSort:
		return controllers.NewSortController(page.NewSortPage(cfg.ShowSteps), client, revealer)
	case cliparse.CommandParity:
		ctrl, err := controllers.NewParityController(page.NewParityPage(cfg.ShowSteps), client, revealer)
		if err != nil {
			return nil, err
		}
		ctrl.StrictBinary = cfg.StrictBinary
		return ctrl, nil
	default:
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}
}

// setupLogging installs the default slog logger. The interactive page
// owns the terminal, so there logs go to the log file or nowhere.
func setupLogging(cfg cliparse.Config, interactive bool) (func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return closeFn, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
