package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"codeberg.org/mutker/cpumon/internal/app"
	"codeberg.org/mutker/cpumon/internal/config"
	"codeberg.org/mutker/cpumon/internal/errors"
	"codeberg.org/mutker/cpumon/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/pflag"
)

const logFilePerm = 0o644

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Printf("Usage of cpumon:\n%s", config.Usage())
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	if !cfg.Monitor && !term.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "stdout is not a terminal, falling back to monitor mode")
		cfg.Monitor = true
	}

	level, err := logger.ParseLevel(cfg.EffectiveLogLevel().String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse log level: %v\n", err)
		return 1
	}

	out, closeLog, err := logOutput(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		return 1
	}
	defer closeLog()

	logger.Init(level, out, logger.IsService())
	logger.Debug().
		Str("variant", string(cfg.Variant)).
		Int("window", cfg.Window).
		Str("bounds", cfg.Bounds).
		Bool("monitor", cfg.Monitor).
		Msg("Config loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	a, err := app.New(cfg, app.WithProgramOptions(tea.WithAltScreen(), tea.WithoutSignalHandler()))
	if err != nil {
		report(err, errors.ErrInitApp, "Failed to initialize")
		return 1
	}

	if err := a.Run(ctx); err != nil {
		report(err, errors.ErrMainLoop, "Error in main loop")
		return 1
	}

	logger.Info().Msg("Exiting...")
	return 0
}

// logOutput picks where logs go. The chart owns stdout, so logs are
// discarded there unless a log file is configured.
func logOutput(cfg *config.Config) (io.Writer, func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePerm)
		if err != nil {
			return nil, nil, errors.New().Wrap(errors.ErrOpenLogFile, err)
		}
		return f, func() { f.Close() }, nil
	}

	if cfg.Monitor {
		return os.Stdout, func() {}, nil
	}

	return io.Discard, func() {}, nil
}

// report logs err under code, unless err already carries it, and echoes
// it to stderr since the log may be discarded.
func report(err error, code errors.ErrorCode, msg string) {
	var appErr errors.Error
	if !errors.As(err, &appErr) || !errors.HasCode(err, code) {
		appErr = errors.New().Wrap(code, err)
	}
	logger.ErrorWithCode(appErr).Msg(msg)
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, appErr)
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}
