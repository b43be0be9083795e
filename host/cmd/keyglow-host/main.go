package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"keyglow/config"
	"keyglow/core"
	"keyglow/host/monitor"
	"keyglow/host/serial"
	"keyglow/host/settings"
	"keyglow/host/sim"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: keyglow-host [flags] <command> [args]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  monitor          decode trace frames from the keyboard console")
	fmt.Fprintln(os.Stderr, "  sim [script]     run a key script against the simulated board (stdin if omitted)")
	fmt.Fprintln(os.Stderr, "  profile          print the effective firmware profile as JSON")
	fmt.Fprintln(os.Stderr, "")
	flag.PrintDefaults()
}

func main() {
	settingsPath := flag.String("config", "", "settings file (default: $KEYGLOW_CONFIG or ~/.config/keyglow/config.toml)")
	device := flag.String("device", "", "serial device path (overrides settings)")
	profilePath := flag.String("profile", "", "firmware profile JSON (overrides settings)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	s, err := settings.Load(*settingsPath)
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}
	if *device != "" {
		s.Serial.Device = *device
	}
	if *profilePath != "" {
		s.Profile = *profilePath
	}

	l, err := newLogger(*verbose, s.Log.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	zap.ReplaceGlobals(l)
	defer l.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cmd := flag.Arg(0); cmd {
	case "monitor":
		err = runMonitor(ctx, l, s)
	case "sim":
		err = runSim(l, s, flag.Arg(1))
	case "profile":
		err = runProfile(s)
	default:
		l.Error("unknown command", zap.String("command", cmd))
		usage()
		os.Exit(2)
	}
	if err != nil {
		l.Fatal("command failed", zap.String("command", flag.Arg(0)), zap.Error(err))
	}
}

func newLogger(verbose bool, level string) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func loadProfile(s settings.Settings) (*core.Config, error) {
	if s.Profile == "" {
		cfg := core.DefaultConfig()
		return &cfg, nil
	}
	data, err := os.ReadFile(s.Profile)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	cfg, err := config.LoadConfig(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", s.Profile, err)
	}
	return cfg, nil
}

func runMonitor(ctx context.Context, l *zap.Logger, s settings.Settings) error {
	port, err := serial.Open(&serial.Config{
		Device:      s.Serial.Device,
		Baud:        s.Serial.Baud,
		ReadTimeout: s.Serial.ReadTimeout,
	})
	if err != nil {
		return err
	}
	defer port.Close()

	if err := port.Flush(); err != nil {
		l.Warn("flush console", zap.Error(err))
	}

	m := monitor.New(timeoutReader{port}, l)
	l.Info("monitoring",
		zap.String("device", s.Serial.Device),
		zap.String("session", m.Session().String()))
	return m.Run(ctx)
}

// timeoutReader hides the zero-length reads a serial read timeout produces
type timeoutReader struct {
	r io.Reader
}

func (t timeoutReader) Read(p []byte) (int, error) {
	for {
		n, err := t.r.Read(p)
		if n > 0 || err != nil {
			return n, err
		}
	}
}

func runSim(l *zap.Logger, s settings.Settings, scriptPath string) error {
	cfg, err := loadProfile(s)
	if err != nil {
		return err
	}

	var src io.Reader = os.Stdin
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		src = f
	}

	// Same fields the monitor logs for a real board
	core.SetTraceSink(func(evt core.TraceEvent) {
		l.Debug(core.TraceKindName(evt.Kind), monitor.Fields(evt)...)
	})

	board := sim.NewBoard(core.GMMKProANSI(), sim.Stored{
		Mode:  0,
		Speed: 128,
		HSV:   core.HSV{H: 0, S: 255, V: 255},
	})
	runner := sim.NewRunner(board, core.DefaultPalette, *cfg, os.Stdout)
	return runner.Run(src)
}

func runProfile(s settings.Settings) error {
	cfg, err := loadProfile(s)
	if err != nil {
		return err
	}
	data, err := config.MarshalProfile(*cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}
