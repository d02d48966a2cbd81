package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/bnema/dumber-mobile/internal/bootstrap"
	"github.com/bnema/dumber-mobile/internal/cli/cmd"
	"github.com/bnema/dumber-mobile/internal/domain/build"
	"github.com/bnema/dumber-mobile/internal/infrastructure/config"
	"github.com/bnema/dumber-mobile/internal/infrastructure/osk"
	"github.com/bnema/dumber-mobile/internal/logging"
	"github.com/bnema/dumber-mobile/internal/ui"
	"github.com/bnema/dumber-mobile/internal/ui/mainloop"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// initialURL holds the address to open on startup (from browse command).
var initialURL string

func main() {
	// Run GUI mode for browse command
	if len(os.Args) > 1 && os.Args[1] == "browse" {
		if len(os.Args) > 2 {
			initialURL = os.Args[2]
		}
		os.Args = os.Args[:1]
		os.Exit(runGUI())
		return
	}

	// Pass build info to CLI
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	// Default: run CLI (shows help if no subcommand)
	cmd.Execute()
}

func runGUI() int {
	runtime.LockOSThread()
	timer := bootstrap.NewStartupTimer()
	limit, limitErr := enableCrashForensics()

	cfgManager, cfg := initConfig()
	timer.Mark("config")

	ctx, logCloser := initStartupContext(cfg)
	if logCloser != nil {
		defer logCloser.Close()
	}
	timer.Mark("logger")
	log := logging.FromContext(ctx)
	if limitErr != nil {
		log.Debug().Err(limitErr).Msg("crash forensics unavailable")
	} else {
		log.Debug().
			Str("soft", limit.Soft()).
			Str("hard", limit.Hard()).
			Bool("raised", limit.raised).
			Msg("core dump limits")
	}

	initResult, err := bootstrap.RunParallelInit(bootstrap.ParallelInitInput{
		Ctx:    ctx,
		Config: cfg,
	})
	if err != nil {
		log.Error().Err(err).Msg("initialization failed")
		return 1
	}
	timer.MarkDuration("parallel_phase", initResult.Duration)

	dispatcher := mainloop.NewDispatcher()
	keyboard, err := osk.Open(ctx, cfg.Keyboard, initResult.Bus, dispatcher)
	if err != nil {
		log.Error().Err(err).Msg("failed to open keyboard source")
		return 1
	}
	log.Debug().Str("source", keyboard.Name()).Msg("keyboard source ready")
	timer.Mark("keyboard")

	app, err := ui.New(&ui.Dependencies{
		Ctx:           ctx,
		Config:        cfg,
		ConfigManager: cfgManager,
		InitialURL:    initialURL,
		Theme:         initResult.ThemeManager,
		Keyboard:      keyboard,
		MainThread:    dispatcher,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create application")
		_ = keyboard.Close()
		return 1
	}
	timer.Mark("ui_deps")
	timer.Log(ctx)

	setupSignalHandler(ctx, app)

	return app.Run(ctx, os.Args)
}

// initConfig loads config.toml. A broken file is fatal for the GUI so the
// user sees the validation error instead of a silently different browser.
func initConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize configuration: %v\n", err)
		os.Exit(1)
	}
	if err := mgr.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return mgr, mgr.Get()
}

func initStartupContext(cfg *config.Config) (context.Context, io.Closer) {
	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	var closer io.Closer

	if cfg.Logging.EnableFileLog {
		fileLogger, fileCloser, err := logging.NewWithFile(cfg.Logging.Level, cfg.Logging.Format, logging.FileConfig{
			Dir:        cfg.Logging.LogDir,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   cfg.Logging.Compress,
		})
		if err != nil {
			logger.Warn().Err(err).Str("dir", cfg.Logging.LogDir).Msg("file logging disabled")
		} else {
			logger = fileLogger
			closer = fileCloser
		}
	}

	ctx := logging.WithSession(logging.WithContext(context.Background(), logger), logging.GenerateSessionID())
	logging.FromContext(ctx).Info().
		Str("version", version).
		Str("commit", commit).
		Str("build_date", buildDate).
		Msg("starting dumber-mobile")

	return ctx, closer
}

func setupSignalHandler(ctx context.Context, app *ui.App) {
	log := logging.FromContext(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		signal.Stop(sigCh)
		log.Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
		app.Quit()
	}()
}
