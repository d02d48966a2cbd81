package bootstrap

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/dumber-mobile/internal/infrastructure/config"
	"github.com/bnema/dumber-mobile/internal/infrastructure/osk"
	"github.com/bnema/dumber-mobile/internal/logging"
	"github.com/bnema/dumber-mobile/internal/ui/theme"
)

const logDirPerm = 0o755

// BusConnector opens the session bus for the keyboard source.
type BusConnector func(ctx context.Context) (osk.Bus, error)

// ParallelInitInput holds the input for the parallel initialization phase.
type ParallelInitInput struct {
	Ctx    context.Context
	Config *config.Config

	// ConnectBus defaults to osk.ConnectSessionBus.
	ConnectBus BusConnector
}

// ParallelInitResult holds what the parallel phase produced.
type ParallelInitResult struct {
	ThemeManager *theme.Manager

	// Bus is nil when no on-screen keyboard service answered or the
	// configured source does not need one.
	Bus osk.Bus

	Duration time.Duration
}

// RunParallelInit creates the theme, probes the keyboard service and
// prepares the log directory concurrently. Only the log directory is fatal;
// a missing keyboard service just means the focus fallback.
func RunParallelInit(input ParallelInitInput) (*ParallelInitResult, error) {
	if input.Config == nil {
		return nil, fmt.Errorf("parallel init: nil config")
	}
	connect := input.ConnectBus
	if connect == nil {
		connect = osk.ConnectSessionBus
	}

	log := logging.FromContext(input.Ctx)
	start := time.Now()
	result := &ParallelInitResult{}
	cfg := input.Config

	g, ctx := errgroup.WithContext(input.Ctx)

	g.Go(func() error {
		result.ThemeManager = theme.NewManager(ctx, cfg)
		return nil
	})

	if needsBus(cfg.Keyboard.Source) {
		g.Go(func() error {
			bus, err := connect(ctx)
			if err != nil {
				log.Debug().Err(err).Msg("on-screen keyboard service not reachable")
				return nil
			}
			result.Bus = bus
			return nil
		})
	}

	if cfg.Logging.EnableFileLog && cfg.Logging.LogDir != "" {
		g.Go(func() error {
			if err := os.MkdirAll(cfg.Logging.LogDir, logDirPerm); err != nil {
				return fmt.Errorf("create log directory: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if result.Bus != nil {
			_ = result.Bus.Close()
		}
		return nil, err
	}

	result.Duration = time.Since(start)
	return result, nil
}

func needsBus(source string) bool {
	switch source {
	case osk.SourceAuto, osk.SourceDBus, "":
		return true
	default:
		return false
	}
}
