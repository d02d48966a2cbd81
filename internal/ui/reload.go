package ui

import (
	"context"

	"github.com/bnema/dumber-mobile/internal/application/usecase"
	"github.com/bnema/dumber-mobile/internal/infrastructure/config"
	"github.com/bnema/dumber-mobile/internal/infrastructure/osk"
	"github.com/bnema/dumber-mobile/internal/logging"
	"github.com/bnema/dumber-mobile/internal/ui/component"
)

// reloadTargets are the live objects that pick up settings from a changed
// config file. Engine settings and the keyboard source need a restart.
type reloadTargets struct {
	navigateUC  *usecase.NavigateUseCase
	keyboard    osk.Source
	pulses      []*component.Pulse
	placeholder func(text string)
	theme       func(cfg *config.Config)
}

// apply runs on the main thread.
func (r reloadTargets) apply(ctx context.Context, previous, cfg *config.Config) {
	log := logging.FromContext(ctx)

	if r.navigateUC != nil && cfg.HomePage != r.navigateUC.HomePage() {
		r.navigateUC.SetHomePage(cfg.HomePage)
		log.Info().Str("home_page", cfg.HomePage).Msg("home page updated")
	}

	if r.keyboard != nil {
		r.keyboard.SetHeight(cfg.Keyboard.Height)
	}

	for _, p := range r.pulses {
		p.SetHold(uint(cfg.Appearance.PulseDimMs))
	}

	if r.placeholder != nil {
		r.placeholder(cfg.Appearance.Placeholder)
	}

	if r.theme != nil {
		r.theme(cfg)
	}

	if previous == nil {
		return
	}
	if previous.Engine != cfg.Engine {
		log.Info().Msg("engine settings changed; restart to apply")
	}
	if previous.Keyboard.Source != cfg.Keyboard.Source {
		log.Info().
			Str("source", string(cfg.Keyboard.Source)).
			Msg("keyboard source changed; restart to apply")
	}
}
