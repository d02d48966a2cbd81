package controller

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/bnema/dumber-mobile/internal/application/port"
	"github.com/bnema/dumber-mobile/internal/application/usecase"
	"github.com/bnema/dumber-mobile/internal/logging"
)

// NavigationControls are the three press-feedback targets of the control bar.
type NavigationControls struct {
	Back    port.Pulsable
	Reload  port.Pulsable
	Forward port.Pulsable
}

// NavigationController relays back/forward/reload to the engine.
// Every activation pulses the invoking control, whether or not navigation happens.
type NavigationController struct {
	engine     port.WebEngine
	field      port.AddressField
	controls   NavigationControls
	navigateUC *usecase.NavigateUseCase

	logger *zerolog.Logger
}

// NewNavigationController creates the control bar controller.
func NewNavigationController(
	ctx context.Context,
	engine port.WebEngine,
	field port.AddressField,
	controls NavigationControls,
	navigateUC *usecase.NavigateUseCase,
) *NavigationController {
	return &NavigationController{
		engine:     engine,
		field:      field,
		controls:   controls,
		navigateUC: navigateUC,
		logger:     logging.FromContext(ctx),
	}
}

// GoBack steps back in the engine history when possible.
func (c *NavigationController) GoBack(ctx context.Context) error {
	c.controls.Back.Pulse()

	out, err := c.navigateUC.GoBack(ctx, c.engine)
	if err != nil {
		c.logger.Warn().Err(err).Msg("go back failed")
		return err
	}
	if !out.Navigated {
		c.logger.Debug().Msg("go back ignored: no history")
	}
	return nil
}

// GoForward steps forward in the engine history when possible.
func (c *NavigationController) GoForward(ctx context.Context) error {
	c.controls.Forward.Pulse()

	out, err := c.navigateUC.GoForward(ctx, c.engine)
	if err != nil {
		c.logger.Warn().Err(err).Msg("go forward failed")
		return err
	}
	if !out.Navigated {
		c.logger.Debug().Msg("go forward ignored: no history")
	}
	return nil
}

// Reload loads the address field's text as-is and enables gesture navigation.
// Text that does not parse leaves only the pulse.
func (c *NavigationController) Reload(ctx context.Context) error {
	c.controls.Reload.Pulse()

	_, err := c.navigateUC.Reload(ctx, c.engine, c.field.Text())
	if err != nil {
		if errors.Is(err, usecase.ErrUnparseableAddress) {
			c.logger.Debug().Err(err).Msg("reload ignored")
		} else {
			c.logger.Warn().Err(err).Msg("reload failed")
		}
		return err
	}
	return nil
}

// LoadHome loads the configured home page. Called once when the screen is built.
func (c *NavigationController) LoadHome(ctx context.Context) error {
	if _, err := c.navigateUC.LoadHome(ctx, c.engine); err != nil {
		c.logger.Error().Err(err).Str("home", c.navigateUC.HomePage()).Msg("failed to load home page")
		return err
	}
	return nil
}
