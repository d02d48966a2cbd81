// Package controller provides controllers that bridge user input, use cases and the web engine.
package controller

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/bnema/dumber-mobile/internal/application/port"
	"github.com/bnema/dumber-mobile/internal/application/usecase"
	"github.com/bnema/dumber-mobile/internal/logging"
)

// AddressBarController owns the address field.
// It turns submissions into loads and mirrors the engine's location back into the field.
type AddressBarController struct {
	field    port.AddressField
	engine   port.WebEngine
	submitUC *usecase.SubmitAddressUseCase

	logger *zerolog.Logger
}

// NewAddressBarController creates a controller for field driving engine.
func NewAddressBarController(
	ctx context.Context,
	field port.AddressField,
	engine port.WebEngine,
	submitUC *usecase.SubmitAddressUseCase,
) *AddressBarController {
	return &AddressBarController{
		field:    field,
		engine:   engine,
		submitUC: submitUC,
		logger:   logging.FromContext(ctx),
	}
}

// Bind registers for navigation-finished notifications from the engine.
func (c *AddressBarController) Bind(ctx context.Context) {
	c.engine.OnNavigationFinished(func(resolved string) {
		c.NavigationFinished(ctx, resolved)
	})
}

// Activate submits the field's current text. Wired to the field's Enter key.
func (c *AddressBarController) Activate(ctx context.Context) error {
	return c.Submit(ctx, c.field.Text())
}

// Submit normalizes raw and asks the engine to load it.
// An unparseable address is a silent no-op: the field keeps its text and focus.
// The returned error is for logging only.
func (c *AddressBarController) Submit(ctx context.Context, raw string) error {
	out, err := c.submitUC.Execute(ctx, usecase.SubmitAddressInput{
		Text:   raw,
		Engine: c.engine,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUnparseableAddress) {
			c.logger.Debug().Err(err).Msg("address submission ignored")
		} else {
			c.logger.Warn().Err(err).Msg("address submission failed")
		}
		return err
	}

	c.field.ReleaseFocus()
	c.logger.Debug().Str("address", out.Address.String()).Msg("address submitted")
	return nil
}

// BeginEditing selects the whole field so typing replaces the current address.
func (c *AddressBarController) BeginEditing() {
	c.field.SelectAll()
}

// NavigationFinished shows exactly the address the engine resolved.
func (c *AddressBarController) NavigationFinished(ctx context.Context, resolved string) {
	c.field.SetText(resolved)
	logging.FromContext(ctx).Debug().
		Str("url", logging.TruncateURL(resolved, 60)).
		Msg("address field synced")
}
