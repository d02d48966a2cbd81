// Package ui provides the GTK4 presentation layer for the browser screen.
package ui

import (
	"context"

	"github.com/bnema/dumber-mobile/internal/application/port"
	"github.com/bnema/dumber-mobile/internal/infrastructure/config"
	"github.com/bnema/dumber-mobile/internal/infrastructure/osk"
	"github.com/bnema/dumber-mobile/internal/ui/theme"
)

// Dependencies holds all injected dependencies for the UI layer.
// This struct is created once at startup and passed to the App.
type Dependencies struct {
	Ctx    context.Context
	Config *config.Config

	// ConfigManager enables hot reload when set.
	ConfigManager *config.Manager

	// InitialURL is loaded instead of the home page when set. It goes through
	// the same normalization as a typed address.
	InitialURL string

	Theme *theme.Manager

	// Keyboard feeds the inset coordinator.
	Keyboard osk.Source

	// MainThread marshals off-thread work (config reloads) onto the GTK loop.
	MainThread port.MainThread
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Config == nil {
		return ErrMissingDependency("Config")
	}
	if d.Keyboard == nil {
		return ErrMissingDependency("Keyboard")
	}
	if d.MainThread == nil {
		return ErrMissingDependency("MainThread")
	}
	return nil
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a new DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
