package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/dumber-mobile/internal/application/port"
	"github.com/bnema/dumber-mobile/internal/application/usecase"
	"github.com/bnema/dumber-mobile/internal/infrastructure/config"
	"github.com/bnema/dumber-mobile/internal/infrastructure/webkit"
	"github.com/bnema/dumber-mobile/internal/logging"
	"github.com/bnema/dumber-mobile/internal/ui/component"
	"github.com/bnema/dumber-mobile/internal/ui/controller"
	"github.com/bnema/dumber-mobile/internal/ui/coordinator"
	"github.com/bnema/dumber-mobile/internal/ui/layout"
	"github.com/bnema/dumber-mobile/internal/ui/mainloop"
	"github.com/bnema/dumber-mobile/internal/ui/window"
)

const (
	// AppID is the application identifier for GTK.
	AppID = "com.github.bnema.dumber-mobile"

	configReloadKey = "config-reload"
)

// App wraps the GTK Application and manages the browser screen lifecycle.
type App struct {
	deps       *Dependencies
	gtkApp     *gtk.Application
	mainWindow *window.MainWindow

	engine port.WebEngine
	screen *layout.Screen
	timer  component.Timer

	addressBar    *controller.AddressBarController
	navigation    *controller.NavigationController
	keyboardCoord *coordinator.KeyboardInsetCoordinator
	navigateUC    *usecase.NavigateUseCase

	reload    reloadTargets
	current   *config.Config
	coalescer *mainloop.Coalescer

	releaseKeyboard func()

	// lifecycle
	ctx    context.Context
	cancel context.CancelCauseFunc
}

// New creates a new App with the given dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancelCause(deps.Ctx)

	return &App{
		deps:      deps,
		current:   deps.Config,
		coalescer: mainloop.NewCoalescer(deps.MainThread),
		timer:     component.GlibTimer,
		ctx:       ctx,
		cancel:    cancel,
	}, nil
}

// Run creates the GTK application and blocks in its main loop.
func (a *App) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating GTK application")

	a.gtkApp = gtk.NewApplication(AppID, gio.ApplicationNonUnique)
	if a.gtkApp == nil {
		log.Error().Msg("failed to create GTK application")
		return 1
	}

	a.gtkApp.ConnectActivate(func() {
		a.onActivate(a.ctx)
	})
	a.gtkApp.ConnectShutdown(func() {
		a.onShutdown(a.ctx)
	})

	log.Info().Msg("starting GTK main loop")
	return a.gtkApp.Run(args)
}

// onActivate is called when the GTK application is activated.
func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application activated")

	if a.mainWindow != nil {
		a.mainWindow.Show()
		return
	}

	if a.deps.Theme != nil {
		a.deps.Theme.ApplyToDisplay(ctx, gdk.DisplayGetDefault())
	}

	if err := a.buildScreen(ctx); err != nil {
		log.Error().Err(err).Msg("failed to build browser screen")
		a.gtkApp.Quit()
		return
	}

	a.initControllers(ctx)
	a.initKeyboardAvoidance(ctx)
	a.initConfigReload(ctx)
	a.loadInitialAddress(ctx)

	a.mainWindow.Show()
	a.screen.FitViewport(a.mainWindow.ViewportHeight())
}

// buildScreen creates the window, the engine and the widget tree.
func (a *App) buildScreen(ctx context.Context) error {
	cfg := a.deps.Config

	mw, err := window.New(ctx, a.gtkApp)
	if err != nil {
		return err
	}
	a.mainWindow = mw

	engine, err := webkit.NewEngine(ctx, cfg.Engine)
	if err != nil {
		return fmt.Errorf("create web engine: %w", err)
	}
	a.engine = engine

	factory := layout.NewGtkWidgetFactory()
	a.screen = layout.BuildScreen(factory, factory.WrapWidget(engine.Widget()), layout.ScreenOptions{
		Placeholder: cfg.Appearance.Placeholder,
	})
	a.mainWindow.SetContent(a.screen.Scroller.GtkWidget())
	a.mainWindow.OnViewportChanged(a.screen.FitViewport)

	return nil
}

// initControllers wires the address field and control bar to the engine.
func (a *App) initControllers(ctx context.Context) {
	log := logging.FromContext(ctx)
	cfg := a.deps.Config

	address := component.NewAddressEntry(a.screen.Address, a.screen.WebView)

	hold := uint(cfg.Appearance.PulseDimMs)
	back := component.NewPulse(a.screen.Back, hold, a.timer)
	reload := component.NewPulse(a.screen.Reload, hold, a.timer)
	forward := component.NewPulse(a.screen.Forward, hold, a.timer)

	a.navigateUC = usecase.NewNavigateUseCase(cfg.HomePage)

	a.addressBar = controller.NewAddressBarController(ctx, address, a.engine, usecase.NewSubmitAddressUseCase())
	a.addressBar.Bind(ctx)

	a.navigation = controller.NewNavigationController(ctx, a.engine, address, controller.NavigationControls{
		Back:    back,
		Reload:  reload,
		Forward: forward,
	}, a.navigateUC)

	// Submission and navigation failures are logged by the controllers.
	address.OnActivate(func() { _ = a.addressBar.Activate(ctx) })
	address.OnFocusChanged(func(focused bool) {
		if focused {
			a.addressBar.BeginEditing()
		}
		a.deps.Keyboard.FocusChanged(focused)
	})

	a.screen.Back.ConnectClicked(func() { _ = a.navigation.GoBack(ctx) })
	a.screen.Reload.ConnectClicked(func() { _ = a.navigation.Reload(ctx) })
	a.screen.Forward.ConnectClicked(func() { _ = a.navigation.GoForward(ctx) })

	a.reload = reloadTargets{
		navigateUC:  a.navigateUC,
		keyboard:    a.deps.Keyboard,
		pulses:      []*component.Pulse{back, reload, forward},
		placeholder: a.screen.Address.SetPlaceholderText,
		theme: func(cfg *config.Config) {
			if a.deps.Theme != nil {
				a.deps.Theme.UpdateFromConfig(ctx, cfg, gdk.DisplayGetDefault())
			}
		},
	}

	log.Debug().Msg("controllers wired")
}

// initKeyboardAvoidance subscribes to keyboard events while the window is mapped.
func (a *App) initKeyboardAvoidance(ctx context.Context) {
	surface := component.NewInsetSurface(a.screen.Scroller, a.screen.Content)
	a.keyboardCoord = coordinator.NewKeyboardInsetCoordinator(ctx, a.deps.Keyboard, surface)

	a.mainWindow.OnVisibilityChanged(func(visible bool) {
		if visible {
			a.attachKeyboard(ctx)
			return
		}
		a.detachKeyboard()
	})
}

func (a *App) attachKeyboard(ctx context.Context) {
	if a.releaseKeyboard != nil {
		return
	}
	a.releaseKeyboard = a.keyboardCoord.Attach(ctx)
}

func (a *App) detachKeyboard() {
	if a.releaseKeyboard == nil {
		return
	}
	a.releaseKeyboard()
	a.releaseKeyboard = nil
}

// initConfigReload applies config file edits without a restart.
func (a *App) initConfigReload(ctx context.Context) {
	log := logging.FromContext(ctx)

	mgr := a.deps.ConfigManager
	if mgr == nil {
		return
	}

	mgr.OnConfigChange(func(cfg *config.Config) {
		// Called from the fsnotify goroutine; saves arrive in bursts.
		a.coalescer.Post(configReloadKey, func() {
			a.reload.apply(ctx, a.current, cfg)
			a.current = cfg
		})
	})

	if err := mgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}
}

// loadInitialAddress opens the command-line address, or the home page.
func (a *App) loadInitialAddress(ctx context.Context) {
	log := logging.FromContext(ctx)

	if a.deps.InitialURL != "" {
		if err := a.addressBar.Submit(ctx, a.deps.InitialURL); err == nil {
			return
		}
		log.Warn().Str("address", a.deps.InitialURL).Msg("initial address rejected, opening home page")
	}

	if err := a.navigation.LoadHome(ctx); err != nil {
		log.Error().Err(err).Msg("failed to load home page")
	}
}

// onShutdown is called when the GTK application is shutting down.
func (a *App) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application shutting down")

	a.detachKeyboard()
	a.coalescer.Destroy()

	// Cancel context to signal all goroutines
	a.cancel(errors.New("application shutdown"))

	if err := a.deps.Keyboard.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close keyboard source")
	}
	if closer, ok := a.deps.MainThread.(interface{ Close() }); ok {
		closer.Close()
	}

	log.Info().Msg("application shutdown complete")
}

// Quit stops the main loop. Safe to call from any goroutine.
func (a *App) Quit() {
	a.deps.MainThread.Post(func() {
		if a.gtkApp != nil {
			a.gtkApp.Quit()
		}
	})
}
