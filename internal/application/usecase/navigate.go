package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/dumber-mobile/internal/application/port"
	"github.com/bnema/dumber-mobile/internal/domain/entity"
	"github.com/bnema/dumber-mobile/internal/domain/url"
	"github.com/bnema/dumber-mobile/internal/logging"
)

// logURLMaxLen is the max length for URLs in log messages.
const logURLMaxLen = 60

// NavigateUseCase relays navigation requests to the engine's own history stack.
type NavigateUseCase struct {
	mu       sync.RWMutex
	homePage string
}

// NewNavigateUseCase creates a new navigation use case.
// homePage is loaded when the screen first appears.
func NewNavigateUseCase(homePage string) *NavigateUseCase {
	return &NavigateUseCase{homePage: homePage}
}

// SetHomePage replaces the home page, typically after a config reload.
func (uc *NavigateUseCase) SetHomePage(homePage string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.homePage = homePage
}

// HomePage returns the configured home page.
func (uc *NavigateUseCase) HomePage() string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.homePage
}

// NavigateInput contains parameters for navigation.
type NavigateInput struct {
	URL    string
	Engine port.WebEngine
}

// NavigateOutput contains the result of a navigation request.
type NavigateOutput struct {
	// Navigated is false when the request was dropped.
	Navigated bool
	Address   entity.Address
}

// Execute parses URL as-is, loads it and enables swipe back/forward on the engine.
// No normalization is applied: this is the path for reload and the home page.
func (uc *NavigateUseCase) Execute(ctx context.Context, input NavigateInput) (*NavigateOutput, error) {
	log := logging.FromContext(ctx)

	if _, err := url.Parse(input.URL); err != nil {
		log.Debug().
			Str("text", logging.TruncateURL(input.URL, logURLMaxLen)).
			Msg("not reloading unparseable address")
		return nil, fmt.Errorf("%w: %w", ErrUnparseableAddress, err)
	}

	if err := input.Engine.Load(ctx, input.URL); err != nil {
		return nil, fmt.Errorf("failed to load URL: %w", err)
	}
	input.Engine.SetBackForwardGestures(true)

	log.Info().
		Str("url", logging.TruncateURL(input.URL, logURLMaxLen)).
		Msg("navigation initiated")

	return &NavigateOutput{Navigated: true, Address: entity.Address(input.URL)}, nil
}

// LoadHome loads the configured home page.
func (uc *NavigateUseCase) LoadHome(ctx context.Context, engine port.WebEngine) (*NavigateOutput, error) {
	return uc.Execute(ctx, NavigateInput{URL: uc.HomePage(), Engine: engine})
}

// Reload issues a fresh load of the address-bar text.
func (uc *NavigateUseCase) Reload(ctx context.Context, engine port.WebEngine, text string) (*NavigateOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("reloading page")

	return uc.Execute(ctx, NavigateInput{URL: text, Engine: engine})
}

// Availability reads the engine's back/forward flags.
func (uc *NavigateUseCase) Availability(engine port.WebEngine) entity.NavigationAvailability {
	return entity.NavigationAvailability{
		CanGoBack:    engine.CanGoBack(),
		CanGoForward: engine.CanGoForward(),
	}
}

// GoBack navigates back when the engine has backward history; otherwise it is a no-op.
func (uc *NavigateUseCase) GoBack(ctx context.Context, engine port.WebEngine) (*NavigateOutput, error) {
	log := logging.FromContext(ctx)

	if !engine.CanGoBack() {
		log.Debug().Msg("no backward history")
		return &NavigateOutput{}, nil
	}

	if err := engine.GoBack(ctx); err != nil {
		return nil, fmt.Errorf("failed to go back: %w", err)
	}
	return &NavigateOutput{Navigated: true}, nil
}

// GoForward navigates forward when the engine has forward history; otherwise it is a no-op.
func (uc *NavigateUseCase) GoForward(ctx context.Context, engine port.WebEngine) (*NavigateOutput, error) {
	log := logging.FromContext(ctx)

	if !engine.CanGoForward() {
		log.Debug().Msg("no forward history")
		return &NavigateOutput{}, nil
	}

	if err := engine.GoForward(ctx); err != nil {
		return nil, fmt.Errorf("failed to go forward: %w", err)
	}
	return &NavigateOutput{Navigated: true}, nil
}
