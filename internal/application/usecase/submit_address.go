package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dumber-mobile/internal/application/port"
	"github.com/bnema/dumber-mobile/internal/domain/entity"
	"github.com/bnema/dumber-mobile/internal/domain/url"
	"github.com/bnema/dumber-mobile/internal/logging"
)

// SubmitAddressUseCase turns address-bar text into an engine load.
type SubmitAddressUseCase struct{}

// NewSubmitAddressUseCase creates a new submit-address use case.
func NewSubmitAddressUseCase() *SubmitAddressUseCase {
	return &SubmitAddressUseCase{}
}

// SubmitAddressInput contains parameters for an address submission.
type SubmitAddressInput struct {
	Text   string
	Engine port.WebEngine
}

// SubmitAddressOutput contains the address handed to the engine.
type SubmitAddressOutput struct {
	Address entity.Address
}

// Execute normalizes the submitted text and requests a load.
// Text that does not parse after normalization yields ErrUnparseableAddress
// and the engine is left untouched.
func (uc *SubmitAddressUseCase) Execute(ctx context.Context, input SubmitAddressInput) (*SubmitAddressOutput, error) {
	log := logging.FromContext(ctx)

	normalized, err := url.Resolve(input.Text)
	if err != nil {
		log.Debug().
			Str("text", logging.TruncateURL(input.Text, logURLMaxLen)).
			Msg("dropping unparseable address")
		return nil, fmt.Errorf("%w: %w", ErrUnparseableAddress, err)
	}

	if err := input.Engine.Load(ctx, normalized); err != nil {
		return nil, fmt.Errorf("failed to load address: %w", err)
	}

	log.Info().
		Str("url", logging.TruncateURL(normalized, logURLMaxLen)).
		Msg("address submitted")

	return &SubmitAddressOutput{Address: entity.Address(normalized)}, nil
}
