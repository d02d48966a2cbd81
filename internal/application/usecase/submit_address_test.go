package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumber-mobile/internal/application/port/mocks"
	"github.com/bnema/dumber-mobile/internal/domain/entity"
	"github.com/bnema/dumber-mobile/internal/domain/url"
)

func TestSubmitAddress_PrefixesSchemeAndLoads(t *testing.T) {
	engine := mocks.NewMockWebEngine(t)
	engine.EXPECT().Load(mock.Anything, "https:example.com").Return(nil).Once()

	uc := NewSubmitAddressUseCase()
	out, err := uc.Execute(context.Background(), SubmitAddressInput{Text: "example.com", Engine: engine})

	require.NoError(t, err)
	assert.Equal(t, entity.Address("https:example.com"), out.Address)
}

func TestSubmitAddress_LowercasesWholeText(t *testing.T) {
	engine := mocks.NewMockWebEngine(t)
	engine.EXPECT().Load(mock.Anything, "https://example.com/docs").Return(nil).Once()

	uc := NewSubmitAddressUseCase()
	out, err := uc.Execute(context.Background(), SubmitAddressInput{Text: "HTTPS://Example.com/Docs", Engine: engine})

	require.NoError(t, err)
	assert.Equal(t, entity.Address("https://example.com/docs"), out.Address)
}

func TestSubmitAddress_UnparseableNeverReachesEngine(t *testing.T) {
	engine := mocks.NewMockWebEngine(t)

	uc := NewSubmitAddressUseCase()
	for _, text := range []string{"", "two words", "bad#%zz"} {
		out, err := uc.Execute(context.Background(), SubmitAddressInput{Text: text, Engine: engine})

		require.Error(t, err, text)
		assert.Nil(t, out)
		assert.ErrorIs(t, err, ErrUnparseableAddress)
		assert.ErrorIs(t, err, url.ErrInvalidAddress)
	}
	engine.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
}

func TestSubmitAddress_WrapsEngineError(t *testing.T) {
	engineErr := errors.New("destroyed")
	engine := mocks.NewMockWebEngine(t)
	engine.EXPECT().Load(mock.Anything, "https:example.com").Return(engineErr).Once()

	uc := NewSubmitAddressUseCase()
	_, err := uc.Execute(context.Background(), SubmitAddressInput{Text: "example.com", Engine: engine})

	require.Error(t, err)
	assert.ErrorIs(t, err, engineErr)
	assert.NotErrorIs(t, err, ErrUnparseableAddress)
}
