package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/dumber-mobile/internal/infrastructure/config"
	"github.com/bnema/dumber-mobile/internal/infrastructure/osk"
	mock_osk "github.com/bnema/dumber-mobile/internal/infrastructure/osk/mocks"
)

func TestRunParallelInit_ProbesBusAndBuildsTheme(t *testing.T) {
	ctrl := gomock.NewController(t)
	bus := mock_osk.NewMockBus(ctrl)

	cfg := config.DefaultConfig()
	cfg.Logging.EnableFileLog = false

	result, err := RunParallelInit(ParallelInitInput{
		Ctx:    context.Background(),
		Config: cfg,
		ConnectBus: func(context.Context) (osk.Bus, error) {
			return bus, nil
		},
	})
	require.NoError(t, err)

	assert.NotNil(t, result.ThemeManager)
	assert.Same(t, bus, result.Bus)
}

func TestRunParallelInit_UnreachableBusIsNotFatal(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.EnableFileLog = false

	result, err := RunParallelInit(ParallelInitInput{
		Ctx:    context.Background(),
		Config: cfg,
		ConnectBus: func(context.Context) (osk.Bus, error) {
			return nil, osk.ErrServiceUnavailable
		},
	})
	require.NoError(t, err)
	assert.Nil(t, result.Bus)
}

func TestRunParallelInit_SkipsBusForFocusSource(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Keyboard.Source = osk.SourceFocus
	cfg.Logging.EnableFileLog = false

	called := false
	_, err := RunParallelInit(ParallelInitInput{
		Ctx:    context.Background(),
		Config: cfg,
		ConnectBus: func(context.Context) (osk.Bus, error) {
			called = true
			return nil, errors.New("unexpected")
		},
	})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestRunParallelInit_CreatesLogDir(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Keyboard.Source = osk.SourceNone
	cfg.Logging.EnableFileLog = true
	cfg.Logging.LogDir = filepath.Join(t.TempDir(), "nested", "logs")

	_, err := RunParallelInit(ParallelInitInput{Ctx: context.Background(), Config: cfg})
	require.NoError(t, err)

	info, err := os.Stat(cfg.Logging.LogDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRunParallelInit_LogDirFailureClosesBus(t *testing.T) {
	ctrl := gomock.NewController(t)
	bus := mock_osk.NewMockBus(ctrl)
	bus.EXPECT().Close().Return(nil)

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	cfg := config.DefaultConfig()
	cfg.Logging.EnableFileLog = true
	cfg.Logging.LogDir = filepath.Join(blocker, "logs")

	_, err := RunParallelInit(ParallelInitInput{
		Ctx:    context.Background(),
		Config: cfg,
		ConnectBus: func(context.Context) (osk.Bus, error) {
			return bus, nil
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create log directory")
}

func TestRunParallelInit_NilConfig(t *testing.T) {
	_, err := RunParallelInit(ParallelInitInput{Ctx: context.Background()})
	assert.Error(t, err)
}

func TestStartupTimer(t *testing.T) {
	timer := NewStartupTimer()
	timer.Mark("config")
	timer.MarkDuration("parallel_phase", 25*time.Millisecond)
	timer.Mark("config")

	assert.Equal(t, []string{"config", "parallel_phase"}, timer.Phases())

	d, ok := timer.Duration("parallel_phase")
	require.True(t, ok)
	assert.Equal(t, 25*time.Millisecond, d)

	_, ok = timer.Duration("missing")
	assert.False(t, ok)

	assert.NotPanics(t, func() { timer.Log(context.Background()) })
}
