//go:build linux || darwin

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestFormatRlimit(t *testing.T) {
	assert.Equal(t, "infinity", formatRlimit(unix.RLIM_INFINITY))
	assert.Equal(t, "0", formatRlimit(0))
	assert.Equal(t, "1024", formatRlimit(1024))
}

func TestEnableCrashForensics_RaisesSoftToHard(t *testing.T) {
	var before unix.Rlimit
	require.NoError(t, unix.Getrlimit(unix.RLIMIT_CORE, &before))
	t.Cleanup(func() { _ = unix.Setrlimit(unix.RLIMIT_CORE, &before) })

	limit, err := enableCrashForensics()
	require.NoError(t, err)

	assert.Equal(t, limit.hard, limit.soft)
	assert.Equal(t, before.Cur < before.Max, limit.raised)

	var after unix.Rlimit
	require.NoError(t, unix.Getrlimit(unix.RLIMIT_CORE, &after))
	assert.Equal(t, after.Max, after.Cur)
}
