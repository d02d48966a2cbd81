package logging

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock advances by step on every call.
func stepClock(start time.Time, step time.Duration) func() time.Time {
	now := start
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func openSmall(t *testing.T, cfg FileConfig) *RotatingFile {
	t.Helper()
	f, err := OpenRotatingFile(cfg)
	require.NoError(t, err)
	f.limit = 16
	f.now = stepClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), time.Minute)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func writeLines(t *testing.T, f *RotatingFile, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := f.Write([]byte("0123456789abcde\n"))
		require.NoError(t, err)
	}
}

func backupNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), backupPrefix) {
			names = append(names, e.Name())
		}
	}
	return names
}

func TestRotatingFile_RotatesWhenFull(t *testing.T) {
	dir := t.TempDir()
	f := openSmall(t, FileConfig{Dir: dir})

	writeLines(t, f, 3)

	assert.Len(t, backupNames(t, dir), 2)
	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcde\n", string(data))
}

func TestRotatingFile_KeepsMaxBackups(t *testing.T) {
	dir := t.TempDir()
	f := openSmall(t, FileConfig{Dir: dir, MaxBackups: 2})

	writeLines(t, f, 5)

	names := backupNames(t, dir)
	require.Len(t, names, 2)
	// Four rotations one minute apart; the two newest survive.
	assert.Contains(t, names, "dumber-mobile-20260301T120300.000000000.log")
	assert.Contains(t, names, "dumber-mobile-20260301T120400.000000000.log")
}

func TestRotatingFile_DropsExpiredBackups(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "dumber-mobile-20260101T000000.000000000.log.gz")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o600))

	f := openSmall(t, FileConfig{Dir: dir, MaxAgeDays: 7})
	writeLines(t, f, 2)

	assert.NoFileExists(t, stale)
	assert.Len(t, backupNames(t, dir), 1)
}

func TestRotatingFile_CompressesBackups(t *testing.T) {
	dir := t.TempDir()
	f := openSmall(t, FileConfig{Dir: dir, Compress: true})

	writeLines(t, f, 2)

	names := backupNames(t, dir)
	require.Len(t, names, 1)
	require.True(t, strings.HasSuffix(names[0], ".log.gz"))

	gz, err := os.Open(filepath.Join(dir, names[0]))
	require.NoError(t, err)
	defer gz.Close()
	zr, err := gzip.NewReader(gz)
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcde\n", string(data))
}

func TestRotatingFile_IgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	foreign := filepath.Join(dir, "dumber-mobile-notes.txt")
	require.NoError(t, os.WriteFile(foreign, []byte("keep"), 0o600))

	f := openSmall(t, FileConfig{Dir: dir, MaxBackups: 1})
	writeLines(t, f, 4)

	assert.FileExists(t, foreign)
}

func TestRotatingFile_WriteAfterClose(t *testing.T) {
	f := openSmall(t, FileConfig{Dir: t.TempDir()})
	require.NoError(t, f.Close())
	require.NoError(t, f.Close())

	_, err := f.Write([]byte("x"))
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestOpenRotatingFile_ResumesExistingSize(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, LogFileName), []byte("0123456789"), 0o600))

	f := openSmall(t, FileConfig{Dir: dir})
	writeLines(t, f, 1)

	assert.Len(t, backupNames(t, dir), 1)
}
