package logging

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// LogFileName is the active log file inside FileConfig.Dir.
const LogFileName = "dumber-mobile.log"

const (
	defaultMaxSizeMB = 10
	backupPrefix     = "dumber-mobile-"
	backupStamp      = "20060102T150405.000000000"
)

// RotatingFile appends to Dir/LogFileName. A write that would push the file
// past MaxSizeMB first moves it aside as a timestamped backup, gzipped when
// Compress is set. Backups beyond MaxBackups or older than MaxAgeDays are
// removed; zero disables either limit.
type RotatingFile struct {
	mu    sync.Mutex
	cfg   FileConfig
	path  string
	limit int64
	file  *os.File
	size  int64
	now   func() time.Time
}

// OpenRotatingFile opens or creates the log file described by cfg.
func OpenRotatingFile(cfg FileConfig) (*RotatingFile, error) {
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = defaultMaxSizeMB
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	f := &RotatingFile{
		cfg:   cfg,
		path:  filepath.Join(cfg.Dir, LogFileName),
		limit: int64(cfg.MaxSizeMB) << 20,
		now:   time.Now,
	}
	if err := f.open(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *RotatingFile) open() error {
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	f.file, f.size = file, info.Size()
	return nil
}

func (f *RotatingFile) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return 0, os.ErrClosed
	}
	if f.size > 0 && f.size+int64(len(p)) > f.limit {
		if err := f.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := f.file.Write(p)
	f.size += int64(n)
	return n, err
}

// rotate is called with mu held.
func (f *RotatingFile) rotate() error {
	if err := f.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	f.file = nil

	backup := filepath.Join(f.cfg.Dir, backupPrefix+f.now().UTC().Format(backupStamp)+".log")
	renameErr := os.Rename(f.path, backup)

	if err := f.open(); err != nil {
		return errors.Join(renameErr, err)
	}
	if renameErr != nil {
		// Keep appending to the oversized file rather than dropping lines.
		return nil
	}

	// Housekeeping failures are not write failures.
	if f.cfg.Compress {
		_ = gzipFile(backup)
	}
	_ = f.prune()
	return nil
}

type backupFile struct {
	path string
	at   time.Time
}

// backups lists rotated files, newest first.
func (f *RotatingFile) backups() ([]backupFile, error) {
	matches, err := filepath.Glob(filepath.Join(f.cfg.Dir, backupPrefix+"*"))
	if err != nil {
		return nil, err
	}

	out := make([]backupFile, 0, len(matches))
	for _, m := range matches {
		stamp := strings.TrimPrefix(filepath.Base(m), backupPrefix)
		stamp = strings.TrimSuffix(strings.TrimSuffix(stamp, ".gz"), ".log")
		at, err := time.Parse(backupStamp, stamp)
		if err != nil {
			continue
		}
		out = append(out, backupFile{path: m, at: at})
	}
	slices.SortFunc(out, func(a, b backupFile) int { return b.at.Compare(a.at) })
	return out, nil
}

func (f *RotatingFile) prune() error {
	backups, err := f.backups()
	if err != nil {
		return err
	}

	var cutoff time.Time
	if f.cfg.MaxAgeDays > 0 {
		cutoff = f.now().AddDate(0, 0, -f.cfg.MaxAgeDays)
	}

	var errs []error
	for i, b := range backups {
		expired := !cutoff.IsZero() && b.at.Before(cutoff)
		excess := f.cfg.MaxBackups > 0 && i >= f.cfg.MaxBackups
		if expired || excess {
			errs = append(errs, os.Remove(b.path))
		}
	}
	return errors.Join(errs...)
}

// gzipFile replaces path with path.gz.
func gzipFile(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(path+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}

	zw := gzip.NewWriter(out)
	_, copyErr := io.Copy(zw, in)
	if err := errors.Join(copyErr, zw.Close(), out.Close()); err != nil {
		_ = os.Remove(path + ".gz")
		return err
	}
	return os.Remove(path)
}

// Close closes the active file. Later writes fail with os.ErrClosed.
func (f *RotatingFile) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}
