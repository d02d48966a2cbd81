//go:build linux || darwin

package main

import (
	"fmt"
	"runtime/debug"
	"strconv"

	"golang.org/x/sys/unix"
)

// coreLimit is RLIMIT_CORE as left by enableCrashForensics.
type coreLimit struct {
	soft, hard uint64
	raised     bool
}

// enableCrashForensics makes a crash inside WebKit or GTK dump all goroutines
// and leave a core file, as far as the hard limit allows.
func enableCrashForensics() (coreLimit, error) {
	debug.SetTraceback("crash")

	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_CORE, &rl); err != nil {
		return coreLimit{}, fmt.Errorf("read RLIMIT_CORE: %w", err)
	}
	limit := coreLimit{soft: rl.Cur, hard: rl.Max}
	if rl.Cur >= rl.Max {
		return limit, nil
	}

	rl.Cur = rl.Max
	if err := unix.Setrlimit(unix.RLIMIT_CORE, &rl); err != nil {
		return limit, fmt.Errorf("raise RLIMIT_CORE: %w", err)
	}
	limit.soft, limit.raised = rl.Max, true
	return limit, nil
}

func (l coreLimit) Soft() string { return formatRlimit(l.soft) }
func (l coreLimit) Hard() string { return formatRlimit(l.hard) }

func formatRlimit(value uint64) string {
	if value == unix.RLIM_INFINITY {
		return "infinity"
	}
	return strconv.FormatUint(value, 10)
}
