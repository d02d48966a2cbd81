//go:build !linux && !darwin

package main

import (
	"errors"
	"runtime/debug"
)

type coreLimit struct {
	raised bool
}

func enableCrashForensics() (coreLimit, error) {
	debug.SetTraceback("crash")
	return coreLimit{}, errors.New("core limits unsupported on this platform")
}

func (coreLimit) Soft() string { return "unknown" }
func (coreLimit) Hard() string { return "unknown" }
