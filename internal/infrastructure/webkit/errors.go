package webkit

import "errors"

var (
	ErrEngineNotInitialized = errors.New("webkit: web view not initialized")
	ErrEngineDestroyed      = errors.New("webkit: web view destroyed")
	ErrInvalidURL           = errors.New("webkit: invalid URL")
)
