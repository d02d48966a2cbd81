package usecase

import "errors"

// ErrUnparseableAddress is returned when address-bar text cannot become a navigable address.
// Callers drop the submission silently; the error exists for logging.
var ErrUnparseableAddress = errors.New("unparseable address")
