package dataloader

import (
	"errors"
	"fmt"
)

var (
	ErrLoaderClosed = errors.New("loader is closed")
)

// MismatchError rejects every key of a dispatch whose batch function
// returned a result slice that is not positionally aligned with the
// requested keys.
type MismatchError struct {
	Requested int
	Returned  int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("misaligned batch result: requested %d keys, batch function returned %d values", e.Requested, e.Returned)
}
