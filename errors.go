package dpx

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSignature reports that the stream does not start with the
	// SDPX magic number.
	ErrInvalidSignature = errors.New("dpx: invalid signature")
	// ErrTruncated reports that the stream ended before the header or
	// pixel data was complete.
	ErrTruncated = errors.New("dpx: truncated file")
)

// DimensionsError reports header dimensions that exceed the configured
// maximum or would overflow buffer size arithmetic.
type DimensionsError struct {
	Width  uint32
	Height uint32
}

func (e *DimensionsError) Error() string {
	return fmt.Sprintf("dpx: image dimensions too large: width %d x height %d", e.Width, e.Height)
}
