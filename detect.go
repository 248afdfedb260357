package dpx

import (
	"errors"
	"io"
)

// IsDPX performs a cheap format check without decoding the image.
// It reads at most 4 bytes from r. A stream shorter than the magic number is
// reported as not DPX rather than as an error.
func IsDPX(r io.Reader) (bool, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, nil
		}
		return false, err
	}
	return string(magic[:]) == dpxMagic, nil
}
