package dpx

import "fmt"

// Config holds the image geometry read from a DPX header.
type Config struct {
	Width  uint32
	Height uint32
}

// RowWriter receives decoded scanlines in strictly increasing row order.
// Samples are interleaved host-order RGBA uint16, width*4 per row. The slice
// is reused between calls and must not be retained.
type RowWriter interface {
	SetRow(y int, samples []uint16) error
}

// Image stores a decoded DPX frame as interleaved 16-bit RGBA samples in
// host byte order, non-linear (gamma-encoded) values.
type Image struct {
	Width  int
	Height int
	// Layer is the name the single image plane should carry when handed
	// to a layered host.
	Layer string
	Pix   []uint16
}

// NewImage allocates a zeroed image of the given geometry.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Layer:  backgroundLayer,
		Pix:    make([]uint16, width*height*numChannels),
	}
}

// SetRow copies one scanline into the image, implementing RowWriter.
func (im *Image) SetRow(y int, samples []uint16) error {
	if y < 0 || y >= im.Height {
		return fmt.Errorf("dpx: row %d out of bounds (height %d)", y, im.Height)
	}
	if len(samples) != im.Width*numChannels {
		return fmt.Errorf("dpx: row has %d samples, want %d", len(samples), im.Width*numChannels)
	}
	copy(im.Pix[y*im.Width*numChannels:], samples)
	return nil
}

// At returns the RGBA samples of the pixel at (x, y).
func (im *Image) At(x, y int) (r, g, b, a uint16) {
	i := (y*im.Width + x) * numChannels
	return im.Pix[i], im.Pix[i+1], im.Pix[i+2], im.Pix[i+3]
}

// DecodeOptions controls decoding limits.
type DecodeOptions struct {
	MaxDimension uint32 // maximum accepted width/height; 0 means DefaultMaxDimension
}

func decodeOptions(optFns []func(*DecodeOptions)) DecodeOptions {
	opts := DecodeOptions{MaxDimension: DefaultMaxDimension}
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}
	if opts.MaxDimension == 0 {
		opts.MaxDimension = DefaultMaxDimension
	}
	return opts
}
