package dpx

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
)

type header struct {
	width  uint32
	height uint32
}

// Decode reads a DPX stream and returns the full decoded image.
func Decode(r io.ReadSeeker, optFns ...func(*DecodeOptions)) (*Image, error) {
	var img *Image
	err := DecodeInto(r, func(cfg Config) (RowWriter, error) {
		img = NewImage(int(cfg.Width), int(cfg.Height))
		return img, nil
	}, optFns...)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// DecodeInto reads a DPX stream and hands decoded scanlines to a caller-owned
// sink. The open callback runs once, after the header has been read and the
// geometry validated, and returns the sink rows are written to. On error no
// further rows are written and the sink is never completed; cleanup of a
// partially written sink is the caller's concern.
func DecodeInto(r io.ReadSeeker, open func(Config) (RowWriter, error), optFns ...func(*DecodeOptions)) error {
	opts := decodeOptions(optFns)

	hdr, err := readHeader(r)
	if err != nil {
		return err
	}
	rowSize, err := validateGeometry(hdr.width, hdr.height, opts.MaxDimension)
	if err != nil {
		return err
	}
	sink, err := open(Config{Width: hdr.width, Height: hdr.height})
	if err != nil {
		return err
	}
	return streamRows(r, hdr.width, hdr.height, rowSize, sink)
}

// DecodeConfig reads only the header and returns the image geometry without
// decoding pixel data.
func DecodeConfig(r io.ReadSeeker) (Config, error) {
	hdr, err := readHeader(r)
	if err != nil {
		return Config{}, err
	}
	return Config{Width: hdr.width, Height: hdr.height}, nil
}

// DecodeFile opens a DPX file in binary read mode and decodes it.
func DecodeFile(path string, optFns ...func(*DecodeOptions)) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("dpx: open: %w", err)
	}
	defer f.Close()

	return Decode(f, optFns...)
}

// readHeader checks the magic number and reads the dimension pair from the
// fixed header layout. The read cursor is left at the start of pixel data.
func readHeader(r io.ReadSeeker) (header, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return header{}, fmt.Errorf("%w: magic number: %v", ErrTruncated, err)
	}
	if string(magic[:]) != dpxMagic {
		return header{}, ErrInvalidSignature
	}
	if _, err := r.Seek(dimensionsOffset, io.SeekStart); err != nil {
		return header{}, fmt.Errorf("%w: seek to dimensions: %v", ErrTruncated, err)
	}
	var dims [8]byte
	if _, err := io.ReadFull(r, dims[:]); err != nil {
		return header{}, fmt.Errorf("%w: dimensions: %v", ErrTruncated, err)
	}
	return header{
		width:  binary.BigEndian.Uint32(dims[0:4]),
		height: binary.BigEndian.Uint32(dims[4:8]),
	}, nil
}

// validateGeometry bounds the dimensions and computes the scanline byte size
// with checked multiplication. Pure, so it backs the pre-allocation rejection
// path without touching the stream.
func validateGeometry(width, height, maxDim uint32) (int, error) {
	if width == 0 || height == 0 || width > maxDim || height > maxDim {
		return 0, &DimensionsError{Width: width, Height: height}
	}
	rowSize := uint64(width) * numChannels * bytesPerSample
	if rowSize > math.MaxInt || uint64(height) > math.MaxInt/rowSize {
		return 0, &DimensionsError{Width: width, Height: height}
	}
	return int(rowSize), nil
}

// streamRows reads scanlines in order, converts samples to host byte order
// and hands each row to the sink. Row buffers are allocated once and reused.
func streamRows(r io.Reader, width, height uint32, rowSize int, sink RowWriter) error {
	raw := make([]byte, rowSize)
	samples := make([]uint16, int(width)*numChannels)
	for y := 0; y < int(height); y++ {
		if _, err := io.ReadFull(r, raw); err != nil {
			return fmt.Errorf("%w: pixel row %d: %v", ErrTruncated, y, err)
		}
		decodeRowSamples(samples, raw)
		if err := sink.SetRow(y, samples); err != nil {
			return err
		}
	}
	return nil
}

// decodeRowSamples converts one scanline of big-endian uint16 samples to
// host order. Kept free of I/O so byte order handling is testable on its own.
func decodeRowSamples(dst []uint16, src []byte) {
	for i := range dst {
		dst[i] = binary.BigEndian.Uint16(src[2*i:])
	}
}
