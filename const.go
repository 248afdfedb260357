package dpx

const dpxMagic = "SDPX"

const (
	// dimensionsOffset is the file offset of the width/height pair,
	// two consecutive big-endian uint32 values.
	dimensionsOffset = 772
	// pixelDataOffset is where scanlines begin, directly after the
	// dimension fields.
	pixelDataOffset = dimensionsOffset + 8
)

const (
	numChannels    = 4 // R, G, B, A
	bytesPerSample = 2 // uint16 per channel
)

// DefaultMaxDimension caps width and height before any allocation, so a
// corrupted header cannot request a huge buffer.
const DefaultMaxDimension = 524288

const backgroundLayer = "Background"
