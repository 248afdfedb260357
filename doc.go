// Package dpx decodes the DPX (Digital Picture Exchange) raster container format.
//
// The decoder covers the uncompressed 16-bit big-endian RGBA variant: it
// validates the SDPX signature, reads image geometry from the fixed header
// layout, and streams scanlines into an in-memory RGBA buffer with big-endian
// to host byte order conversion. Host application concerns (file type
// registration, UI, metadata propagation) are left to the caller.
package dpx
