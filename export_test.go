package dpx

import (
	"bytes"
	"image/color"
	"testing"
)

func TestNRGBA64Export(t *testing.T) {
	data := buildDPX(2, 2,
		[]uint16{0x0102, 0x0304, 0x0506, 0xFFFF, 0, 0, 0, 0xFFFF},
		[]uint16{0xFFFF, 0, 0, 0xFFFF, 0, 0xFFFF, 0, 0x8000},
	)
	img, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	out := img.NRGBA64()
	if got := out.Bounds(); got.Dx() != 2 || got.Dy() != 2 {
		t.Fatalf("bounds %v, want 2x2", got)
	}
	want := color.NRGBA64{R: 0x0102, G: 0x0304, B: 0x0506, A: 0xFFFF}
	if got := out.NRGBA64At(0, 0); got != want {
		t.Fatalf("pixel (0,0) = %+v, want %+v", got, want)
	}
	want = color.NRGBA64{G: 0xFFFF, A: 0x8000}
	if got := out.NRGBA64At(1, 1); got != want {
		t.Fatalf("pixel (1,1) = %+v, want %+v", got, want)
	}
}
