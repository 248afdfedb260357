package dpx_test

import (
	"os"
	"path/filepath"

	"github.com/vearutop/dpx"
)

func ExampleIsDPX() {
	f, err := os.Open(filepath.FromSlash("testdata/sample.dpx"))
	if err != nil {
		return
	}
	defer f.Close()

	_, _ = dpx.IsDPX(f)
}

func ExampleDecode() {
	f, err := os.Open(filepath.FromSlash("testdata/sample.dpx"))
	if err != nil {
		return
	}
	defer f.Close()

	img, err := dpx.Decode(f)
	if err != nil {
		return
	}
	_ = img.NRGBA64()
}

func ExampleDecodeConfig() {
	f, err := os.Open(filepath.FromSlash("testdata/sample.dpx"))
	if err != nil {
		return
	}
	defer f.Close()

	_, _ = dpx.DecodeConfig(f)
}
