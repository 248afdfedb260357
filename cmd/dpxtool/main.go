package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
	"github.com/vearutop/dpx"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "detect":
		if err := runDetect(os.Args[2:]); err != nil {
			fail(err)
		}
	case "info":
		if err := runInfo(os.Args[2:]); err != nil {
			fail(err)
		}
	case "convert":
		if err := runConvert(os.Args[2:]); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: dpxtool <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  detect  -in input.dpx")
	fmt.Fprintln(os.Stderr, "  info    -in input.dpx")
	fmt.Fprintln(os.Stderr, "  convert -in input.dpx -out output.png [-w 1920] [-h 1080] [-interp lanczos3] [-max 524288]")
}

func runDetect(args []string) error {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	inPath := fs.String("in", "", "input file")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("missing required arguments")
	}
	f, err := os.Open(filepath.Clean(*inPath))
	if err != nil {
		return err
	}
	defer f.Close()
	ok, err := dpx.IsDPX(f)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintln(os.Stdout, "dpx")
		return nil
	}
	fmt.Fprintln(os.Stdout, "not dpx")
	return nil
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	inPath := fs.String("in", "", "input DPX file")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("missing required arguments")
	}
	f, err := os.Open(filepath.Clean(*inPath))
	if err != nil {
		return err
	}
	defer f.Close()
	cfg, err := dpx.DecodeConfig(f)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%dx%d rgba16be\n", cfg.Width, cfg.Height)
	return nil
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	inPath := fs.String("in", "", "input DPX file")
	outPath := fs.String("out", "", "output PNG file")
	width := fs.Uint("w", 0, "output width (0 keeps source width)")
	height := fs.Uint("h", 0, "output height (0 keeps source height)")
	interpName := fs.String("interp", "lanczos3", "scaling filter: nearest, bilinear, bicubic, mitchell, lanczos2, lanczos3")
	maxDim := fs.Uint("max", 0, "maximum accepted image dimension (0 uses the default)")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}
	interp, err := interpolation(*interpName)
	if err != nil {
		return err
	}

	decoded, err := dpx.DecodeFile(*inPath, func(opts *dpx.DecodeOptions) {
		opts.MaxDimension = uint32(*maxDim)
	})
	if err != nil {
		return err
	}

	var img image.Image = decoded.NRGBA64()
	if *width > 0 || *height > 0 {
		img = resize.Resize(*width, *height, img, interp)
	}

	f, err := os.Create(filepath.Clean(*outPath))
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func interpolation(name string) (resize.InterpolationFunction, error) {
	switch name {
	case "nearest":
		return resize.NearestNeighbor, nil
	case "bilinear":
		return resize.Bilinear, nil
	case "bicubic":
		return resize.Bicubic, nil
	case "mitchell":
		return resize.MitchellNetravali, nil
	case "lanczos2":
		return resize.Lanczos2, nil
	case "lanczos3":
		return resize.Lanczos3, nil
	default:
		return 0, fmt.Errorf("unknown interpolation %q", name)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
