//go:build !sdl2

// Command graysdemo renders a single hard-coded glyph outline through
// this module's rasterizer and writes the resulting coverage bitmap as a
// PNG.
//
// This file is the default build: no platform window, just a Render call
// followed by a PNG encode. Build with -tags sdl2 for the interactive
// variant in main_sdl2.go.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/smoothtype/grays"
)

func main() {
	var (
		width   = flag.Int("width", 64, "bitmap width in pixels")
		height  = flag.Int("height", 64, "bitmap height in pixels")
		out     = flag.String("out", "graysdemo.png", "output PNG path")
		poolKiB = flag.Int("pool-kib", 16, "cell pool size in KiB")
	)
	flag.Parse()

	pool, err := grays.NewPool(make([]byte, *poolKiB*1024))
	if err != nil {
		log.Fatalf("allocating cell pool: %v", err)
	}
	r := grays.New(pool)
	bmp := grays.NewBitmap(*width, *height)

	if err := r.Render(demoOutline(), bmp.Width(), bmp.Height(), bmp.SpanFunc(), grays.Params{}); err != nil {
		log.Fatalf("render: %v", err)
	}

	img := image.NewGray(image.Rect(0, 0, bmp.Width(), bmp.Height()))
	for y := 0; y < bmp.Height(); y++ {
		for x := 0; x < bmp.Width(); x++ {
			img.SetGray(x, y, color.Gray{Y: bmp.At(x, y)})
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("creating %s: %v", *out, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("encoding PNG: %v", err)
	}

	fmt.Printf("wrote %s (%dx%d)\n", *out, bmp.Width(), bmp.Height())
}
