//go:build sdl2

// Interactive variant of graysdemo: renders demoOutline's coverage into
// an SDL2 window through a streaming grayscale texture, redrawn each
// frame.
package main

import (
	"log"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/smoothtype/grays"
)

const (
	winWidth  = 256
	winHeight = 256
)

func main() {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		log.Fatalf("sdl.Init: %v", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("grays demo", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		winWidth, winHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		log.Fatalf("sdl.CreateWindow: %v", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			log.Fatalf("sdl.CreateRenderer: %v", err)
		}
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGBA32, sdl.TEXTUREACCESS_STREAMING, winWidth, winHeight)
	if err != nil {
		log.Fatalf("CreateTexture: %v", err)
	}
	defer texture.Destroy()

	pool, err := grays.NewPoolWithCapacity(4096)
	if err != nil {
		log.Fatalf("allocating cell pool: %v", err)
	}
	r := grays.New(pool)
	bmp := grays.NewBitmap(winWidth, winHeight)
	pixels := make([]byte, winWidth*winHeight*4)

	outline := demoOutline()
	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				running = false
			}
		}

		bmp.Clear()
		if err := r.Render(outline, bmp.Width(), bmp.Height(), bmp.SpanFunc(), grays.Params{}); err != nil {
			log.Fatalf("render: %v", err)
		}
		for i := 0; i < winWidth*winHeight; i++ {
			c := bmp.Data[i]
			pixels[i*4+0] = c
			pixels[i*4+1] = c
			pixels[i*4+2] = c
			pixels[i*4+3] = 0xff
		}

		if err := texture.Update(nil, unsafe.Pointer(&pixels[0]), winWidth*4); err != nil {
			log.Fatalf("texture.Update: %v", err)
		}
		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()
		sdl.Delay(16)
	}
}
