package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"mandelzoom/fractal"
	"mandelzoom/view"
)

// saveSnapshot exports the current view as a PNG using the CPU mirror
// of the kernel, off the frame loop. One export at a time; the loop
// drains saveDone and clears the flag.
func (w *RenderWindow) saveSnapshot() {
	if w.saving {
		log.Println("snapshot already in progress")
		return
	}
	w.saving = true

	width, height := w.GetFramebufferSize()
	params := w.view.Params(
		width*w.cfg.Snapshot.Scale,
		height*w.cfg.Snapshot.Scale,
	)

	name := filepath.Join(
		w.cfg.Snapshot.Dir,
		fmt.Sprintf("mandelzoom-%v.png", time.Now().Format("20060102-150405")),
	)

	go func() {
		w.saveDone <- writeSnapshot(name, params, fractal.Mandelbrot)
	}()
}

func writeSnapshot(name string, params view.FrameParams, program fractal.Program) error {
	img := renderImage(params, program)

	file, err := os.Create(name)
	if err != nil {
		return err
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		os.Remove(name)
		return fmt.Errorf("encoding %v: %w", name, err)
	}

	if err := file.Close(); err != nil {
		return err
	}

	log.Println("saved", name)
	return nil
}

// renderImage evaluates the program for every pixel of the snapshot,
// one goroutine per row chunk. Workers share only the immutable
// frame parameters and each writes its own rows of the buffer.
func renderImage(params view.FrameParams, program fractal.Program) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, params.Width, params.Height))

	chunkSize := 64
	var wg sync.WaitGroup

	for chunkMin := 0; chunkMin < params.Height; chunkMin += chunkSize {
		chunkMax := chunkMin + chunkSize
		if chunkMax > params.Height {
			chunkMax = params.Height
		}

		wg.Add(1)
		go func(yMin, yMax int) {
			defer wg.Done()
			for y := yMin; y < yMax; y++ {
				for x := 0; x < params.Width; x++ {
					norm := mgl64.Vec2{
						(float64(x) + 0.5) / float64(params.Width),
						(float64(y) + 0.5) / float64(params.Height),
					}
					c := params.PlanePoint(norm)
					img.SetNRGBA(x, y, toNRGBA(program.GetPixel(c[0], c[1])))
				}
			}
		}(chunkMin, chunkMax)
	}

	wg.Wait()
	return img
}

func toNRGBA(c mgl32.Vec3) color.NRGBA {
	return color.NRGBA{
		R: uint8(c[0] * 255),
		G: uint8(c[1] * 255),
		B: uint8(c[2] * 255),
		A: 0xff,
	}
}
