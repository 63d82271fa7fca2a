package fractal

import (
	_ "embed"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

//go:embed shaders/default.vert
var defaultVertexShader string

//go:embed shaders/mandelbrot.frag
var mandelbrotFragmentShader string

// Program is a GPU kernel paired with its Go mirror. GetPixel computes
// the same color the fragment shader would for a normalized surface
// position, given the plane point the view layer resolved for it.
type Program struct {
	Name           string
	VertexShader   string
	FragmentShader string
	GetPixel       func(cr, ci float64) mgl32.Vec3
}

// Mandelbrot is the one program this explorer runs.
var Mandelbrot = Program{
	Name:           "mandelbrot",
	VertexShader:   defaultVertexShader,
	FragmentShader: mandelbrotFragmentShader,
	GetPixel: func(cr, ci float64) mgl32.Vec3 {
		return Shade(EscapeTime(cr, ci))
	},
}

// Uniforms is the per-frame parameter block published to the kernel.
// Field tags name the GLSL uniforms; the render window uploads them by
// reflecting over this struct.
type Uniforms struct {
	Center     mgl64.Vec2 `uniform:"center"`
	Bucket     mgl64.Vec2 `uniform:"bucket"`
	Scale      float64    `uniform:"scale"`
	Resolution mgl32.Vec2 `uniform:"resolution"`
}
