package main

import (
	"fmt"
	"log"
	"reflect"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"mandelzoom/fractal"
	"mandelzoom/view"
)

func run(cfg *Config) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw.Init failed: %w", err)
	}
	defer glfw.Terminate()

	w, err := NewRenderWindow(cfg)
	if err != nil {
		return err
	}

	w.Run()
	return nil
}

func NewRenderWindow(cfg *Config) (*RenderWindow, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(
		cfg.Width,
		cfg.Height,
		"mandelzoom",
		nil,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}

	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl.Init failed: %w", err)
	}
	log.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	v := view.NewView()

	// Pointer events arrive in window coordinates, which on scaled
	// displays differ from framebuffer pixels; the controller works in
	// the former, the viewport and uniforms in the latter.
	winWidth, winHeight := window.GetSize()

	w := &RenderWindow{
		Window:   window,
		cfg:      cfg,
		view:     v,
		ctrl:     view.NewController(v, winWidth, winHeight),
		saveDone: make(chan error, 1),
	}

	verticies := []float32{
		-3, -2,
		0, 3,
		3, -2,
	}

	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)

	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verticies)*4, gl.Ptr(verticies), gl.STATIC_DRAW)

	if err := w.loadProgram(fractal.Mandelbrot); err != nil {
		return nil, err
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	window.SetSizeCallback(w.resize)
	window.SetFramebufferSizeCallback(w.resizeFramebuffer)
	window.SetMouseButtonCallback(w.button)
	window.SetCursorPosCallback(w.pointerMove)
	window.SetCursorEnterCallback(w.pointerEnter)
	window.SetScrollCallback(w.scroll)
	window.SetKeyCallback(w.key)

	return w, nil
}

type RenderWindow struct {
	*glfw.Window
	cfg  *Config
	view *view.View
	ctrl *view.Controller

	vao              uint32
	vbo              uint32
	program          uint32
	vertexAttrib     uint32
	uniformLocations map[string]int32

	saving   bool
	saveDone chan error
}

// Run is the frame loop. Each cycle applies the held-key pan, restores
// the recenter invariant, snapshots the view, draws every pixel
// against that one snapshot and presents. SwapBuffers blocks until the
// next display refresh.
func (w *RenderWindow) Run() {
	for !w.ShouldClose() {
		select {
		case err := <-w.saveDone:
			w.saving = false
			if err != nil {
				log.Println(err)
			}
		default:
		}

		width, height := w.GetFramebufferSize()
		w.ctrl.StepKeys()
		params := w.view.Params(width, height)

		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.UseProgram(w.program)
		w.loadUniforms(uniformsFor(params))
		gl.BindVertexArray(w.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, 3)

		w.SwapBuffers()
		glfw.PollEvents()
	}
}

func uniformsFor(p view.FrameParams) fractal.Uniforms {
	return fractal.Uniforms{
		Center:     p.Center,
		Bucket:     p.Bucket,
		Scale:      p.Scale,
		Resolution: mgl32.Vec2{float32(p.Width), float32(p.Height)},
	}
}

func (w *RenderWindow) resize(_ *glfw.Window, width, height int) {
	w.ctrl.Resize(width, height)
}

func (w *RenderWindow) resizeFramebuffer(_ *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (w *RenderWindow) button(window *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}

	if action == glfw.Press {
		x, y := window.GetCursorPos()
		w.ctrl.PointerDown(x, y)
	} else if action == glfw.Release {
		w.ctrl.PointerUp()
	}
}

func (w *RenderWindow) pointerMove(_ *glfw.Window, x, y float64) {
	w.ctrl.PointerMove(x, y)
}

func (w *RenderWindow) pointerEnter(_ *glfw.Window, entered bool) {
	if !entered {
		w.ctrl.PointerLeave()
	}
}

func (w *RenderWindow) scroll(window *glfw.Window, _, yoff float64) {
	// GLFW reports scroll-up as positive; the controller takes a
	// wheel-style delta where negative means zoom in.
	x, y := window.GetCursorPos()
	w.ctrl.Zoom(x, y, -yoff)
}

func (w *RenderWindow) key(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == glfw.Press && key == glfw.KeyS {
		w.saveSnapshot()
		return
	}

	dir, ok := panKeys[key]
	if !ok {
		return
	}

	switch action {
	case glfw.Press:
		w.ctrl.KeyDown(dir)
	case glfw.Release:
		w.ctrl.KeyUp(dir)
	}
}

var panKeys = map[glfw.Key]view.Direction{
	glfw.KeyLeft:  view.Left,
	glfw.KeyRight: view.Right,
	glfw.KeyUp:    view.Up,
	glfw.KeyDown:  view.Down,
}

// loadUniforms uploads every tagged field of the uniform block,
// dispatching on field type.
func (w *RenderWindow) loadUniforms(uniforms fractal.Uniforms) {
	v := reflect.ValueOf(&uniforms).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)

		ptr := f.Addr().UnsafePointer()
		loc := w.uniformLocations[strings.ToLower(v.Type().Field(i).Tag.Get("uniform"))]

		switch f.Type() {
		case reflect.TypeOf(mgl32.Vec2{}):
			gl.Uniform2fv(loc, 1, (*float32)(ptr))
		case reflect.TypeOf(mgl64.Vec2{}):
			gl.Uniform2dv(loc, 1, (*float64)(ptr))
		case reflect.TypeOf(float32(0)):
			gl.Uniform1fv(loc, 1, (*float32)(ptr))
		case reflect.TypeOf(float64(0)):
			gl.Uniform1dv(loc, 1, (*float64)(ptr))
		default:
			log.Printf("unsupported uniform type %v", f.Type())
		}
	}

	runtime.KeepAlive(&uniforms)
}

func (w *RenderWindow) loadProgram(program fractal.Program) error {
	vertexShader, err := compileShader(program.VertexShader+"\x00", gl.VERTEX_SHADER)
	if err != nil {
		return err
	}

	fragmentShader, err := compileShader(program.FragmentShader+"\x00", gl.FRAGMENT_SHADER)
	if err != nil {
		return err
	}

	w.program = gl.CreateProgram()
	gl.AttachShader(w.program, vertexShader)
	gl.AttachShader(w.program, fragmentShader)
	gl.LinkProgram(w.program)
	gl.UseProgram(w.program)

	defer gl.DeleteShader(vertexShader)
	defer gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(w.program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetProgramiv(w.program, gl.INFO_LOG_LENGTH, &l)

		infoLog := strings.Repeat("\x00", int(l+1))
		gl.GetProgramInfoLog(w.program, l, nil, gl.Str(infoLog))
		return fmt.Errorf("failed to link %v program: %v", program.Name, infoLog)
	}

	w.uniformLocations = make(map[string]int32)
	t := reflect.TypeOf(fractal.Uniforms{})
	for i := 0; i < t.NumField(); i++ {
		name := strings.ToLower(t.Field(i).Tag.Get("uniform"))
		w.uniformLocations[name] = gl.GetUniformLocation(w.program, gl.Str(name+"\x00"))
	}

	gl.BindFragDataLocation(w.program, 0, gl.Str("outputColor\x00"))

	w.vertexAttrib = uint32(gl.GetAttribLocation(w.program, gl.Str("vert\x00")))
	gl.EnableVertexAttribArray(w.vertexAttrib)
	gl.VertexAttribPointerWithOffset(w.vertexAttrib, 2, gl.FLOAT, false, 2*4, 0)

	return nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	defer runtime.KeepAlive(source)
	cstring, free := gl.Strs(source)
	defer free()

	shader := gl.CreateShader(shaderType)
	gl.ShaderSource(shader, 1, cstring, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &l)

		infoLog := strings.Repeat("\x00", int(l+1))
		gl.GetShaderInfoLog(shader, l, nil, gl.Str(infoLog))
		return 0, fmt.Errorf("shader\n\"\n%v\n\"\nfailed to compile: %v", source, infoLog)
	}

	return shader, nil
}
