//go:build !js

// Package glrender draws gaskets with OpenGL 3.3 (core profile), in a window opened through GLFW.
package glrender

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/solarlune/gasket"
)

func init() {
	// GLFW event handling and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

// Window is a fixed-size GLFW window owning the OpenGL context a Backend draws with.
type Window struct {
	window *glfw.Window
}

// OpenWindow initializes GLFW, opens a non-resizable window, makes its OpenGL 3.3 core context current on
// the calling thread and loads the OpenGL functions. Any failure along the way wraps gasket.ErrNoContext.
func OpenWindow(width, height int, title string) (*Window, error) {

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glrender: initializing glfw: %v: %w", err, gasket.ErrNoContext)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glrender: creating window: %v: %w", err, gasket.ErrNoContext)
	}

	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("glrender: loading OpenGL: %v: %w", err, gasket.ErrNoContext)
	}

	return &Window{window: window}, nil

}

// Version returns the OpenGL version string of the current context.
func (w *Window) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Present swaps the window's buffers, showing what was drawn.
func (w *Window) Present() {
	w.window.SwapBuffers()
}

// Wait blocks, handling window events without redrawing, until the window is asked to close.
func (w *Window) Wait() {
	for !w.window.ShouldClose() {
		glfw.WaitEvents()
	}
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.window.Destroy()
	glfw.Terminate()
}
