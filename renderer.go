package gasket

import (
	"fmt"
	"time"
)

// Shader is a compiled shader stage, as returned by a Backend.
type Shader interface {
	Stage() Stage
}

// Program is a linked shader program, as returned by a Backend.
type Program any

// Buffer is a GPU-resident vertex buffer, as returned by a Backend.
type Buffer any

// Backend is a graphics API that a gasket can be drawn with. All methods are called from the
// goroutine that owns the backend's graphics context, one after another, in the order Render
// lists them; none of them are safe to call concurrently.
type Backend interface {
	// Sources returns the fixed shader text the Backend compiles.
	Sources() ShaderSources
	// CompileShader compiles the source text for a single stage. A failure returns a *ShaderCompileError.
	CompileShader(stage Stage, source string) (Shader, error)
	// LinkProgram links a vertex and a fragment stage together. A failure returns a *ProgramLinkError.
	LinkProgram(vertex, fragment Shader) (Program, error)
	// UploadVertices copies the VertexBuffer to the GPU once; the buffer is never updated afterwards.
	UploadVertices(vb VertexBuffer) (Buffer, error)
	// BindPosition binds the Buffer's tightly packed 2-float vertices to the program's position attribute.
	BindPosition(program Program, buffer Buffer, attribute string) error
	// Clear clears the framebuffer to the given Color.
	Clear(color Color)
	// DrawTriangles issues a single non-indexed triangle-list draw of count vertices starting at first.
	DrawTriangles(program Program, buffer Buffer, first, count int)
}

// Frame holds information about a finished Render.
type Frame struct {
	Depth       int           // Subdivision depth the gasket was generated with
	VertexCount int           // Number of vertices drawn
	FloatCount  int           // Number of floats uploaded to the vertex buffer
	DrawCalls   int           // Number of draw calls issued
	Vertices    VertexBuffer  // The vertex data that was uploaded
	FrameTime   time.Duration // Time spent between compiling the first stage and issuing the draw call
}

// Render draws a gasket with the Backend provided, executing each step of the pipeline exactly once:
// compiling both shader stages, linking them, generating and uploading the vertices, binding the
// position attribute, clearing the framebuffer, and drawing. Passing nil for opts renders with
// DefaultRenderOptions().
//
// A shader compilation or program linking failure stops the render immediately, before anything is
// uploaded or drawn; the error is a *ShaderCompileError or *ProgramLinkError carrying the diagnostic
// text unmodified.
func Render(backend Backend, opts *RenderOptions) (*Frame, error) {

	if opts == nil {
		opts = DefaultRenderOptions()
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	log := opts.logger()
	start := time.Now()
	sources := backend.Sources()

	vertexShader, err := backend.CompileShader(StageVertex, sources.Vertex)
	if err != nil {
		return nil, err
	}
	log.Debug("compiled shader", "stage", StageVertex)

	fragmentShader, err := backend.CompileShader(StageFragment, sources.Fragment)
	if err != nil {
		return nil, err
	}
	log.Debug("compiled shader", "stage", StageFragment)

	program, err := backend.LinkProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}
	log.Debug("linked program")

	vertices := Generate(opts.Triangle, opts.Depth)

	buffer, err := backend.UploadVertices(vertices)
	if err != nil {
		return nil, fmt.Errorf("uploading vertices: %w", err)
	}
	log.Debug("uploaded vertices", "floats", vertices.Len())

	if err := backend.BindPosition(program, buffer, PositionAttribute); err != nil {
		return nil, fmt.Errorf("binding %s: %w", PositionAttribute, err)
	}

	backend.Clear(opts.ClearColor)

	backend.DrawTriangles(program, buffer, 0, vertices.VertexCount())

	frame := &Frame{
		Depth:       opts.Depth,
		VertexCount: vertices.VertexCount(),
		FloatCount:  vertices.Len(),
		DrawCalls:   1,
		Vertices:    vertices,
		FrameTime:   time.Since(start),
	}

	log.Info("rendered gasket", "depth", frame.Depth, "vertices", frame.VertexCount, "time", frame.FrameTime)

	return frame, nil

}

// MustRender calls Render, panicking if it returns an error.
func MustRender(backend Backend, opts *RenderOptions) *Frame {
	frame, err := Render(backend, opts)
	if err != nil {
		panic(err)
	}
	return frame
}
