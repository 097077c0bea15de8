// Package ebitenrender draws gaskets with Ebitengine.
//
// Ebitengine's vertex stage is fixed-function, so the vertex stage here is a Go function run on the CPU
// once when the position attribute is bound (gasket.ClipPosition by default), while the fragment stage is
// a Kage shader compiled with ebiten.NewShader. Vertices are then drawn with Image.DrawTrianglesShader.
package ebitenrender

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/gasket"
)

// Backend implements gasket.Backend by drawing onto an *ebiten.Image.
type Backend struct {
	target *ebiten.Image

	// VertexProgram is run on each vertex position when the position attribute is bound, producing
	// a clip-space position. Defaults to gasket.ClipPosition.
	VertexProgram func(gasket.Vector2) gasket.Vector4

	// FragmentSource is the Kage source the fragment stage is compiled from. Defaults to gasket.FragmentShaderKage.
	FragmentSource string
}

// NewBackend creates a new Backend that draws onto the target image. If the target is nil or empty,
// an error wrapping gasket.ErrNoContext is returned.
func NewBackend(target *ebiten.Image) (*Backend, error) {

	if target == nil {
		return nil, fmt.Errorf("ebitenrender: nil target image: %w", gasket.ErrNoContext)
	}

	if w, h := target.Bounds().Dx(), target.Bounds().Dy(); w <= 0 || h <= 0 {
		return nil, fmt.Errorf("ebitenrender: target image is %dx%d: %w", w, h, gasket.ErrNoContext)
	}

	return &Backend{
		target:         target,
		VertexProgram:  gasket.ClipPosition,
		FragmentSource: gasket.FragmentShaderKage,
	}, nil

}

type vertexStage struct {
	program func(gasket.Vector2) gasket.Vector4
}

func (vs *vertexStage) Stage() gasket.Stage { return gasket.StageVertex }

type fragmentStage struct {
	shader *ebiten.Shader
}

func (fs *fragmentStage) Stage() gasket.Stage { return gasket.StageFragment }

type program struct {
	vertex   *vertexStage
	fragment *fragmentStage
}

type buffer struct {
	positions gasket.VertexBuffer
	vertices  []ebiten.Vertex
	indices   []uint16
}

// drawIndices returns the indices covering count vertices starting at first.
func (buf *buffer) drawIndices(first, count int) []uint16 {
	return buf.indices[first : first+count]
}

// Sources returns the Backend's shader text. The vertex source is empty, as the vertex stage is fixed-function.
func (b *Backend) Sources() gasket.ShaderSources {
	return gasket.ShaderSources{Fragment: b.FragmentSource}
}

// CompileShader compiles a stage. The vertex stage accepts no source text; the fragment stage is compiled
// as Kage, with any compiler error returned verbatim in a *gasket.ShaderCompileError.
func (b *Backend) CompileShader(stage gasket.Stage, source string) (gasket.Shader, error) {

	switch stage {

	case gasket.StageVertex:
		if source != "" {
			return nil, &gasket.ShaderCompileError{Stage: stage, Log: "the vertex stage is fixed-function and takes no source"}
		}
		if b.VertexProgram == nil {
			return nil, &gasket.ShaderCompileError{Stage: stage, Log: "no vertex program set"}
		}
		return &vertexStage{program: b.VertexProgram}, nil

	case gasket.StageFragment:
		shader, err := ebiten.NewShader([]byte(source))
		if err != nil {
			return nil, &gasket.ShaderCompileError{Stage: stage, Log: err.Error()}
		}
		return &fragmentStage{shader: shader}, nil

	}

	return nil, &gasket.ShaderCompileError{Stage: stage, Log: "unsupported shader stage"}

}

// LinkProgram pairs a vertex stage with a fragment stage compiled by this Backend.
func (b *Backend) LinkProgram(vertex, fragment gasket.Shader) (gasket.Program, error) {

	vs, ok := vertex.(*vertexStage)
	if !ok {
		return nil, &gasket.ProgramLinkError{Log: fmt.Sprintf("expected a vertex stage, got %T", vertex)}
	}

	fs, ok := fragment.(*fragmentStage)
	if !ok {
		return nil, &gasket.ProgramLinkError{Log: fmt.Sprintf("expected a fragment stage, got %T", fragment)}
	}

	return &program{vertex: vs, fragment: fs}, nil

}

// UploadVertices stores the vertex data for drawing. Ebitengine vertex data lives in ebiten.Vertex
// structs, so the positions are converted when they're bound to a program.
func (b *Backend) UploadVertices(vb gasket.VertexBuffer) (gasket.Buffer, error) {

	if vb.VertexCount() > gasket.MaxTriangleCount*3 {
		return nil, fmt.Errorf("ebitenrender: %d vertices exceed the maximum of %d", vb.VertexCount(), gasket.MaxTriangleCount*3)
	}

	buf := &buffer{
		positions: vb,
		vertices:  make([]ebiten.Vertex, vb.VertexCount()),
		indices:   make([]uint16, vb.VertexCount()),
	}

	// Ebitengine only draws indexed triangles; sequential indices draw each vertex once, in order.
	for i := range buf.indices {
		buf.indices[i] = uint16(i)
	}

	return buf, nil

}

// BindPosition runs the program's vertex stage over the buffer's positions, mapping the resulting clip-space
// positions onto the target image's pixels (with Y flipped, as Ebitengine's Y axis points down).
func (b *Backend) BindPosition(prog gasket.Program, buf gasket.Buffer, attribute string) error {

	p, ok := prog.(*program)
	if !ok {
		return errors.New("ebitenrender: program wasn't linked by this backend")
	}

	vbuf, ok := buf.(*buffer)
	if !ok {
		return errors.New("ebitenrender: buffer wasn't uploaded by this backend")
	}

	if attribute != gasket.PositionAttribute {
		return fmt.Errorf("ebitenrender: unknown attribute %q", attribute)
	}

	w := float64(b.target.Bounds().Dx())
	h := float64(b.target.Bounds().Dy())

	for i := 0; i < vbuf.positions.VertexCount(); i++ {
		ndc := p.vertex.program(vbuf.positions.Vertex(i)).NDC()
		vbuf.vertices[i] = ebiten.Vertex{
			DstX:   float32((ndc.X + 1) / 2 * w),
			DstY:   float32((1 - ndc.Y) / 2 * h),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}

	return nil

}

// Clear fills the target image with the color provided.
func (b *Backend) Clear(color gasket.Color) {
	b.target.Fill(color.ToRGBA64())
}

// DrawTriangles draws count vertices starting at first as a triangle list in a single DrawTrianglesShader call.
func (b *Backend) DrawTriangles(prog gasket.Program, buf gasket.Buffer, first, count int) {

	p := prog.(*program)
	vbuf := buf.(*buffer)

	b.target.DrawTrianglesShader(
		vbuf.vertices,
		vbuf.drawIndices(first, count),
		p.fragment.shader,
		&ebiten.DrawTrianglesShaderOptions{},
	)

}
