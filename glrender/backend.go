//go:build !js

package glrender

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/solarlune/gasket"
)

// Backend implements gasket.Backend with OpenGL 3.3. It requires a current context (see OpenWindow), and
// must only be used from the thread that context is current on.
type Backend struct {
	sources gasket.ShaderSources
}

// NewBackend returns a Backend compiling the given shader sources. An empty ShaderSources uses
// gasket.DefaultGLSLSources().
func NewBackend(sources gasket.ShaderSources) *Backend {
	if sources.Vertex == "" && sources.Fragment == "" {
		sources = gasket.DefaultGLSLSources()
	}
	return &Backend{sources: sources}
}

type shader struct {
	id    uint32
	stage gasket.Stage
}

func (s *shader) Stage() gasket.Stage { return s.stage }

type program struct {
	id uint32
}

type buffer struct {
	vao, vbo uint32
}

func (b *Backend) Sources() gasket.ShaderSources {
	return b.sources
}

func (b *Backend) CompileShader(stage gasket.Stage, source string) (gasket.Shader, error) {

	var shaderType uint32
	switch stage {
	case gasket.StageVertex:
		shaderType = gl.VERTEX_SHADER
	case gasket.StageFragment:
		shaderType = gl.FRAGMENT_SHADER
	default:
		return nil, &gasket.ShaderCompileError{Stage: stage, Log: "unsupported shader stage"}
	}

	id := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(id, logLength, nil, gl.Str(log))
		gl.DeleteShader(id)
		return nil, &gasket.ShaderCompileError{Stage: stage, Log: log}
	}

	return &shader{id: id, stage: stage}, nil

}

func (b *Backend) LinkProgram(vertex, fragment gasket.Shader) (gasket.Program, error) {

	vs, ok := vertex.(*shader)
	if !ok {
		return nil, &gasket.ProgramLinkError{Log: fmt.Sprintf("vertex stage %T wasn't compiled by this backend", vertex)}
	}

	fs, ok := fragment.(*shader)
	if !ok {
		return nil, &gasket.ProgramLinkError{Log: fmt.Sprintf("fragment stage %T wasn't compiled by this backend", fragment)}
	}

	id := gl.CreateProgram()
	gl.AttachShader(id, vs.id)
	gl.AttachShader(id, fs.id)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(id, logLength, nil, gl.Str(log))
		gl.DeleteProgram(id)
		gl.DeleteShader(vs.id)
		gl.DeleteShader(fs.id)
		return nil, &gasket.ProgramLinkError{Log: log}
	}

	// The stages live on in the program once it's linked.
	gl.DeleteShader(vs.id)
	gl.DeleteShader(fs.id)

	gl.UseProgram(id)

	return &program{id: id}, nil

}

// UploadVertices creates a vertex array and a vertex buffer, copying the vertex data into the latter with
// STATIC_DRAW usage.
func (b *Backend) UploadVertices(vb gasket.VertexBuffer) (gasket.Buffer, error) {

	if vb.Len() == 0 {
		return nil, errors.New("glrender: no vertices to upload")
	}

	buf := &buffer{}

	gl.GenVertexArrays(1, &buf.vao)
	gl.BindVertexArray(buf.vao)

	gl.GenBuffers(1, &buf.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, vb.Len()*4, gl.Ptr([]float32(vb)), gl.STATIC_DRAW)

	return buf, nil

}

func (b *Backend) BindPosition(prog gasket.Program, buf gasket.Buffer, attribute string) error {

	p, ok := prog.(*program)
	if !ok {
		return errors.New("glrender: program wasn't linked by this backend")
	}

	vbuf, ok := buf.(*buffer)
	if !ok {
		return errors.New("glrender: buffer wasn't uploaded by this backend")
	}

	location := gl.GetAttribLocation(p.id, gl.Str(attribute+"\x00"))
	if location < 0 {
		return fmt.Errorf("glrender: program has no active attribute %q", attribute)
	}

	gl.BindVertexArray(vbuf.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbuf.vbo)
	gl.EnableVertexAttribArray(uint32(location))
	gl.VertexAttribPointer(uint32(location), 2, gl.FLOAT, false, 0, gl.PtrOffset(0))

	return nil

}

func (b *Backend) Clear(color gasket.Color) {
	gl.ClearColor(color.R, color.G, color.B, color.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (b *Backend) DrawTriangles(prog gasket.Program, buf gasket.Buffer, first, count int) {
	gl.UseProgram(prog.(*program).id)
	gl.BindVertexArray(buf.(*buffer).vao)
	gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
}
