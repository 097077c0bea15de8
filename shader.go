package gasket

// Stage identifies a programmable stage of the shader pipeline.
type Stage int

const (
	StageVertex   Stage = iota // StageVertex transforms each vertex position into clip space.
	StageFragment              // StageFragment produces the color of each covered pixel.
)

func (stage Stage) String() string {
	switch stage {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	}
	return "unknown"
}

// PositionAttribute is the name of the vertex stage's 2D position input.
const PositionAttribute = "a_position"

// VertexShaderGLSL passes the 2D position attribute through as a clip-space position of (x, y, 0, 1).
const VertexShaderGLSL = `#version 330 core

in vec2 a_position;

void main(void) {
	gl_Position = vec4(a_position, 0.0, 1.0);
}
`

// FragmentShaderGLSL outputs a constant, opaque yellow-ish color.
const FragmentShaderGLSL = `#version 330 core

out vec4 fragColor;

void main(void) {
	fragColor = vec4(0.9, 0.9, 0.3, 1.0);
}
`

// FragmentShaderKage is the Kage (Ebitengine) counterpart of FragmentShaderGLSL.
const FragmentShaderKage = `//kage:unit pixels
package main

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	return vec4(0.9, 0.9, 0.3, 1.0)
}
`

// ShaderSources holds the source text for both stages of a shader program.
type ShaderSources struct {
	Vertex   string
	Fragment string
}

// DefaultGLSLSources returns the fixed GLSL shader pair.
func DefaultGLSLSources() ShaderSources {
	return ShaderSources{
		Vertex:   VertexShaderGLSL,
		Fragment: FragmentShaderGLSL,
	}
}

// FillColor returns the constant color the fragment stage outputs.
func FillColor() Color {
	return NewColor(0.9, 0.9, 0.3, 1)
}
