//go:build !js

package glrender

import (
	"errors"
	"testing"

	"github.com/solarlune/gasket"
)

func TestNewBackendDefaultsToGLSL(t *testing.T) {

	b := NewBackend(gasket.ShaderSources{})

	if b.Sources() != gasket.DefaultGLSLSources() {
		t.Fatal("an empty ShaderSources should fall back to the default GLSL pair")
	}

	custom := gasket.ShaderSources{Vertex: "v", Fragment: "f"}
	if NewBackend(custom).Sources() != custom {
		t.Fatal("custom sources should be kept")
	}

}

func TestCompileRejectsUnknownStage(t *testing.T) {

	// Unknown stages are rejected before any OpenGL call, so no context is needed.
	_, err := NewBackend(gasket.ShaderSources{}).CompileShader(gasket.Stage(7), "void main() {}")

	var compileErr *gasket.ShaderCompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("expected a *ShaderCompileError, got %T: %v", err, err)
	}

	if compileErr.Stage != gasket.Stage(7) {
		t.Errorf("got stage %v, expected the unknown stage", compileErr.Stage)
	}

}
