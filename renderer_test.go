package gasket

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"
)

// recordingBackend is a Backend that records each call made to it instead of drawing anything.
type recordingBackend struct {
	sources    ShaderSources
	compileErr map[Stage]string
	linkErr    string

	calls    []string
	uploaded VertexBuffer
	cleared  Color
}

type recordedShader struct{ stage Stage }

func (s recordedShader) Stage() Stage { return s.stage }

func newRecordingBackend() *recordingBackend {
	return &recordingBackend{
		sources:    DefaultGLSLSources(),
		compileErr: map[Stage]string{},
	}
}

func (b *recordingBackend) Sources() ShaderSources { return b.sources }

func (b *recordingBackend) CompileShader(stage Stage, source string) (Shader, error) {
	b.calls = append(b.calls, "compile "+stage.String())
	if log, ok := b.compileErr[stage]; ok {
		return nil, &ShaderCompileError{Stage: stage, Log: log}
	}
	return recordedShader{stage: stage}, nil
}

func (b *recordingBackend) LinkProgram(vertex, fragment Shader) (Program, error) {
	b.calls = append(b.calls, fmt.Sprintf("link %s+%s", vertex.Stage(), fragment.Stage()))
	if b.linkErr != "" {
		return nil, &ProgramLinkError{Log: b.linkErr}
	}
	return "program", nil
}

func (b *recordingBackend) UploadVertices(vb VertexBuffer) (Buffer, error) {
	b.calls = append(b.calls, "upload")
	b.uploaded = vb
	return "buffer", nil
}

func (b *recordingBackend) BindPosition(program Program, buffer Buffer, attribute string) error {
	b.calls = append(b.calls, "bind "+attribute)
	return nil
}

func (b *recordingBackend) Clear(color Color) {
	b.calls = append(b.calls, "clear")
	b.cleared = color
}

func (b *recordingBackend) DrawTriangles(program Program, buffer Buffer, first, count int) {
	b.calls = append(b.calls, fmt.Sprintf("draw %d %d", first, count))
}

func quietOptions() *RenderOptions {
	opts := DefaultRenderOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return opts
}

func TestRenderPipelineOrder(t *testing.T) {

	backend := newRecordingBackend()

	frame, err := Render(backend, quietOptions())
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{
		"compile vertex",
		"compile fragment",
		"link vertex+fragment",
		"upload",
		"bind a_position",
		"clear",
		"draw 0 243",
	}

	if !reflect.DeepEqual(backend.calls, expected) {
		t.Fatalf("got calls %v, expected %v", backend.calls, expected)
	}

	if backend.uploaded.Len() != 486 {
		t.Errorf("uploaded %d floats, expected 486", backend.uploaded.Len())
	}

	if backend.cleared != NewColor(0, 0, 0, 1) {
		t.Errorf("cleared to %v, expected opaque black", backend.cleared)
	}

	if frame.VertexCount != 243 || frame.FloatCount != 486 || frame.DrawCalls != 1 || frame.Depth != DefaultDepth {
		t.Errorf("unexpected frame info: %+v", frame)
	}

}

func TestRenderNilOptions(t *testing.T) {

	backend := newRecordingBackend()

	frame, err := Render(backend, nil)
	if err != nil {
		t.Fatal(err)
	}

	if frame.VertexCount != VertexCount(DefaultDepth) {
		t.Errorf("got %d vertices, expected %d", frame.VertexCount, VertexCount(DefaultDepth))
	}

}

func TestRenderFragmentCompileFailure(t *testing.T) {

	backend := newRecordingBackend()
	backend.sources.Fragment = strings.Replace(FragmentShaderGLSL, "fragColor = ", "fragColor = = ", 1)

	diagnostic := "0:6(14): error: syntax error, unexpected '='\n"
	backend.compileErr[StageFragment] = diagnostic

	frame, err := Render(backend, quietOptions())
	if err == nil {
		t.Fatal("expected a compile error")
	}

	if frame != nil {
		t.Error("no frame should be returned on failure")
	}

	var compileErr *ShaderCompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("expected a *ShaderCompileError, got %T: %v", err, err)
	}

	if compileErr.Stage != StageFragment || compileErr.Log != diagnostic {
		t.Errorf("diagnostic wasn't surfaced verbatim: %+v", compileErr)
	}

	expected := []string{"compile vertex", "compile fragment"}
	if !reflect.DeepEqual(backend.calls, expected) {
		t.Fatalf("render should halt before uploading or drawing; got calls %v", backend.calls)
	}

}

func TestRenderLinkFailure(t *testing.T) {

	backend := newRecordingBackend()
	backend.linkErr = "error: vertex shader output not consumed"

	_, err := Render(backend, quietOptions())

	var linkErr *ProgramLinkError
	if !errors.As(err, &linkErr) {
		t.Fatalf("expected a *ProgramLinkError, got %T: %v", err, err)
	}

	if !strings.Contains(err.Error(), backend.linkErr) {
		t.Errorf("error %q should contain the linker log", err)
	}

	for _, call := range backend.calls {
		if call == "upload" || strings.HasPrefix(call, "draw") {
			t.Fatalf("render should halt before uploading or drawing; got calls %v", backend.calls)
		}
	}

}

func TestRenderRejectsDepth(t *testing.T) {

	for _, depth := range []int{-1, MaxDepth + 1} {

		backend := newRecordingBackend()
		opts := quietOptions()
		opts.Depth = depth

		if _, err := Render(backend, opts); err == nil {
			t.Errorf("depth %d should be rejected", depth)
		}

		if len(backend.calls) != 0 {
			t.Errorf("depth %d: nothing should reach the backend, got %v", depth, backend.calls)
		}

	}

}

func TestMustRenderPanics(t *testing.T) {

	backend := newRecordingBackend()
	backend.compileErr[StageVertex] = "bad"

	defer func() {
		if recover() == nil {
			t.Fatal("MustRender should panic on a compile error")
		}
	}()

	MustRender(backend, quietOptions())

}

func TestErrorMessages(t *testing.T) {

	err := error(&ShaderCompileError{Stage: StageVertex, Log: "0:1: bad token\x00"})
	if err.Error() != "vertex shader compilation failed: 0:1: bad token" {
		t.Errorf("unexpected message %q", err.Error())
	}

	wrapped := fmt.Errorf("opening window: %w", ErrNoContext)
	if !errors.Is(wrapped, ErrNoContext) {
		t.Error("wrapped ErrNoContext should match with errors.Is")
	}

}
