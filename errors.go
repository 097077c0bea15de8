package gasket

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoContext is returned when no usable graphics context could be obtained from the host.
// Backends wrap it with the reason the context is missing.
var ErrNoContext = errors.New("no graphics context available")

// ShaderCompileError is returned when a shader stage fails to compile. Log holds the compiler's
// diagnostic output, unmodified.
type ShaderCompileError struct {
	Stage Stage
	Log   string
}

func (err *ShaderCompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", err.Stage, strings.TrimRight(err.Log, "\x00\n"))
}

// ProgramLinkError is returned when the compiled stages fail to link into a program. Log holds the
// linker's diagnostic output, unmodified.
type ProgramLinkError struct {
	Log string
}

func (err *ProgramLinkError) Error() string {
	return "shader program linking failed: " + strings.TrimRight(err.Log, "\x00\n")
}
