// Package shader loads GLSL sources and caches the linked programs by
// source path pair. Compilation itself is delegated to a Compiler so the
// cache carries no GL dependency.
package shader

import (
	"errors"
	"fmt"
)

// ErrEmptySource is returned when a shader file has no content.
var ErrEmptySource = errors.New("empty shader source")

// Stage names used in CompileError.
const (
	StageVertex   = "vertex"
	StageFragment = "fragment"
	StageLink     = "link"
)

// CompileError carries the driver's info log for a failed stage.
type CompileError struct {
	Stage string
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader: %s", e.Stage, e.Log)
}

// title picks the dialog title for a failure.
func title(err error) string {
	var ce *CompileError
	if errors.As(err, &ce) {
		if ce.Stage == StageLink {
			return "Shader Linking Failed"
		}
		return "Shader Compilation Failed"
	}
	return "Shader Load Error"
}
