package renderer

import (
	"strings"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/shapelab/internal/engine/shader"
	"github.com/Faultbox/shapelab/internal/logger"
)

// Compiler builds GL programs for the shader cache.
type Compiler struct{}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Failures are returned as *shader.CompileError carrying the info log.
func (Compiler) CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, shader.StageVertex)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, shader.StageFragment)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, &shader.CompileError{Stage: shader.StageLink, Log: strings.TrimRight(log, "\x00")}
	}

	logger.Debug("shader program created", zap.Uint32("program", program))
	return program, nil
}

// DeleteProgram frees a program handle.
func (Compiler) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	sh := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csources, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(sh, logLength, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, &shader.CompileError{Stage: stage, Log: strings.TrimRight(log, "\x00")}
	}

	return sh, nil
}
