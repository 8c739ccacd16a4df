package graphics

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Technique is a named, separately linked shader program selectable at draw
// time. Every uniform the caller will set is resolved at load; a missing
// uniform fails the load rather than silently no-oping at draw time.
type Technique struct {
	Name     string
	program  uint32
	uniforms map[string]int32
}

// NewTechnique compiles and links a vertex/fragment shader pair and resolves
// the named uniforms. Any compile, link, or lookup failure is returned as a
// ShaderProgramError.
func NewTechnique(name, vertexPath, fragmentPath string, uniformNames ...string) (*Technique, error) {
	vertexSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, &ShaderProgramError{Technique: name, Err: fmt.Errorf("could not read vertex shader: %w", err)}
	}

	fragmentSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, &ShaderProgramError{Technique: name, Err: fmt.Errorf("could not read fragment shader: %w", err)}
	}

	program, err := compileProgram(string(vertexSource), string(fragmentSource))
	if err != nil {
		return nil, &ShaderProgramError{Technique: name, Err: err}
	}

	t := &Technique{
		Name:     name,
		program:  program,
		uniforms: make(map[string]int32, len(uniformNames)),
	}
	for _, uname := range uniformNames {
		loc := gl.GetUniformLocation(program, gl.Str(uname+"\x00"))
		if loc < 0 {
			t.Dispose()
			return nil, &ShaderProgramError{Technique: name, Err: fmt.Errorf("uniform %q not found", uname)}
		}
		t.uniforms[uname] = loc
	}
	return t, nil
}

// Use activates the technique's program
func (t *Technique) Use() {
	gl.UseProgram(t.program)
}

// Dispose releases the program
func (t *Technique) Dispose() {
	if t.program != 0 {
		gl.DeleteProgram(t.program)
		t.program = 0
	}
}

// SetInt sets an integer uniform (also used for sampler bindings)
func (t *Technique) SetInt(name string, value int32) {
	if loc, ok := t.uniforms[name]; ok {
		gl.Uniform1i(loc, value)
	}
}

// SetFloat sets a float uniform
func (t *Technique) SetFloat(name string, value float32) {
	if loc, ok := t.uniforms[name]; ok {
		gl.Uniform1f(loc, value)
	}
}

// SetVector3 sets a vec3 uniform
func (t *Technique) SetVector3(name string, v mgl32.Vec3) {
	if loc, ok := t.uniforms[name]; ok {
		gl.Uniform3f(loc, v.X(), v.Y(), v.Z())
	}
}

// SetMatrix4 sets a 4x4 matrix uniform
func (t *Technique) SetMatrix4(name string, m mgl32.Mat4) {
	if loc, ok := t.uniforms[name]; ok {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

// Helper functions
func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", log)
	}
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}
	return shader, nil
}
