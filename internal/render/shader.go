package render

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// ShaderProgram wraps a linked GL program with its resolved attribute
// and uniform locations.
type ShaderProgram struct {
	program uint32
	a       map[string]int32
	u       map[string]int32
}

func newShaderProgram(vert, frag, id string) (*ShaderProgram, error) {
	vertObj, err := compileShader(gl.VERTEX_SHADER, vert)
	if err != nil {
		return nil, fmt.Errorf("vertex shader %s: %w", id, err)
	}
	fragObj, err := compileShader(gl.FRAGMENT_SHADER, frag)
	if err != nil {
		gl.DeleteShader(vertObj)
		return nil, fmt.Errorf("fragment shader %s: %w", id, err)
	}
	prog, err := linkProgram(vertObj, fragObj)
	if err != nil {
		return nil, fmt.Errorf("link %s: %w", id, err)
	}
	return &ShaderProgram{
		program: prog,
		a:       make(map[string]int32),
		u:       make(map[string]int32),
	}, nil
}

func glStr(s string) *uint8 {
	return gl.Str(s + "\x00")
}

// RegisterAttributes resolves and caches attribute locations.
func (s *ShaderProgram) RegisterAttributes(names ...string) {
	for _, name := range names {
		s.a[name] = gl.GetAttribLocation(s.program, glStr(name))
	}
}

// RegisterUniforms resolves and caches uniform locations.
func (s *ShaderProgram) RegisterUniforms(names ...string) {
	for _, name := range names {
		s.u[name] = gl.GetUniformLocation(s.program, glStr(name))
	}
}

// Use makes the program current.
func (s *ShaderProgram) Use() {
	gl.UseProgram(s.program)
}

func (s *ShaderProgram) SetUniformI(name string, val int) {
	gl.Uniform1i(s.u[name], int32(val))
}

func (s *ShaderProgram) SetUniformF(name string, values ...float32) {
	loc := s.u[name]
	switch len(values) {
	case 1:
		gl.Uniform1f(loc, values[0])
	case 2:
		gl.Uniform2f(loc, values[0], values[1])
	case 3:
		gl.Uniform3f(loc, values[0], values[1], values[2])
	case 4:
		gl.Uniform4f(loc, values[0], values[1], values[2], values[3])
	}
}

func (s *ShaderProgram) SetUniformFv(name string, values []float32) {
	loc := s.u[name]
	switch len(values) {
	case 2:
		gl.Uniform2fv(loc, 1, &values[0])
	case 3:
		gl.Uniform3fv(loc, 1, &values[0])
	case 4:
		gl.Uniform4fv(loc, 1, &values[0])
	}
}

func (s *ShaderProgram) SetUniformMatrix(name string, value []float32) {
	gl.UniformMatrix4fv(s.u[name], 1, false, &value[0])
}

// Delete releases the program.
func (s *ShaderProgram) Delete() {
	gl.DeleteProgram(s.program)
}

func compileShader(shaderType uint32, src string) (shader uint32, err error) {
	shader = gl.CreateShader(shaderType)
	src = "#version 330\n" + src + "\x00"
	cstrs, free := gl.Strs(src)
	l := int32(len(src) - 1)
	gl.ShaderSource(shader, 1, cstrs, &l)
	free()
	gl.CompileShader(shader)
	var ok int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &ok)
	if ok == 0 {
		var size, n int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &size)
		if size > 0 {
			str := make([]byte, size+1)
			gl.GetShaderInfoLog(shader, size, &n, &str[0])
			err = fmt.Errorf("%s", str[:n])
		} else {
			err = fmt.Errorf("unknown shader compile error")
		}
		gl.DeleteShader(shader)
		return 0, err
	}
	return shader, nil
}

func linkProgram(params ...uint32) (program uint32, err error) {
	program = gl.CreateProgram()
	for _, param := range params {
		gl.AttachShader(program, param)
	}
	gl.LinkProgram(program)
	// Mark shaders for deletion when the program is deleted.
	for _, param := range params {
		gl.DeleteShader(param)
	}
	var ok int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &ok)
	if ok == 0 {
		var size, n int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &size)
		if size > 0 {
			str := make([]byte, size+1)
			gl.GetProgramInfoLog(program, size, &n, &str[0])
			err = fmt.Errorf("%s", str[:n])
		} else {
			err = fmt.Errorf("unknown link error")
		}
		gl.DeleteProgram(program)
		return 0, err
	}
	return program, nil
}
