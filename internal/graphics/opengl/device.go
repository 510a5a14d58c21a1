// Package opengl implements graphics.Device on an OpenGL 3.3 core context.
// A context must be current on the calling thread before Init.
package opengl

import (
	"fmt"
	"strings"

	"git.lost.host/meutraa/caeli/internal/graphics"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Init loads the GL function pointers for the current context.
func Init() error {
	if err := gl.Init(); nil != err {
		return fmt.Errorf("unable to load OpenGL: %w", err)
	}
	return nil
}

func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

type Device struct{}

func compileShader(source string, xtype uint32) (uint32, error) {
	shader := gl.CreateShader(xtype)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(msg))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %v", strings.TrimRight(msg, "\x00"))
	}
	return shader, nil
}

func (d *Device) CompileProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if nil != err {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if nil != err {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(msg))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(msg, "\x00"))
	}

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	return program, nil
}

// CreateMesh allocates a dynamic vertex buffer of size bytes and a vertex
// array reading a vec3 position then a vec3 colour from it.
func (d *Device) CreateMesh(size int, stride int32) (uint32, uint32) {
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)

	gl.BindVertexArray(vao)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.BindVertexArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao, vbo
}

func (d *Device) Upload(vbo uint32, vertices []float32) {
	if len(vertices) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (d *Device) Draw(program, vao uint32, mode graphics.Mode, count int32) {
	gl.UseProgram(program)
	gl.BindVertexArray(vao)
	gl.DrawArrays(drawMode(mode), 0, count)
	gl.BindVertexArray(0)
}

func drawMode(m graphics.Mode) uint32 {
	if m == graphics.Lines {
		return gl.LINES
	}
	return gl.TRIANGLES
}

func (d *Device) SetClearColor(r, g, b float32) {
	gl.ClearColor(r, g, b, 1)
}

func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) Release(program, vao, vbo uint32) {
	gl.DeleteProgram(program)
	gl.DeleteVertexArrays(1, &vao)
	gl.DeleteBuffers(1, &vbo)
}
