// Package graphics is an immediate mode renderer for flat coloured
// rectangles and lines. Every queued command is uploaded and drawn on its own,
// there is no batching.
package graphics

import (
	"fmt"
	"image/color"
	"log"
)

// MeshBufferSize is the size in bytes of the one vertex buffer every command
// is uploaded into.
const MeshBufferSize = 60000

// FloatsPerVertex is a position (x, y, z) followed by a colour (r, g, b).
const FloatsPerVertex = 6

const floatSize = 4

type Mode uint8

const (
	Triangles Mode = iota
	Lines
)

func (m Mode) String() string {
	switch m {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

type Color struct {
	R, G, B float32
}

func ColorFromRGBA(c color.RGBA) Color {
	return Color{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
	}
}

type Point struct {
	X, Y float32
}

type Command struct {
	Vertices []float32
	Mode     Mode
}

func (c *Command) VertexCount() int32 {
	return int32(len(c.Vertices) / FloatsPerVertex)
}

// Device is the set of graphics backend calls the renderer is built from.
type Device interface {
	CompileProgram(vertexSource, fragmentSource string) (uint32, error)
	CreateMesh(size int, stride int32) (vao, vbo uint32)
	Upload(vbo uint32, vertices []float32)
	Draw(program, vao uint32, mode Mode, count int32)
	SetClearColor(r, g, b float32)
	Clear()
	Release(program, vao, vbo uint32)
}

type Renderer struct {
	dev     Device
	vao     uint32
	vbo     uint32
	program uint32
	pending []Command
	closed  bool
}

// NewRenderer allocates the vertex buffer and links the shader program. A
// program that fails to compile or link is returned as an error holding the
// backend's log.
func NewRenderer(dev Device) (*Renderer, error) {
	program, err := dev.CompileProgram(VertexShaderSource, FragmentShaderSource)
	if nil != err {
		return nil, fmt.Errorf("unable to build shader program: %w", err)
	}
	vao, vbo := dev.CreateMesh(MeshBufferSize, FloatsPerVertex*floatSize)
	return &Renderer{
		dev:     dev,
		vao:     vao,
		vbo:     vbo,
		program: program,
	}, nil
}

func (r *Renderer) DrawRectangle(x, y, width, height float32, c Color) {
	vertices := []float32{
		x, y, 0, c.R, c.G, c.B,
		x + width, y, 0, c.R, c.G, c.B,
		x, y + height, 0, c.R, c.G, c.B,
		x, y + height, 0, c.R, c.G, c.B,
		x + width, y, 0, c.R, c.G, c.B,
		x + width, y + height, 0, c.R, c.G, c.B,
	}
	r.pending = append(r.pending, Command{Vertices: vertices, Mode: Triangles})
}

func (r *Renderer) DrawLine(first, second Point, c Color) {
	vertices := []float32{
		first.X, first.Y, 0, c.R, c.G, c.B,
		second.X, second.Y, 0, c.R, c.G, c.B,
	}
	r.pending = append(r.pending, Command{Vertices: vertices, Mode: Lines})
}

// Pending returns the commands queued since the last Render.
func (r *Renderer) Pending() []Command {
	return r.pending
}

// Render draws the queued commands in order and empties the queue. Each
// command overwrites the start of the shared buffer before its draw call.
// After Close it only drops the queue.
func (r *Renderer) Render() {
	if r.closed {
		r.pending = nil
		return
	}
	for i := range r.pending {
		command := &r.pending[i]
		if len(command.Vertices)*floatSize > MeshBufferSize {
			log.Printf("skipping %v command of %d vertices, larger than the mesh buffer", command.Mode, command.VertexCount())
			continue
		}
		r.dev.Upload(r.vbo, command.Vertices)
		r.dev.Draw(r.program, r.vao, command.Mode, command.VertexCount())
	}
	r.pending = r.pending[:0]
}

func (r *Renderer) SetClearColor(red, green, blue float32) {
	r.dev.SetClearColor(red, green, blue)
}

func (r *Renderer) Clear() {
	r.dev.Clear()
}

// Close releases the buffer, vertex array and program. It is safe to call
// more than once.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.dev.Release(r.program, r.vao, r.vbo)
	r.pending = nil
	r.closed = true
}
