package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"gridsnake/internal/game"
)

func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws a game.View as flat coloured quads, one draw call per cell.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uRect  int32
	uColor int32
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(cellVertSrc, cellFragSrc)
	if err != nil {
		return nil, fmt.Errorf("cell program: %w", err)
	}
	r := &Renderer{prog: prog}

	// Unit quad (6 vertices, 2 triangles).
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	gl.UseProgram(prog)
	r.uRect = gl.GetUniformLocation(prog, gl.Str("uRect\x00"))
	r.uColor = gl.GetUniformLocation(prog, gl.Str("uColor\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	cr, cg, cb := Palette.Grass.Floats()
	gl.ClearColor(cr, cg, cb, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
}

// Draw renders the body head first, then the food.
func (r *Renderer) Draw(v game.View) {
	for i, p := range v.Segments {
		c := Palette.Body
		if i == 0 {
			c = Palette.Head
		}
		r.cell(p, v, c)
	}
	r.cell(v.Food, v, Palette.Food)
}

func (r *Renderer) cell(p game.Point, v game.View, c RGB) {
	gl.Uniform4f(r.uRect, float32(p.X)*v.CellW, float32(p.Y)*v.CellH, v.CellW, v.CellH)
	cr, cg, cb := c.Floats()
	gl.Uniform3f(r.uColor, cr, cg, cb)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

func (r *Renderer) EndFrame() {
	gl.BindVertexArray(0)
}
