package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/irfansharif/tinted/internal/scene"
)

const initialBufferVertices = 1024

// buffer is a VAO/VBO pair holding one mesh. It grows by doubling when a
// mesh no longer fits.
type buffer struct {
	vao, vbo uint32
	capacity int   // vertices
	count    int32 // vertices currently uploaded
}

func newBuffer(capacity int) *buffer {
	b := &buffer{}
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	b.allocate(max(capacity, initialBufferVertices))

	// Position (x, y), then color (r, g, b, a).
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, scene.FloatsPerVertex*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, scene.FloatsPerVertex*4, gl.PtrOffset(8))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return b
}

// allocate sizes the bound VBO for capacity vertices.
func (b *buffer) allocate(capacity int) {
	b.capacity = capacity
	gl.BufferData(gl.ARRAY_BUFFER, capacity*scene.FloatsPerVertex*4, nil, gl.DYNAMIC_DRAW)
}

// upload replaces the buffer's contents with mesh. It reports whether the
// buffer had to grow.
func (b *buffer) upload(mesh scene.Mesh) (grew bool) {
	n := mesh.VertexCount()
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if n > b.capacity {
		capacity := b.capacity
		for capacity < n {
			capacity *= 2
		}
		b.allocate(capacity)
		grew = true
	}
	if n > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(mesh)*4, gl.Ptr(&mesh[0]))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	b.count = int32(n)
	return grew
}

func (b *buffer) draw() {
	if b.count == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, b.count)
	gl.BindVertexArray(0)
}

func (b *buffer) cleanup() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
}
