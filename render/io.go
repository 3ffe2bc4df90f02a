package render

import "io"

// triangle3Buffer streams a fixed slice of triangles as a Renderer.
type triangle3Buffer struct {
	buf []Triangle3
}

// ReadTriangles reads from this buffer.
func (b *triangle3Buffer) ReadTriangles(t []Triangle3) (int, error) {
	if len(b.buf) == 0 {
		return 0, io.EOF
	}
	n := copy(t, b.buf)
	b.buf = b.buf[n:]
	return n, nil
}
