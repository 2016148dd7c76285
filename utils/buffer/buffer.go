// Package buffer reads and writes little-endian uint64 framed values on writers
// and readers that expose their internal buffer, such as bufio.Writer and
// bufio.Reader, or on the fixed-size Buffer of this package.
package buffer

import (
	"fmt"
	"io"
)

// Writer is the subset of the methods of bufio.Writer used by the Write
// functions of this package.
type Writer interface {
	io.Writer
	Flush() (err error)
	AvailableBuffer() []byte
	Available() int
}

// Buffer is a Writer and Reader over a fixed-size byte slice. Writes past the
// end of the slice fail instead of growing it.
type Buffer struct {
	buf []byte
	// write offset
	w int
	// read offset
	r int
}

// NewBuffer returns a Buffer reading from and writing to p, starting at p[0].
func NewBuffer(p []byte) *Buffer {
	return &Buffer{buf: p}
}

// NewBufferSize returns a Buffer backed by a new slice of size bytes.
func NewBufferSize(size int) *Buffer {
	return NewBuffer(make([]byte, size))
}

// Write appends p at the write offset of b.
func (b *Buffer) Write(p []byte) (n int, err error) {
	if len(p) > b.Available() {
		return 0, fmt.Errorf("buffer: cannot write %d bytes, %d available: %w", len(p), b.Available(), io.ErrShortBuffer)
	}
	// copy is a no-op when p was obtained from AvailableBuffer
	n = copy(b.buf[b.w:], p)
	b.w += n
	return
}

// Flush is a no-op.
func (b *Buffer) Flush() (err error) {
	return nil
}

// AvailableBuffer returns an empty slice over the unwritten part of b, valid
// until the next write.
func (b *Buffer) AvailableBuffer() []byte {
	return b.buf[b.w:b.w]
}

// Available returns the number of bytes that can still be written.
func (b *Buffer) Available() int {
	return len(b.buf) - b.w
}

// Bytes returns the backing slice.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Read copies the bytes at the read offset of b into p. It returns io.EOF if
// fewer than len(p) bytes are left.
func (b *Buffer) Read(p []byte) (n int, err error) {
	n = copy(p, b.buf[b.r:])
	b.r += n
	if n < len(p) {
		return n, io.EOF
	}
	return
}

// Size returns the number of bytes left to read.
func (b *Buffer) Size() int {
	return len(b.buf) - b.r
}

// Peek returns the next n bytes without consuming them. It returns the
// remaining bytes and io.EOF if fewer than n are left.
func (b *Buffer) Peek(n int) ([]byte, error) {
	if n > b.Size() {
		return b.buf[b.r:], io.EOF
	}
	return b.buf[b.r : b.r+n], nil
}

// Discard consumes the next n bytes.
func (b *Buffer) Discard(n int) (discarded int, err error) {
	if n > b.Size() {
		discarded = b.Size()
		b.r = len(b.buf)
		return discarded, io.EOF
	}
	b.r += n
	return n, nil
}
