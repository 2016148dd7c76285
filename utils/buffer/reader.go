package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
	"unsafe"
)

// Reader is the subset of the methods of bufio.Reader used by the Read
// functions of this package.
type Reader interface {
	io.Reader
	Size() int
	Peek(n int) ([]byte, error)
	Discard(n int) (discarded int, err error)
}

// ReadAsUint64 reads a uint64 from r into the 8 bytes of c.
// T must be an 8-byte type such as int, uint64 or float64.
func ReadAsUint64[T any](r Reader, c *T) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("buffer: ReadAsUint64 into nil pointer")
	}

	/* #nosec G103 -- T is an 8-byte value type */
	return ReadUint64(r, (*uint64)(unsafe.Pointer(c)))
}

// ReadAsUint64Slice reads len(c) uint64 from r into the elements of c.
// T must be an 8-byte type such as int, uint64 or float64.
func ReadAsUint64Slice[T any](r Reader, c []T) (n int64, err error) {
	/* #nosec G103 -- T is an 8-byte value type */
	return ReadUint64Slice(r, *(*[]uint64)(unsafe.Pointer(&c)))
}

// ReadUint64 reads a little-endian uint64 from r into c.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("buffer: ReadUint64 into nil pointer")
	}

	var bb [8]byte

	inc, err := io.ReadFull(r, bb[:])
	if err != nil {
		return int64(inc), err
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return int64(inc), nil
}

// ReadUint64Slice reads len(c) little-endian uint64 from r into c, peeking at
// most one buffer of r at a time.
func ReadUint64Slice(r Reader, c []uint64) (n int64, err error) {

	for len(c) > 0 {

		size := r.Size()
		if len(c)<<3 < size {
			size = len(c) << 3
		}

		var slice []byte
		if slice, err = r.Peek(size); err != nil && len(slice) < 8 {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return
		}

		buffered := len(slice) >> 3
		if buffered == 0 {
			return n, fmt.Errorf("buffer: ReadUint64Slice: %w", io.ErrUnexpectedEOF)
		}

		for i := range c[:buffered] {
			c[i] = binary.LittleEndian.Uint64(slice[i<<3:])
		}

		var inc int
		inc, err = r.Discard(buffered << 3)
		n += int64(inc)
		if err != nil {
			return
		}

		c = c[buffered:]
	}

	return n, nil
}
