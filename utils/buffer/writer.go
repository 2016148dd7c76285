package buffer

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

// WriteAsUint64 writes the 8 bytes of c to w as a uint64.
// T must be an 8-byte type such as int, uint64 or float64.
func WriteAsUint64[T any](w Writer, c T) (n int64, err error) {
	/* #nosec G103 -- T is an 8-byte value type */
	return WriteUint64(w, *(*uint64)(unsafe.Pointer(&c)))
}

// WriteAsUint64Slice writes the elements of c to w as uint64.
// T must be an 8-byte type such as int, uint64 or float64.
func WriteAsUint64Slice[T any](w Writer, c []T) (n int64, err error) {
	/* #nosec G103 -- T is an 8-byte value type */
	return WriteUint64Slice(w, *(*[]uint64)(unsafe.Pointer(&c)))
}

// available returns the number of uint64 that fit in the buffer of w,
// flushing w if there is no room left.
func available(w Writer) (int, error) {
	if w.Available() < 8 {
		if err := w.Flush(); err != nil {
			return 0, err
		}
		if w.Available() < 8 {
			return 0, fmt.Errorf("buffer: less than 8 bytes available after flush")
		}
	}
	return w.Available() >> 3, nil
}

// WriteUint64 writes c to w in little-endian order.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if _, err = available(w); err != nil {
		return
	}

	buf := binary.LittleEndian.AppendUint64(w.AvailableBuffer(), c)

	inc, err := w.Write(buf)

	return int64(inc), err
}

// WriteUint64Slice writes the elements of c to w in little-endian order,
// filling and flushing the buffer of w as many times as needed.
func WriteUint64Slice(w Writer, c []uint64) (n int64, err error) {

	for len(c) > 0 {

		var room int
		if room, err = available(w); err != nil {
			return
		}

		if room > len(c) {
			room = len(c)
		}

		buf := w.AvailableBuffer()
		for _, v := range c[:room] {
			buf = binary.LittleEndian.AppendUint64(buf, v)
		}

		var inc int
		inc, err = w.Write(buf)
		n += int64(inc)
		if err != nil {
			return
		}

		c = c[room:]
	}

	return
}
