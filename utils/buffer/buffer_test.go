package buffer

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {

	values := []uint64{0, 1, 2, 1 << 63, 0xFFFFFFFFFFFFFFFF}

	t.Run("Buffer", func(t *testing.T) {
		b := NewBufferSize(8 + 8*len(values))

		_, err := WriteAsUint64[int](b, len(values))
		require.NoError(t, err)
		_, err = WriteUint64Slice(b, values)
		require.NoError(t, err)
		require.Equal(t, 0, b.Available())

		_, err = WriteUint64(b, 7)
		require.Error(t, err)

		var n int
		_, err = ReadAsUint64[int](b, &n)
		require.NoError(t, err)
		require.Equal(t, len(values), n)

		have := make([]uint64, n)
		_, err = ReadUint64Slice(b, have)
		require.NoError(t, err)
		require.Equal(t, values, have)
	})

	t.Run("Bufio/SmallBuffer", func(t *testing.T) {
		ints := make([]int, 1000)
		for i := range ints {
			ints[i] = i * i
		}

		var data bytes.Buffer
		w := bufio.NewWriterSize(&data, 16)
		_, err := WriteAsUint64Slice(w, ints)
		require.NoError(t, err)
		require.NoError(t, w.Flush())
		require.Equal(t, 8*len(ints), data.Len())

		r := bufio.NewReaderSize(&data, 16)
		have := make([]int, len(ints))
		_, err = ReadAsUint64Slice(r, have)
		require.NoError(t, err)
		require.Equal(t, ints, have)
	})
}
