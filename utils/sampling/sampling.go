// Package sampling implements secure sampling of bytes and floats.
package sampling

import (
	"encoding/binary"
	"fmt"
)

// ReadFloat64 reads 8 bytes from prng and maps them to a float between min and max.
// Two PRNG seeded with the same key produce the same sequence of floats.
func ReadFloat64(prng PRNG, min, max float64) (float64, error) {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		return 0, fmt.Errorf("sampling.ReadFloat64: %w", err)
	}
	// 53 random bits are mapped to [0, 1).
	f := float64(binary.LittleEndian.Uint64(b)>>11) / (1 << 53)
	return min + f*(max-min), nil
}
