package strategy

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/tuneinsight/isostrategy/utils/buffer"
	"github.com/zeebo/blake3"
)

// DigestSize is the size in bytes of a strategy digest.
const DigestSize = 32

// MaxDecodedLeafCount is the largest leaf count ReadFrom accepts.
const MaxDecodedLeafCount = 1 << 20

// BinarySize returns the serialized size of the object in bytes.
func (s *Strategy) BinarySize() int {
	// leafCount, mulCost, isoCost, cost, ops.Mul, ops.Iso, len(sequence), sequence
	return 8*7 + 8*len(s.Sequence)
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see isostrategy/utils/buffer/writer.go),
// it will be wrapped into a bufio.Writer.
func (s *Strategy) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		lit := s.Parameters.ParametersLiteral()

		if inc, err = buffer.WriteAsUint64[int](w, lit.LeafCount); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteAsUint64[int]: %w", err)
		}

		n += inc

		for _, c := range []float64{lit.MulCost, lit.IsoCost, s.Cost} {
			if inc, err = buffer.WriteAsUint64[float64](w, c); err != nil {
				return n + inc, fmt.Errorf("buffer.WriteAsUint64[float64]: %w", err)
			}
			n += inc
		}

		for _, c := range []int{s.Ops.Mul, s.Ops.Iso, len(s.Sequence)} {
			if inc, err = buffer.WriteAsUint64[int](w, c); err != nil {
				return n + inc, fmt.Errorf("buffer.WriteAsUint64[int]: %w", err)
			}
			n += inc
		}

		if inc, err = buffer.WriteAsUint64Slice[int](w, s.Sequence); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteAsUint64Slice[int]: %w", err)
		}

		n += inc

		return n, w.Flush()

	default:
		return s.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface. Sequences longer than MaxDecodedLeafCount are
// rejected before any allocation.
//
// Unless r implements the buffer.Reader interface (see isostrategy/utils/buffer/reader.go),
// it will be wrapped into a bufio.Reader.
func (s *Strategy) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		var lit ParametersLiteral
		var cost float64
		var ops OpCount
		var size int

		if inc, err = buffer.ReadAsUint64[int](r, &lit.LeafCount); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadAsUint64[int]: %w", err)
		}

		n += inc

		for _, c := range []*float64{&lit.MulCost, &lit.IsoCost, &cost} {
			if inc, err = buffer.ReadAsUint64[float64](r, c); err != nil {
				return n + inc, fmt.Errorf("buffer.ReadAsUint64[float64]: %w", err)
			}
			n += inc
		}

		for _, c := range []*int{&ops.Mul, &ops.Iso, &size} {
			if inc, err = buffer.ReadAsUint64[int](r, c); err != nil {
				return n + inc, fmt.Errorf("buffer.ReadAsUint64[int]: %w", err)
			}
			n += inc
		}

		var params Parameters
		if params, err = NewParametersFromLiteral(lit); err != nil {
			return n, fmt.Errorf("strategy.ReadFrom: %w", err)
		}

		if size != params.LeafCount() {
			return n, fmt.Errorf("strategy.ReadFrom: sequence length %d does not match leaf count %d: %w", size, params.LeafCount(), ErrInvalidArgument)
		}

		if size > MaxDecodedLeafCount {
			return n, fmt.Errorf("strategy.ReadFrom: leaf count %d exceeds %d: %w", size, MaxDecodedLeafCount, ErrInvalidArgument)
		}

		if b, ok := r.(*buffer.Buffer); ok && size > b.Size()>>3 {
			return n, fmt.Errorf("strategy.ReadFrom: sequence of %d elements but %d bytes left: %w", size, b.Size(), ErrInvalidArgument)
		}

		seq := make([]int, size)
		if inc, err = buffer.ReadAsUint64Slice[int](r, seq); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadAsUint64Slice[int]: %w", err)
		}
		n += inc

		*s = Strategy{
			Parameters: params,
			Cost:       cost,
			Ops:        ops,
			Sequence:   seq,
		}

		return n, nil

	default:
		return s.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (s *Strategy) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(s.BinarySize())
	_, err = s.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (s *Strategy) UnmarshalBinary(p []byte) (err error) {
	_, err = s.ReadFrom(buffer.NewBuffer(p))
	return
}

// strategyNoMethods has the fields of Strategy without its (un)marshalling methods.
type strategyNoMethods Strategy

// UnmarshalJSON reads a JSON representation of a strategy into the receiver and
// checks its consistency.
func (s *Strategy) UnmarshalJSON(data []byte) (err error) {
	var tmp strategyNoMethods
	if err = json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	return s.setChecked(tmp)
}

// MarshalCBOR returns a CBOR representation of the strategy.
func (s *Strategy) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal((*strategyNoMethods)(s))
}

// UnmarshalCBOR reads a CBOR representation of a strategy into the receiver and
// checks its consistency.
func (s *Strategy) UnmarshalCBOR(data []byte) (err error) {
	var tmp strategyNoMethods
	if err = cbor.Unmarshal(data, &tmp); err != nil {
		return err
	}
	return s.setChecked(tmp)
}

func (s *Strategy) setChecked(tmp strategyNoMethods) error {
	if tmp.Parameters.LeafCount() < MinLeafCount {
		return fmt.Errorf("strategy: missing or invalid parameters: %w", ErrInvalidArgument)
	}
	if len(tmp.Sequence) != tmp.Parameters.LeafCount() {
		return fmt.Errorf("strategy: sequence length %d does not match leaf count %d: %w", len(tmp.Sequence), tmp.Parameters.LeafCount(), ErrInvalidArgument)
	}
	*s = Strategy(tmp)
	return nil
}

// MarshalCBOR returns a CBOR representation of this parameter set.
func (p Parameters) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(p.ParametersLiteral())
}

// UnmarshalCBOR reads a CBOR representation of a parameter set into the receiver.
func (p *Parameters) UnmarshalCBOR(data []byte) (err error) {
	var params ParametersLiteral
	if err = cbor.Unmarshal(data, &params); err != nil {
		return err
	}
	*p, err = NewParametersFromLiteral(params)
	return
}

// Digest returns the BLAKE3 hash of the leaf count and the split sequence of the
// strategy. Strategies with equal digests are evaluated identically, regardless of
// the costs they were computed with.
func (s *Strategy) Digest() (digest [DigestSize]byte) {

	buf := buffer.NewBufferSize(8 + 8*len(s.Sequence))

	// Writes on a buffer of the exact size cannot fail.
	if _, err := buffer.WriteAsUint64[int](buf, s.LeafCount()); err != nil {
		panic(err)
	}

	if _, err := buffer.WriteAsUint64Slice[int](buf, s.Sequence); err != nil {
		panic(err)
	}

	return blake3.Sum256(buf.Bytes())
}
