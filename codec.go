package bucketvec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"math/bits"
)

var (
	// ErrDecode is wrapped by every decoding failure.
	ErrDecode = errors.New("bucketvec: decode failed")
	// ErrCompactOverflow reports a compact integer wider than 64 bits.
	ErrCompactOverflow = errors.New("bucketvec: compact integer overflows uint64")
)

// Compact integer modes, selected by the two low bits of the first byte.
const (
	compactSingle = 0b00 // 6-bit value in one byte
	compactTwo    = 0b01 // 14-bit value in two bytes
	compactFour   = 0b10 // 30-bit value in four bytes
	compactBig    = 0b11 // length byte, then 4..8 little-endian bytes
)

// AppendCompact appends the compact encoding of n to dst.
//
// Values below 2^30 take one, two or four bytes with the value shifted
// left by two. Larger values take a prefix byte holding the number of
// following bytes minus four, then the value in little endian.
func AppendCompact(dst []byte, n uint64) []byte {
	switch {
	case n < 1<<6:
		return append(dst, byte(n<<2)|compactSingle)
	case n < 1<<14:
		return binary.LittleEndian.AppendUint16(dst, uint16(n<<2)|compactTwo)
	case n < 1<<30:
		return binary.LittleEndian.AppendUint32(dst, uint32(n<<2)|compactFour)
	}
	size := (bits.Len64(n) + 7) / 8
	dst = append(dst, byte(size-4)<<2|compactBig)
	for i := 0; i < size; i++ {
		dst = append(dst, byte(n>>(8*i)))
	}
	return dst
}

// ReadCompact reads one compact integer from r.
// A stream that ends inside the integer yields io.ErrUnexpectedEOF.
func ReadCompact(r io.Reader) (uint64, error) {
	var buf [9]byte
	if _, err := io.ReadFull(r, buf[:1]); err != nil {
		return 0, err
	}
	var more int
	switch buf[0] & 0b11 {
	case compactSingle:
		return uint64(buf[0] >> 2), nil
	case compactTwo:
		more = 1
	case compactFour:
		more = 3
	case compactBig:
		more = int(buf[0]>>2) + 4
		if more > 8 {
			return 0, fmt.Errorf("%w: %d payload bytes", ErrCompactOverflow, more)
		}
	}
	if _, err := io.ReadFull(r, buf[1:1+more]); err != nil {
		return 0, unexpected(err)
	}
	switch buf[0] & 0b11 {
	case compactTwo:
		return uint64(binary.LittleEndian.Uint16(buf[:2]) >> 2), nil
	case compactFour:
		return uint64(binary.LittleEndian.Uint32(buf[:4]) >> 2), nil
	}
	var n uint64
	for i := more; i >= 1; i-- {
		n = n<<8 | uint64(buf[i])
	}
	return n, nil
}

func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// ElementEncoder writes one element to w.
type ElementEncoder[T any] func(w io.Writer, value T) error

// ElementDecoder reads one element from r.
type ElementDecoder[T any] func(r io.Reader) (T, error)

// Encode writes v to w as a compact element count followed by every
// element in order. Bucket boundaries are not part of the encoding.
func (v *Vec[T]) Encode(w io.Writer, enc ElementEncoder[T]) error {
	if _, err := w.Write(AppendCompact(nil, uint64(v.len))); err != nil {
		return err
	}
	for i := range v.buckets {
		for _, e := range v.buckets[i].entries {
			if err := enc(w, e); err != nil {
				return err
			}
		}
	}
	return nil
}

// MarshalWith returns the encoding produced by Encode.
func (v *Vec[T]) MarshalWith(enc ElementEncoder[T]) ([]byte, error) {
	var buf bytes.Buffer
	if err := v.Encode(&buf, enc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a Vec written by Encode. The buckets are rebuilt from cfg,
// which need not match the configuration used for encoding.
// Any failure is wrapped with ErrDecode and the partial Vec is dropped. An
// invalid cfg is reported before anything is read and also matches
// ErrInvalidConfig.
func Decode[T any](r io.Reader, cfg GrowthConfig, dec ElementDecoder[T]) (*Vec[T], error) {
	cfg = cfg.orDefault()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	n, err := ReadCompact(r)
	if err != nil {
		return nil, fmt.Errorf("%w: length: %w", ErrDecode, err)
	}
	v := New[T](cfg)
	for i := uint64(0); i < n; i++ {
		e, err := dec(r)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d of %d: %w", ErrDecode, i, n, unexpected(err))
		}
		v.push(e)
	}
	return v, nil
}

// FixedEncoder encodes fixed-size values (integers, floats, bools and
// arrays or structs of them) in little endian.
func FixedEncoder[T any]() ElementEncoder[T] {
	return func(w io.Writer, value T) error {
		return binary.Write(w, binary.LittleEndian, value)
	}
}

// FixedDecoder is the counterpart of FixedEncoder.
func FixedDecoder[T any]() ElementDecoder[T] {
	return func(r io.Reader) (T, error) {
		var value T
		err := binary.Read(r, binary.LittleEndian, &value)
		return value, err
	}
}

// StringEncoder writes a string as its compact byte length followed by the bytes.
func StringEncoder(w io.Writer, s string) error {
	buf := AppendCompact(make([]byte, 0, 9+len(s)), uint64(len(s)))
	_, err := w.Write(append(buf, s...))
	return err
}

// StringDecoder is the counterpart of StringEncoder.
func StringDecoder(r io.Reader) (string, error) {
	n, err := ReadCompact(r)
	if err != nil {
		return "", err
	}
	if n > math.MaxInt64 {
		return "", fmt.Errorf("%w: string length %d", ErrCompactOverflow, n)
	}
	var sb bytes.Buffer
	// Copy instead of allocating n bytes up front; n is untrusted.
	if _, err := io.CopyN(&sb, r, int64(n)); err != nil {
		return "", unexpected(err)
	}
	return sb.String(), nil
}
