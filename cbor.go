package bucketvec

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// cborEnc uses Core Deterministic Encoding so equal Vecs encode to
// identical bytes regardless of their bucket layout.
var cborEnc cbor.EncMode

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("bucketvec: CBOR encoder initialization failed: " + err.Error())
	}
}

// MarshalCBOR encodes v as a flat CBOR array of its elements.
func (v *Vec[T]) MarshalCBOR() ([]byte, error) {
	return cborEnc.Marshal(v.Slice())
}

// UnmarshalCBOR replaces the contents of v with the elements of a CBOR
// array. The buckets are rebuilt from the configuration of v.
func (v *Vec[T]) UnmarshalCBOR(data []byte) error {
	var elems []T
	if err := cbor.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	*v = Vec[T]{cfg: v.cfg.orDefault()}
	v.Extend(elems...)
	return nil
}
