package bucketvec

import "github.com/zeebo/blake3"

// Digest is a 32-byte BLAKE3 hash.
type Digest [32]byte

// Digest returns the BLAKE3 hash of the Encode output of v.
// Vecs holding the same elements share a digest whatever their layout.
func (v *Vec[T]) Digest(enc ElementEncoder[T]) (Digest, error) {
	h := blake3.New()
	if err := v.Encode(h, enc); err != nil {
		return Digest{}, err
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d, nil
}
