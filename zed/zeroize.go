package zed

import "filippo.io/edwards25519"

// zero overwrites buf with zeros in place. Called on every exit path that
// touched a secret-derived buffer (private hash, clamped scalar bytes,
// nonce seed) so no plaintext secret survives in a reachable stack frame.
func zero(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}

// zeroScalar overwrites s in place with the zero scalar. edwards25519.Scalar
// keeps its bytes unexported, so Set(0) through the library's own API is the
// only way to clear a scalar the core derived from secret material (the
// clamped private scalar a, the per-signature nonce r).
func zeroScalar(s *edwards25519.Scalar) {
	s.Set(edwards25519.NewScalar())
}
