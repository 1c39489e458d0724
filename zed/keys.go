package zed

import (
	"filippo.io/edwards25519"
)

// Public is the working form of a dual-mode Ed25519 public key: a
// decompressed Edwards point together with the mode it was derived under.
type Public struct {
	mode  Mode
	point *edwards25519.Point
}

// Key returns the canonical 32-byte compressed encoding of the public key.
func (pk *Public) Key() [PublicKeySize]byte {
	var out [PublicKeySize]byte
	copy(out[:], pk.point.Bytes())
	return out
}

// PublicFromKey builds the working form of a public key from its 32-byte
// compressed encoding. It does not validate subgroup membership — that is
// the verifier's job (spec.md 4.6 steps 5-6) — only that the bytes
// decompress to a point on the curve.
func PublicFromKey(mode Mode, key [PublicKeySize]byte) (*Public, bool) {
	point, err := edwards25519.NewIdentityPoint().SetBytes(key[:])
	if err != nil {
		return nil, false
	}
	return &Public{mode: mode, point: point}, true
}

// Secret is the working form of a dual-mode Ed25519 secret key: the raw
// 32-byte seed and the mode it is interpreted under. The seed is the only
// thing retained; every derived intermediate (private hash, clamped
// scalar, nonce) is recomputed and zeroized on each call, per spec.md 4.3
// and 5 — the core never caches secret-derived state across calls.
type Secret struct {
	mode Mode
	seed [SeedSize]byte
}

// NewSecret wraps a 32-byte seed as a working secret key for mode.
func NewSecret(mode Mode, seed [SeedSize]byte) *Secret {
	return &Secret{mode: mode, seed: seed}
}

// Public derives the corresponding public key (spec.md 4.4 Derive).
func (sk *Secret) Public() *Public {
	return derive(sk.mode, &sk.seed)
}

// Derive computes the 32-byte public key for (mode, seed) without
// retaining any working Secret object.
func Derive(mode Mode, seed [SeedSize]byte) [PublicKeySize]byte {
	return derive(mode, &seed).Key()
}

// derive is the shared implementation behind Derive and (*Secret).Public.
func derive(mode Mode, seed *[SeedSize]byte) *Public {
	a, privateHash := expandSeed(mode, seed)
	defer zero(privateHash[:])
	defer zeroScalar(a)

	point := edwards25519.NewIdentityPoint().ScalarBaseMult(a)
	return &Public{mode: mode, point: point}
}
