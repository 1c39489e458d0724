package zed

import (
	"filippo.io/edwards25519"
)

// expandSeed hashes the (mode-preprocessed) seed to a 64-byte private hash,
// clamps its lower half into the Ed25519 private scalar a, and returns both
// a and the full private hash (whose upper half is the signer's nonce
// seed). The caller owns privateHash and a once returned, and MUST zero
// both — privateHash with zero(privateHash[:]), a with zeroScalar(a) —
// before returning from whichever public operation called expandSeed.
func expandSeed(mode Mode, seed *[SeedSize]byte) (a *edwards25519.Scalar, privateHash [hashSize]byte) {
	pre := preprocessSeed(mode, seed)
	privateHash = hash512(mode, pre[:])
	zero(pre[:])

	bits := privateHash[:SeedSize]

	// Standard Ed25519 clamp, applied to a local copy so privateHash keeps
	// its unmodified lower half available to the caller if ever needed.
	var clamped [SeedSize]byte
	copy(clamped[:], bits)
	clamped[0] &= 0xF8
	clamped[31] &= 0x7F
	clamped[31] |= 0x40

	// SetBytesWithClamping re-applies the same clamp; calling it on
	// already-clamped bits is idempotent and keeps the clamp logic visibly
	// explicit per spec.md 4.3 step 3 while still deriving the scalar
	// through the arithmetic library rather than by hand.
	var err error
	a, err = edwards25519.NewScalar().SetBytesWithClamping(clamped[:])
	zero(clamped[:])
	if err != nil {
		// clamped is always exactly 32 bytes, so SetBytesWithClamping
		// cannot reject it; a failure here means the library's input
		// contract changed underneath us.
		panic("zed: expandSeed: clamp failed: " + err.Error())
	}

	return a, privateHash
}
