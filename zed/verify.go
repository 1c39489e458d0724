package zed

import "filippo.io/edwards25519"

// Verify checks whether sig is a valid signature on msg under pk, for the
// mode pk was derived in (spec.md 4.6).
func (pk *Public) Verify(msg []byte, sig [SignatureSize]byte) bool {
	key := pk.Key()
	return verify(pk.mode, &key, msg, &sig)
}

// Verify is the package-level form of the Verify primitive, matching
// spec.md's primitive API table.
func Verify(mode Mode, publicKey [PublicKeySize]byte, msg []byte, sig [SignatureSize]byte) bool {
	return verify(mode, &publicKey, msg, &sig)
}

func verify(mode Mode, publicKey *[PublicKeySize]byte, msg []byte, sig *[SignatureSize]byte) bool {
	// 1. reject the known weak all-zero public key.
	var zeroKey [PublicKeySize]byte
	if *publicKey == zeroKey {
		return false
	}

	// 2. S must be canonical and non-zero.
	s, err := edwards25519.NewScalar().SetCanonicalBytes(sig[32:])
	if err != nil {
		return false
	}
	if s.Equal(edwards25519.NewScalar()) == 1 {
		return false
	}

	// 3. h = reduce64( H(R || publicKey || msg) )
	hDigest := hash512(mode, sig[:32], publicKey[:], msg)
	h, err := edwards25519.NewScalar().SetUniformBytes(hDigest[:])
	if err != nil {
		return false
	}

	// 4. decompress R.
	rCandidate, err := edwards25519.NewIdentityPoint().SetBytes(sig[:32])
	if err != nil {
		return false
	}

	// 5. decompress the public key point A.
	a, err := edwards25519.NewIdentityPoint().SetBytes(publicKey[:])
	if err != nil {
		return false
	}

	// 6. reject small-order or torsion-ful public keys.
	if isSmallOrder(a) || !isTorsionFree(a) {
		return false
	}

	// 7. R' = h*(-A) + S*G, via the variable-time double-scalar-multiply-
	// with-basepoint routine (public inputs only, vartime is acceptable).
	negA := edwards25519.NewIdentityPoint().Negate(a)
	rPrime := edwards25519.NewIdentityPoint().VarTimeDoubleScalarBaseMult(h, negA, s)

	// 8. valid iff R' == R.
	return rPrime.Equal(rCandidate) == 1
}
