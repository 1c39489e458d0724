package zed

import "filippo.io/edwards25519"

// Sign produces a 64-byte signature R‖S on msg under sk (spec.md 4.5). The
// corresponding public key can be obtained independently with sk.Public().
func (sk *Secret) Sign(msg []byte) [SignatureSize]byte {
	return sign(sk.mode, &sk.seed, msg)
}

// Sign is the package-level form of the Sign primitive, matching the
// (mode, seed, message) -> signature shape of spec.md's primitive API
// table.
func Sign(mode Mode, seed [SeedSize]byte, msg []byte) [SignatureSize]byte {
	return sign(mode, &seed, msg)
}

func sign(mode Mode, seed *[SeedSize]byte, msg []byte) [SignatureSize]byte {
	a, privateHash := expandSeed(mode, seed)
	defer zero(privateHash[:])
	defer zeroScalar(a)

	// r = reduce64( H(nonce-seed || msg) )
	nonceSeed := privateHash[SeedSize:]
	rDigest := hash512(mode, nonceSeed, msg)
	defer zero(rDigest[:])
	r, err := edwards25519.NewScalar().SetUniformBytes(rDigest[:])
	if err != nil {
		panic("zed: sign: nonce reduction failed: " + err.Error())
	}
	defer zeroScalar(r)

	// R = compress(r * G)
	R := edwards25519.NewIdentityPoint().ScalarBaseMult(r)

	// A = derive(mode, seed) re-derived fresh, per spec.md 4.5 step 4.
	publicKey := derive(mode, seed).Key()

	// h = reduce64( H(R || A || msg) )
	hDigest := hash512(mode, R.Bytes(), publicKey[:], msg)
	defer zero(hDigest[:])
	h, err := edwards25519.NewScalar().SetUniformBytes(hDigest[:])
	if err != nil {
		panic("zed: sign: challenge reduction failed: " + err.Error())
	}

	// S = (h*a + r) mod ℓ
	s := edwards25519.NewScalar().MultiplyAdd(h, a, r)

	var sig [SignatureSize]byte
	copy(sig[:32], R.Bytes())
	copy(sig[32:], s.Bytes())
	return sig
}
