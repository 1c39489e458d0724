// Package zed implements the dual-personality Ed25519 signature core shared
// by NEM and Symbol: public key derivation, signing, and verification over
// the Edwards form of Curve25519, parameterized by a 512-bit hash mode.
package zed

// Mode selects the hash personality used for private-key expansion and
// challenge derivation, and indirectly (via preprocessSeed) the byte order
// in which the seed is fed to that hash.
type Mode int

const (
	// Sha2_512 is the canonical Ed25519 variant used by Symbol: SHA-512,
	// seed fed in its natural byte order.
	Sha2_512 Mode = iota

	// Keccak is the variant used by NEM: Keccak-512 (pre-standardization,
	// not NIST SHA3), seed fed in reversed byte order.
	Keccak
)

func (m Mode) String() string {
	if m == Keccak {
		return "Keccak"
	}
	return "Sha2_512"
}

const (
	// SeedSize is the length in bytes of a secret key seed.
	SeedSize = 32

	// PublicKeySize is the length in bytes of a compressed public key.
	PublicKeySize = 32

	// SignatureSize is the length in bytes of an encoded signature (R || S).
	SignatureSize = 64

	// hashSize is the length in bytes of a single 512-bit hash output.
	hashSize = 64
)
