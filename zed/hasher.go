package zed

import (
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/sha3"
)

// hasher is a uniform 512-bit hash object parameterized by Mode, forwarding
// write/sum to whichever single backend — Keccak-512 or SHA-512 — mode
// selected at construction time (newHasher). spec.md section 4.1 leaves the
// choice between a single selected backend and a dual-backend struct (as
// the Rust Hasher512 uses) open; this core picks the single-backend form.
type hasher struct {
	mode Mode
	h    hash.Hash
}

// newHasher creates a fresh hash state for the given personality.
func newHasher(mode Mode) *hasher {
	if mode == Keccak {
		return &hasher{mode: mode, h: sha3.NewLegacyKeccak512()}
	}
	return &hasher{mode: mode, h: sha512.New()}
}

// write absorbs a byte slice.
func (hs *hasher) write(p []byte) {
	hs.h.Write(p)
}

// sum produces exactly hashSize output bytes into out.
func (hs *hasher) sum(out *[hashSize]byte) {
	hs.h.Sum(out[:0])
}

// hash512 is a one-shot convenience wrapper: hash(mode, parts...) -> digest.
func hash512(mode Mode, parts ...[]byte) [hashSize]byte {
	hs := newHasher(mode)
	for _, p := range parts {
		hs.write(p)
	}
	var out [hashSize]byte
	hs.sum(&out)
	return out
}
