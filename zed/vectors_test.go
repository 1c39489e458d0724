package zed

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustSeed(t *testing.T, s string) [SeedSize]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != SeedSize {
		t.Fatalf("bad seed literal %q: %v", s, err)
	}
	var out [SeedSize]byte
	copy(out[:], b)
	return out
}

// TestSeedScenarioSymbolKeyConversion is spec.md section 8, seed scenario 1:
// a standard Ed25519 (Sha2_512) key-conversion vector.
func TestSeedScenarioSymbolKeyConversion(t *testing.T) {
	seed := mustSeed(t, "575DBB3062267EFF57C970A336EBBC8FBCFE12C5BD3ED7BC11EB0481D7704CED")
	want, _ := hex.DecodeString("2E834140FD66CF87B254A693A2C7862C819217B676D3943267156625E816EC6F")

	got := Derive(Sha2_512, seed)
	if !bytes.Equal(got[:], want) {
		t.Fatalf("Sha2_512 derive mismatch: got %x want %x", got, want)
	}
}

// TestSeedScenarioNemKeyConversion is spec.md section 8, seed scenario 2:
// the same seed under Keccak must derive a *different* public key than
// under Sha2_512. It does not compare against a NEM vector, so it does not
// on its own show the seed-reversal preprocessing step.
func TestSeedScenarioNemKeyConversion(t *testing.T) {
	seed := mustSeed(t, "575DBB3062267EFF57C970A336EBBC8FBCFE12C5BD3ED7BC11EB0481D7704CED")

	symbolKey := Derive(Sha2_512, seed)
	nemKey := Derive(Keccak, seed)

	if bytes.Equal(symbolKey[:], nemKey[:]) {
		t.Fatalf("Keccak and Sha2_512 derivations should differ for the same seed")
	}
}

// TestSeedScenarioSignDeterminism is spec.md section 8, seed scenario 3.
func TestSeedScenarioSignDeterminism(t *testing.T) {
	seed := mustSeed(t, "575DBB3062267EFF57C970A336EBBC8FBCFE12C5BD3ED7BC11EB0481D7704CED")
	msg := []byte("abc")

	sig1 := Sign(Sha2_512, seed, msg)
	sig2 := Sign(Sha2_512, seed, msg)
	if sig1 != sig2 {
		t.Fatalf("Sign is not deterministic: %x != %x", sig1, sig2)
	}
}

// TestSeedScenarioVerifySuccess is spec.md section 8, seed scenario 4.
func TestSeedScenarioVerifySuccess(t *testing.T) {
	seed := mustSeed(t, "575DBB3062267EFF57C970A336EBBC8FBCFE12C5BD3ED7BC11EB0481D7704CED")
	msg := []byte("abc")

	pub := Derive(Sha2_512, seed)
	sig := Sign(Sha2_512, seed, msg)

	if !Verify(Sha2_512, pub, msg, sig) {
		t.Fatalf("expected signature to verify")
	}
}

// TestSeedScenarioVerifyRejectsTamperedMessage is spec.md section 8, seed
// scenario 5.
func TestSeedScenarioVerifyRejectsTamperedMessage(t *testing.T) {
	seed := mustSeed(t, "575DBB3062267EFF57C970A336EBBC8FBCFE12C5BD3ED7BC11EB0481D7704CED")

	pub := Derive(Sha2_512, seed)
	sig := Sign(Sha2_512, seed, []byte("abc"))

	if Verify(Sha2_512, pub, []byte("abd"), sig) {
		t.Fatalf("expected verification to fail against a tampered message")
	}
}

// TestSeedScenarioVerifyRejectsSPlusL is spec.md section 8, seed scenario 6:
// malleating S by adding the group order ℓ (as a 256-bit integer, with
// wraparound) must be rejected by the canonicality check.
func TestSeedScenarioVerifyRejectsSPlusL(t *testing.T) {
	seed := mustSeed(t, "575DBB3062267EFF57C970A336EBBC8FBCFE12C5BD3ED7BC11EB0481D7704CED")
	msg := []byte("abc")

	pub := Derive(Sha2_512, seed)
	sig := Sign(Sha2_512, seed, msg)

	mutated := addCurveOrderWithWrap(sig)
	if Verify(Sha2_512, pub, msg, mutated) {
		t.Fatalf("expected verification to fail after S += ℓ (mod 2^256)")
	}
}

// addCurveOrderWithWrap adds curveOrderBytes to sig's S half as a 256-bit
// little-endian integer, ignoring any final carry out of the top byte.
func addCurveOrderWithWrap(sig [SignatureSize]byte) [SignatureSize]byte {
	out := sig
	carry := uint16(0)
	for i := 32; i < 64; i++ {
		sum := uint16(out[i]) + uint16(curveOrderBytes[i-32]) + carry
		out[i] = byte(sum)
		carry = sum >> 8
	}
	return out
}
