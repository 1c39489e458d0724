// Command cshared is the foreign-runtime boundary described in spec.md
// section 6: three entry points mirroring the core's primitives, each
// receiving/returning fixed-size buffers owned by the caller. It performs
// no validation beyond length and converts arithmetic-library panics into
// a returned status code, modeled on the original WASM bindings'
// set_panic_hook (original_source/sdk/javascript/wasm/src/lib.rs).
//
// Built with `go build -buildmode=c-shared` to produce a shared library
// any foreign runtime can link against.
package main

/*
#include <stddef.h>
#include <stdint.h>

typedef enum {
	ed25519_mode_sha2_512 = 0,
	ed25519_mode_keccak = 1
} ed25519_mode;
*/
import "C"

import (
	"unsafe"

	"github.com/symbol/symbol/zed"
)

const (
	statusOK            = C.int(0)
	statusBadLength     = C.int(1)
	statusInternalFault = C.int(2)
)

func modeFromC(m C.ed25519_mode) zed.Mode {
	if m == C.ed25519_mode_keccak {
		return zed.Keccak
	}
	return zed.Sha2_512
}

// withPanicHook runs fn, converting any panic raised by the underlying
// arithmetic library into statusInternalFault instead of crashing the
// host process across the cgo boundary. Every entry point wraps its call in
// it, in place of the one-time panic hook spec.md section 6 describes for
// the adapters; arithmetic-library
// preconditions are programmer errors (spec.md section 7), not
// recoverable input-structure rejections, so converting them to a fault
// code rather than a bool is correct here.
func withPanicHook(fn func()) (status C.int) {
	defer func() {
		if r := recover(); r != nil {
			status = statusInternalFault
		}
	}()
	fn()
	return statusOK
}

// EdDualDerive writes the 32-byte public key for (mode, seed) into pk.
//
//export EdDualDerive
func EdDualDerive(mode C.ed25519_mode, sk *C.uint8_t, skLen C.size_t, pk *C.uint8_t, pkLen C.size_t) C.int {
	if skLen != zed.SeedSize || pkLen != zed.PublicKeySize {
		return statusBadLength
	}

	return withPanicHook(func() {
		var seed [zed.SeedSize]byte
		copy(seed[:], unsafe.Slice((*byte)(sk), int(skLen)))

		publicKey := zed.Derive(modeFromC(mode), seed)
		copy(unsafe.Slice((*byte)(pk), int(pkLen)), publicKey[:])
	})
}

// EdDualSign writes the 64-byte signature for (mode, seed, message) into sig.
//
//export EdDualSign
func EdDualSign(mode C.ed25519_mode, sk *C.uint8_t, skLen C.size_t, message *C.uint8_t, messageLen C.size_t, sig *C.uint8_t, sigLen C.size_t) C.int {
	if skLen != zed.SeedSize || sigLen != zed.SignatureSize {
		return statusBadLength
	}

	return withPanicHook(func() {
		var seed [zed.SeedSize]byte
		copy(seed[:], unsafe.Slice((*byte)(sk), int(skLen)))

		msg := append([]byte(nil), unsafe.Slice((*byte)(message), int(messageLen))...)

		signature := zed.Sign(modeFromC(mode), seed, msg)
		copy(unsafe.Slice((*byte)(sig), int(sigLen)), signature[:])
	})
}

// EdDualVerify reports (via status + *out) whether sig is a valid
// signature of message under pk for mode.
//
//export EdDualVerify
func EdDualVerify(mode C.ed25519_mode, pk *C.uint8_t, pkLen C.size_t, message *C.uint8_t, messageLen C.size_t, sig *C.uint8_t, sigLen C.size_t, out *C.int) C.int {
	if pkLen != zed.PublicKeySize || sigLen != zed.SignatureSize {
		return statusBadLength
	}

	return withPanicHook(func() {
		var publicKey [zed.PublicKeySize]byte
		copy(publicKey[:], unsafe.Slice((*byte)(pk), int(pkLen)))

		var signature [zed.SignatureSize]byte
		copy(signature[:], unsafe.Slice((*byte)(sig), int(sigLen)))

		msg := append([]byte(nil), unsafe.Slice((*byte)(message), int(messageLen))...)

		*out = 0
		if zed.Verify(modeFromC(mode), publicKey, msg, signature) {
			*out = 1
		}
	})
}

func main() {}
