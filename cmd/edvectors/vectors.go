package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/symbol/symbol/zed"
)

// suiteDescriptor mirrors the original harness's TestVectorDescriptor: an
// integer suite identifier plus the file it reads from and a human label
// for logging.
type suiteDescriptor struct {
	identifier  int
	filename    string
	description string
}

func (d suiteDescriptor) path(vectorsDir string) string {
	return filepath.Join(vectorsDir, fmt.Sprintf("%d.%s.json", d.identifier, d.filename))
}

// keyConversionVector is the "1.test-keys.json" schema.
type keyConversionVector struct {
	PrivateKey string `json:"privateKey"`
	PublicKey  string `json:"publicKey"`
}

// signVector is the "2.test-sign.json" schema; verification vectors reuse
// it and ignore PrivateKey, per spec.md section 6.
type signVector struct {
	PrivateKey string `json:"privateKey"`
	PublicKey  string `json:"publicKey"`
	Data       string `json:"data"`
	Length     uint   `json:"length"`
	Signature  string `json:"signature"`
}

func hashModeFor(blockchain string) zed.Mode {
	if blockchain == "nem" {
		return zed.Keccak
	}
	return zed.Sha2_512
}

func decodeSeed(hexStr string) ([zed.SeedSize]byte, error) {
	var out [zed.SeedSize]byte
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		return out, err
	}
	if len(b) != zed.SeedSize {
		return out, fmt.Errorf("bad key length: got %d want %d", len(b), zed.SeedSize)
	}
	copy(out[:], b)
	return out, nil
}

func decodeSignature(hexStr string) ([zed.SignatureSize]byte, error) {
	var out [zed.SignatureSize]byte
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		return out, err
	}
	if len(b) != zed.SignatureSize {
		return out, fmt.Errorf("bad signature length: got %d want %d", len(b), zed.SignatureSize)
	}
	copy(out[:], b)
	return out, nil
}

func keyConversionTester(blockchain string, v keyConversionVector) bool {
	privateKey, err := decodeSeed(v.PrivateKey)
	if err != nil {
		return false
	}
	publicKey, err := decodeSeed(v.PublicKey)
	if err != nil {
		return false
	}

	got := zed.Derive(hashModeFor(blockchain), privateKey)
	return got == publicKey
}

func signTester(blockchain string, v signVector) bool {
	privateKey, err := decodeSeed(v.PrivateKey)
	if err != nil {
		return false
	}
	signature, err := decodeSignature(v.Signature)
	if err != nil {
		return false
	}
	data, err := hex.DecodeString(v.Data)
	if err != nil {
		return false
	}
	// Open question (spec.md section 9): the length field is redundant
	// with len(data); assert equality defensively rather than trust it.
	if uint(len(data)) != v.Length {
		return false
	}

	got := zed.Sign(hashModeFor(blockchain), privateKey, data)
	return got == signature
}

func verifyTester(blockchain string, v signVector) bool {
	publicKey, err := decodeSeed(v.PublicKey)
	if err != nil {
		return false
	}
	signature, err := decodeSignature(v.Signature)
	if err != nil {
		return false
	}
	data, err := hex.DecodeString(v.Data)
	if err != nil {
		return false
	}
	if uint(len(data)) != v.Length {
		return false
	}

	return zed.Verify(hashModeFor(blockchain), publicKey, data, signature)
}

func loadVectors[T any](vectorsDir string, d suiteDescriptor) ([]T, error) {
	contents, err := os.ReadFile(d.path(vectorsDir))
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(contents, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// runSuite loads and runs every test case in d's vector file, logging a
// single timed summary line (the Go analogue of the original harness's
// "[{:.4}s] {} test: ..." line) and returning whether every case passed.
func runSuite[T any](log zerolog.Logger, vectorsDir, blockchain string, d suiteDescriptor, tester func(string, T) bool) bool {
	start := time.Now()

	cases, err := loadVectors[T](vectorsDir, d)
	if err != nil {
		log.Error().Err(err).Str("suite", d.description).Msg("unable to load test vectors")
		return false
	}

	failed := 0
	for _, tc := range cases {
		if !tester(blockchain, tc) {
			failed++
		}
	}

	elapsed := time.Since(start)
	event := log.Info()
	if failed != 0 {
		event = log.Error()
	}
	event.
		Str("suite", d.description).
		Dur("elapsed", elapsed).
		Int("total", len(cases)).
		Int("failed", failed).
		Msg("suite finished")

	return failed == 0
}
