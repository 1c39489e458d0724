// Command edvectors runs the NEM/Symbol Ed25519 test-vector suites against
// the zed core. It is the external harness described in spec.md section 6:
// argument parsing, file discovery, and JSON decoding all live here, kept
// out of the cryptographic core itself.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	blockchain  string
	vectorsDir  string
	selectedIDs []int
)

var keyConversionSuite = suiteDescriptor{identifier: 1, filename: "test-keys", description: "key conversion"}
var signSuite = suiteDescriptor{identifier: 2, filename: "test-sign", description: "sign"}
var verifySuite = suiteDescriptor{identifier: 2, filename: "test-sign", description: "verify"}

func suiteSelected(id int) bool {
	if len(selectedIDs) == 0 {
		return true
	}
	for _, s := range selectedIDs {
		if s == id {
			return true
		}
	}
	return false
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edvectors",
		Short: "Run NEM/Symbol Ed25519 test vectors against the zed core",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
			log.Info().Str("blockchain", blockchain).Str("vectors", vectorsDir).Msg("running test vectors")
			if len(selectedIDs) > 0 {
				log.Info().Ints("suites", selectedIDs).Msg("selected suites")
			}

			allPassed := true

			if suiteSelected(keyConversionSuite.identifier) {
				allPassed = runSuite[keyConversionVector](log, vectorsDir, blockchain, keyConversionSuite, keyConversionTester) && allPassed
			} else {
				log.Info().Str("suite", keyConversionSuite.description).Msg("skipped")
			}

			if suiteSelected(signSuite.identifier) {
				allPassed = runSuite[signVector](log, vectorsDir, blockchain, signSuite, signTester) && allPassed
				allPassed = runSuite[signVector](log, vectorsDir, blockchain, verifySuite, verifyTester) && allPassed
			} else {
				log.Info().Str("suite", signSuite.description).Msg("skipped")
			}

			if !allPassed {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&blockchain, "blockchain", "b", "", "blockchain to run vectors against (nem|symbol)")
	cmd.Flags().StringVarP(&vectorsDir, "vectors", "v", "", "path to test-vectors directory")
	cmd.Flags().IntSliceVarP(&selectedIDs, "tests", "t", nil, "identifiers of test suites to run (1, 2)")
	_ = cmd.MarkFlagRequired("blockchain")
	_ = cmd.MarkFlagRequired("vectors")

	return cmd
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
