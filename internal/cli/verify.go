package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Davincible/seedphrase/internal/log"
	"github.com/Davincible/seedphrase/internal/validation"
	"github.com/Davincible/seedphrase/pkg/crypto/mnemonic"
	"github.com/Davincible/seedphrase/pkg/secure"
)

// VerifyResult is the JSON form of verify's output.
type VerifyResult struct {
	Valid       bool   `json:"valid"`
	WordCount   int    `json:"word_count"`
	EntropyBits int    `json:"entropy_bits"`
	Fingerprint string `json:"fingerprint"`
	Entropy     string `json:"entropy,omitempty"`
}

func NewVerifyCommand(app *App) *cobra.Command {
	var (
		showEntropy bool
		expectHex   string
	)

	cmd := &cobra.Command{
		Use:   "verify [words...]",
		Short: "Verify a BIP39 mnemonic phrase",
		Long: `Verify that a mnemonic phrase uses only wordlist words and carries a
correct checksum. Without arguments the phrase is read from stdin, hidden
when stdin is a terminal.`,
		Example: `  # Verify interactively
  seedphrase verify

  # Verify from arguments
  seedphrase verify abandon abandon ... about

  # Check the phrase encodes known entropy
  seedphrase verify --expect 00000000000000000000000000000000 < phrase.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")

			var phrase string
			if len(args) > 0 {
				phrase = strings.Join(args, " ")
			} else {
				var err error
				if phrase, err = readMnemonicInput(cmd); err != nil {
					return err
				}
			}
			phrase = validation.NormalizeMnemonic(phrase)

			if err := validation.ValidateMnemonic(phrase); err != nil {
				return fmt.Errorf("invalid mnemonic: %w", err)
			}

			m, err := mnemonic.FromWords(phrase)
			if err != nil {
				return err
			}

			data, err := m.Entropy()
			if err != nil {
				return err
			}
			defer secure.ClearBytes(&data)

			if expectHex != "" {
				if err := validation.ValidateEntropyHex(expectHex); err != nil {
					return err
				}
				expected, err := hex.DecodeString(strings.TrimSpace(expectHex))
				if err != nil {
					return err
				}
				defer secure.Zero(expected)

				if !secure.ConstantTimeCompare(expected, data) {
					return fmt.Errorf("mnemonic does not encode the expected entropy")
				}
			}

			fingerprint, err := mnemonic.ChecksumMnemonic(m.Words())
			if err != nil {
				return err
			}

			entropyBits, err := mnemonic.EntropyBitsFromWordCount(m.WordCount())
			if err != nil {
				return err
			}

			result := VerifyResult{
				Valid:       true,
				WordCount:   m.WordCount(),
				EntropyBits: entropyBits,
				Fingerprint: fingerprint,
			}
			if showEntropy {
				result.Entropy = hex.EncodeToString(data)
			}

			log.CLI.Debug().Int("words", result.WordCount).Msg("Verified mnemonic")

			if outputJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(result)
			}

			w := cmd.OutOrStdout()
			green := color.New(color.FgGreen, color.Bold)
			yellow := color.New(color.FgYellow)

			fmt.Fprintln(w)
			green.Fprintln(w, "✓ Mnemonic is valid")
			fmt.Fprintln(w)

			yellow.Fprintln(w, "Mnemonic details:")
			fmt.Fprintf(w, "  Words:       %d\n", result.WordCount)
			fmt.Fprintf(w, "  Entropy:     %d bits\n", result.EntropyBits)
			fmt.Fprintf(w, "  Fingerprint: %s\n", result.Fingerprint)
			if showEntropy {
				fmt.Fprintf(w, "  Entropy hex: %s\n", result.Entropy)
			}
			if expectHex != "" {
				fmt.Fprintln(w, "  Matches the expected entropy")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&showEntropy, "show-entropy", false, "Print the decoded entropy as hex")
	cmd.Flags().StringVar(&expectHex, "expect", "", "Fail unless the phrase encodes this hex entropy")

	return cmd
}
