package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Davincible/seedphrase/internal/log"
	"github.com/Davincible/seedphrase/internal/validation"
	"github.com/Davincible/seedphrase/pkg/crypto/entropy"
	"github.com/Davincible/seedphrase/pkg/crypto/mnemonic"
)

// GenerateResult is the JSON form of generate's output.
type GenerateResult struct {
	Mnemonic    string           `json:"mnemonic"`
	WordCount   int              `json:"word_count"`
	EntropyBits int              `json:"entropy_bits"`
	Steps       *DerivationSteps `json:"steps,omitempty"`
}

// DerivationSteps exposes the intermediate values of the derivation.
type DerivationSteps struct {
	Entropy      string   `json:"entropy"`
	Checksum     string   `json:"checksum"`
	ChecksumBits uint     `json:"checksum_bits"`
	Combined     string   `json:"combined"`
	Indices      []uint16 `json:"indices"`
}

func NewGenerateCommand(app *App) *cobra.Command {
	var (
		wordCount  int
		entropyHex string
		showSteps  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new BIP39 mnemonic phrase",
		Long: `Generate a new cryptographically secure BIP39 mnemonic phrase.

Entropy is read from the operating system's secure random source unless
--entropy supplies it, in which case the output is fully reproducible.`,
		Example: `  # Generate a 24-word mnemonic
  seedphrase generate

  # Generate a 12-word mnemonic
  seedphrase generate --words 12

  # Show every derivation stage for known entropy
  seedphrase generate --entropy 00000000000000000000000000000000 --show-steps

  # Output as JSON
  seedphrase generate --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")

			if !cmd.Flags().Changed("words") {
				wordCount = app.Config.Defaults.WordCount
			}
			if !cmd.Flags().Changed("show-steps") {
				showSteps = app.Config.Defaults.ShowSteps
			}

			e, err := sourceEntropy(app, entropyHex, wordCount, cmd.Flags().Changed("words"))
			if err != nil {
				return err
			}

			return app.emitMnemonic(cmd.OutOrStdout(), e, generateOptions{
				showSteps:  showSteps,
				outputJSON: outputJSON,
				supplied:   entropyHex != "",
			})
		},
	}

	cmd.Flags().IntVarP(&wordCount, "words", "w", 24, "Number of words (12, 15, 18, 21, or 24)")
	cmd.Flags().StringVar(&entropyHex, "entropy", "", "Use this hex entropy instead of the secure random source")
	cmd.Flags().BoolVar(&showSteps, "show-steps", false, "Show entropy, checksum, and word indices")

	return cmd
}

func sourceEntropy(app *App, entropyHex string, wordCount int, wordsSet bool) (*entropy.Entropy, error) {
	if entropyHex != "" {
		if err := validation.ValidateEntropyHex(entropyHex); err != nil {
			return nil, err
		}

		e, err := entropy.FromHex(entropyHex)
		if err != nil {
			return nil, err
		}

		if wordsSet && e.WordCount() != wordCount {
			defer e.Wipe()
			return nil, fmt.Errorf("--words %d conflicts with %d bytes of entropy (%d words)",
				wordCount, e.Len(), e.WordCount())
		}
		return e, nil
	}

	size, err := entropy.SizeForWordCount(wordCount)
	if err != nil {
		return nil, fmt.Errorf("invalid word count: %w", err)
	}

	return entropy.Generate(app.Random, size)
}

type generateOptions struct {
	showSteps  bool
	outputJSON bool
	supplied   bool
}

// emitMnemonic derives the phrase for e and writes it to w. It owns e: when
// wiping is enabled e is wiped on every return path.
func (app *App) emitMnemonic(w io.Writer, e *entropy.Entropy, opts generateOptions) error {
	if app.Config.Security.WipeMemory {
		defer e.Wipe()
	}

	d, err := mnemonic.Derive(e, mnemonic.English)
	if err != nil {
		return fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	if app.Config.Security.WipeMemory {
		defer d.Wipe()
	}

	log.CLI.Debug().
		Int("entropy_bits", e.BitLen()).
		Int("words", len(d.Indices)).
		Bool("supplied_entropy", opts.supplied).
		Msg("Derived mnemonic")

	if opts.outputJSON {
		return writeGenerateJSON(w, d, opts.showSteps)
	}
	return outputGenerateText(w, d, opts.showSteps)
}

func derivationSteps(d *mnemonic.Derivation) *DerivationSteps {
	return &DerivationSteps{
		Entropy:      hex.EncodeToString(d.Entropy),
		Checksum:     fmt.Sprintf("%0*b", int(d.ChecksumBits), d.Checksum),
		ChecksumBits: d.ChecksumBits,
		Combined:     hex.EncodeToString(d.Combined),
		Indices:      append([]uint16(nil), d.Indices...),
	}
}

func writeGenerateJSON(w io.Writer, d *mnemonic.Derivation, showSteps bool) error {
	result := GenerateResult{
		Mnemonic:    d.Phrase,
		WordCount:   len(d.Indices),
		EntropyBits: len(d.Entropy) * 8,
	}
	if showSteps {
		result.Steps = derivationSteps(d)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputGenerateText(w io.Writer, d *mnemonic.Derivation, showSteps bool) error {
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Fprintln(w)
	green.Fprintln(w, "=== NEW MNEMONIC PHRASE ===")
	fmt.Fprintln(w)

	red.Fprintln(w, "⚠️  IMPORTANT SECURITY NOTICE:")
	fmt.Fprintln(w, "This mnemonic phrase is your master seed. Anyone who knows this")
	fmt.Fprintln(w, "phrase can recover everything derived from it.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "- Write it down on paper (never digitally)")
	fmt.Fprintln(w, "- Store it in a secure location")
	fmt.Fprintln(w, "- Never share it with anyone")
	fmt.Fprintln(w)

	words := splitWords(d.Phrase)
	yellow.Fprintf(w, "Generated %d-word mnemonic (%d bits of entropy):\n\n", len(words), len(d.Entropy)*8)

	for i, word := range words {
		fmt.Fprintf(w, "%2d. %s\n", i+1, word)
	}

	fmt.Fprintln(w)
	yellow.Fprintln(w, "Complete phrase:")
	fmt.Fprintln(w, d.Phrase)
	fmt.Fprintln(w)

	if showSteps {
		steps := derivationSteps(d)

		cyan.Fprintln(w, "=== DERIVATION STEPS ===")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Entropy:       %s\n", steps.Entropy)
		fmt.Fprintf(w, "Checksum:      %s (%d bits)\n", steps.Checksum, steps.ChecksumBits)
		fmt.Fprintf(w, "With checksum: %s\n", steps.Combined)
		fmt.Fprintf(w, "Indices:       %v\n", steps.Indices)
		fmt.Fprintln(w)
	}

	green.Fprintln(w, "=== END ===")

	return nil
}
