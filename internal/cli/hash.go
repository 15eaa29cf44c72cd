package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Davincible/seedphrase/internal/log"
	"github.com/Davincible/seedphrase/pkg/crypto/sha256"
)

// HashResult is the JSON form of hash's output.
type HashResult struct {
	SHA256 string `json:"sha256"`
	Source string `json:"source"`
	Bytes  uint64 `json:"bytes"`
}

func NewHashCommand(app *App) *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "hash [file]",
		Short: "Compute the SHA-256 digest of a file, stdin, or text",
		Long: `Stream a file or stdin through the built-in SHA-256 engine and print the
digest as lowercase hex, in the format of sha256sum.`,
		Example: `  # Hash a file
  seedphrase hash backup.txt

  # Hash stdin
  echo -n abc | seedphrase hash

  # Hash a literal string
  seedphrase hash --text abc`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")

			d := sha256.New()
			source := "-"

			switch {
			case cmd.Flags().Changed("text"):
				if len(args) > 0 {
					return fmt.Errorf("--text cannot be combined with a file argument")
				}
				d.Write([]byte(text))
				source = "text"
			case len(args) == 1 && args[0] != "-":
				source = args[0]
				f, err := os.Open(source)
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", source, err)
				}
				defer f.Close()

				if _, err := io.Copy(d, f); err != nil {
					return fmt.Errorf("failed to read %s: %w", source, err)
				}
			default:
				if _, err := io.Copy(d, cmd.InOrStdin()); err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
			}

			n := d.Len()
			sum := d.Finalize()

			log.CLI.Debug().Str("source", source).Uint64("bytes", n).Msg("Hashed input")

			result := HashResult{
				SHA256: hex.EncodeToString(sum[:]),
				Source: source,
				Bytes:  n,
			}

			if outputJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(result)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", result.SHA256, result.Source)
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Hash this string instead of a file")

	return cmd
}
