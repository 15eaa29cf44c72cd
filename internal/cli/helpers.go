package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Davincible/seedphrase/pkg/secure"
)

// maxPhraseInput bounds how much piped input is read as a phrase.
const maxPhraseInput = 4096

// readMnemonicInput reads a phrase without echo when stdin is a terminal,
// otherwise it reads the piped input.
func readMnemonicInput(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Enter mnemonic phrase: ")
		phrase, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", err
		}
		defer secure.Zero(phrase)
		return string(phrase), nil
	}

	phrase, err := io.ReadAll(io.LimitReader(in, maxPhraseInput))
	if err != nil {
		return "", fmt.Errorf("failed to read mnemonic: %w", err)
	}
	defer secure.Zero(phrase)
	return string(phrase), nil
}

func splitWords(phrase string) []string {
	return strings.Fields(phrase)
}
