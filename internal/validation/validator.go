package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/Davincible/seedphrase/pkg/crypto/entropy"
	"github.com/Davincible/seedphrase/pkg/crypto/mnemonic"
)

var (
	hexPattern  = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	wordPattern = regexp.MustCompile(`^[a-z]+$`)
)

func ValidateHex(input string) error {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return fmt.Errorf("hex string cannot be empty")
	}

	if len(input)%2 != 0 {
		return fmt.Errorf("hex string must have even length")
	}

	if !hexPattern.MatchString(input) {
		return fmt.Errorf("invalid hex characters")
	}

	return nil
}

// ValidateEntropyHex checks that input is hex of a supported entropy size.
func ValidateEntropyHex(input string) error {
	if err := ValidateHex(input); err != nil {
		return fmt.Errorf("invalid entropy: %w", err)
	}

	size := len(strings.TrimSpace(input)) / 2
	if !ValidateEntropySize(size) {
		return fmt.Errorf("%w: %d bytes, must be one of %v", entropy.ErrInvalidSize, size, entropy.ValidSizes)
	}
	return nil
}

// ValidateMnemonic checks the shape of a phrase: word count and word
// characters. Every malformed word is reported. It does not look words up or
// verify the checksum.
func ValidateMnemonic(words string) error {
	words = strings.TrimSpace(words)
	if words == "" {
		return fmt.Errorf("mnemonic cannot be empty")
	}

	wordList := strings.Fields(words)
	wordCount := len(wordList)

	if !ValidateWordCount(wordCount) {
		return fmt.Errorf("mnemonic must have 12, 15, 18, 21, or 24 words (got %d)", wordCount)
	}

	var merr *multierror.Error
	for i, word := range wordList {
		if len(word) < 3 || len(word) > 8 {
			merr = multierror.Append(merr, fmt.Errorf("word %d has invalid length: %s", i+1, word))
			continue
		}

		if !wordPattern.MatchString(word) {
			merr = multierror.Append(merr, fmt.Errorf("word %d contains invalid characters: %s", i+1, word))
		}
	}

	return merr.ErrorOrNil()
}

func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)

	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	lines := strings.Split(input, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	return strings.Join(lines, "\n")
}

// NormalizeMnemonic lowercases a phrase and collapses all whitespace,
// including line breaks, to single spaces.
func NormalizeMnemonic(input string) string {
	return strings.Join(strings.Fields(strings.ToLower(SanitizeInput(input))), " ")
}

func ValidateWordCount(count int) bool {
	return mnemonic.ValidateWordCount(count)
}

func ValidateEntropySize(size int) bool {
	return entropy.ValidSize(size)
}
