package cli

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Davincible/seedphrase/internal/log"
	"github.com/Davincible/seedphrase/pkg/config"
)

// skipConfigAnnotation marks commands that must run even when the config
// file cannot be loaded.
const skipConfigAnnotation = "seedphrase/skip-config"

// App carries state shared by all commands.
type App struct {
	Version string

	// Random is the entropy source for generate. Defaults to crypto/rand.
	Random io.Reader

	Config     *config.Config
	ConfigPath string
}

// NewRootCommand builds the seedphrase command tree.
func NewRootCommand(app *App) *cobra.Command {
	if app.Random == nil {
		app.Random = rand.Reader
	}

	rootCmd := &cobra.Command{
		Use:   "seedphrase",
		Short: "Generate and verify BIP-39 mnemonic recovery phrases",
		Long: `Seedphrase generates BIP-39 mnemonic recovery phrases from secure random
entropy and verifies existing phrases.

Features:
- 12 to 24 word phrases (128 to 256 bits of entropy)
- Self-contained SHA-256 checksum engine
- Reproducible output from caller supplied entropy
- Phrase verification with checksum and fingerprint
- Streaming SHA-256 of files or stdin`,
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/seedphrase/config.json)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		NewGenerateCommand(app),
		NewVerifyCommand(app),
		NewHashCommand(app),
		NewConfigCommand(app),
	)

	return rootCmd
}

func (app *App) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	verbose, _ := flags.GetBool("verbose")
	jsonOutput, _ := flags.GetBool("json")
	logLevel, _ := flags.GetString("log-level")
	noColor, _ := flags.GetBool("no-color")

	if logLevel != "" && !config.ValidLogLevel(logLevel) {
		return fmt.Errorf("invalid --log-level %q: must be one of %s",
			logLevel, strings.Join(config.LogLevels, ", "))
	}

	if path == "" {
		var err error
		if path, err = config.Path(); err != nil {
			return err
		}
	}
	app.ConfigPath = path

	cfg, err := config.Load(path)
	if err != nil {
		if cmd.Annotations[skipConfigAnnotation] != "true" {
			return err
		}
		cfg = config.DefaultConfig()
	}
	app.Config = cfg

	level := cfg.UI.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	if verbose {
		level = "debug"
	}
	log.Init(level, jsonOutput, cmd.ErrOrStderr())

	if err != nil {
		log.Config.Warn().Err(err).Msg("Ignoring unreadable config")
	}

	if noColor || !cfg.UI.UseColor {
		color.NoColor = true
	}

	log.Config.Debug().
		Str("path", path).
		Int("word_count", cfg.Defaults.WordCount).
		Msg("Configuration loaded")

	return nil
}
