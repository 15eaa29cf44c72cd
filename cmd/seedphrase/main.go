package main

import (
	"fmt"
	"os"

	"github.com/Davincible/seedphrase/internal/cli"
	"github.com/Davincible/seedphrase/internal/log"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	app := &cli.App{
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
	}

	if err := cli.NewRootCommand(app).Execute(); err != nil {
		log.Error().Err(err).Msg("Command execution failed")
		os.Exit(1)
	}
}
