package main

import (
	"os"

	"github.com/alexflint/go-arg"
	"github.com/rs/zerolog"

	"github.com/arhyth/openbankctl"
)

type args struct {
	Config   string `arg:"--config" help:"path to a YAML settings file"`
	Dir      string `arg:"--dir" help:"directory to write the sample documents to [default: config]"`
	Force    bool   `arg:"--force" help:"overwrite documents that already exist"`
	LogLevel string `arg:"--log-level" help:"debug, info, warn or error [default: info]"`
}

func main() {
	var a args
	arg.MustParse(&a)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if a.LogLevel != "" {
		level, err := zerolog.ParseLevel(a.LogLevel)
		if err == nil {
			zerolog.SetGlobalLevel(level)
		}
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg := openbankctl.DefaultConfig()
	if a.Config != "" {
		loaded, err := openbankctl.LoadConfig(a.Config)
		if err != nil {
			logger.Fatal().Err(err).Msg("error loading config file")
		}
		cfg = loaded
	}
	if a.Dir != "" {
		cfg.Data.Dir = a.Dir
	}

	written, err := openbankctl.Seed(cfg, a.Force, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error seeding sample documents")
	}
	logger.Info().
		Str("dir", cfg.Data.Dir).
		Int("written", len(written)).
		Msg("seeding done")
}
