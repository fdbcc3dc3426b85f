package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/rs/zerolog"

	"github.com/arhyth/openbankctl"
)

type args struct {
	Config   string `arg:"--config" help:"path to a YAML settings file"`
	Dir      string `arg:"--dir" help:"directory holding the JSON documents [default: config]"`
	LogLevel string `arg:"--log-level" help:"debug, info, warn or error [default: warn]"`
}

func (args) Description() string {
	return "Interactive editor for the OpenBank mock data documents."
}

func main() {
	var a args
	arg.MustParse(&a)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := openbankctl.DefaultConfig()
	if a.Config != "" {
		loaded, err := openbankctl.LoadConfig(a.Config)
		if err != nil {
			logger.Fatal().Err(err).Str("path", a.Config).Msg("error loading config file")
		}
		cfg = loaded
	}
	if a.Dir != "" {
		cfg.Data.Dir = a.Dir
	}
	if a.LogLevel != "" {
		cfg.Log.Level = a.LogLevel
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Warn().Err(err).Str("level", cfg.Log.Level).Msg("unknown log level, using warn")
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)

	if err = openbankctl.CheckDataDir(cfg); err != nil {
		fmt.Print(openbankctl.MissingDirMessage(cfg.Data.Dir))
		return
	}

	prompt := openbankctl.NewPrompter(os.Stdin, os.Stdout)
	store := openbankctl.NewFileStore(cfg, &logger)
	svc := openbankctl.NewLoggingMiddleware(&logger)(openbankctl.NewService(store, prompt, &logger))
	menu := openbankctl.NewMenu(svc, prompt, &logger)

	if err = menu.Run(); err != nil && !errors.Is(err, openbankctl.ErrInputClosed) {
		logger.Error().Err(err).Msg("menu stopped")
	}
}
