package openbankctl_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/arhyth/openbankctl"
)

// newDataDir writes the given documents into a fresh data directory and
// returns a config pointing at it.
func newDataDir(t *testing.T, docs map[openbankctl.DocumentKind]string) *openbankctl.Config {
	t.Helper()
	cfg := openbankctl.DefaultConfig()
	cfg.Data.Dir = t.TempDir()
	for kind, body := range docs {
		require.NoError(t, os.WriteFile(cfg.Path(kind), []byte(body), 0644))
	}
	return cfg
}

// newFileService builds a service over the real file store that reads the
// operator's answers from input.
func newFileService(cfg *openbankctl.Config, input string) (openbankctl.Service, *bytes.Buffer) {
	nooplog := zerolog.Nop()
	out := &bytes.Buffer{}
	prompt := openbankctl.NewPrompter(strings.NewReader(input), out)
	store := openbankctl.NewFileStore(cfg, &nooplog)
	return openbankctl.NewService(store, prompt, &nooplog), out
}

func readDoc(t *testing.T, cfg *openbankctl.Config, kind openbankctl.DocumentKind) []byte {
	t.Helper()
	bits, err := os.ReadFile(cfg.Path(kind))
	require.NoError(t, err)
	return bits
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
