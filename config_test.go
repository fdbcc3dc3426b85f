package openbankctl_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arhyth/openbankctl"
)

func TestDefaultConfig(t *testing.T) {
	as := assert.New(t)
	cfg := openbankctl.DefaultConfig()

	as.Equal("config", cfg.Data.Dir)
	as.Equal("warn", cfg.Log.Level)
	as.Equal(filepath.Join("config", "accounts-config.json"), cfg.Path(openbankctl.AccountsDoc))
	as.Equal(filepath.Join("config", "settings-config.json"), cfg.Path(openbankctl.SettingsDoc))
	as.Equal(filepath.Join("config", "cards-config.json"), cfg.Path(openbankctl.CardsDoc))
	as.Equal(filepath.Join("config", "products-config.json"), cfg.Path(openbankctl.ProductsDoc))
}

func TestDecodeConfig(t *testing.T) {
	t.Run("keeps defaults for fields the file leaves out", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		yml := `
data:
  dir: /srv/openbank
  cards: cards.json
log:
  level: debug
`
		cfg, err := openbankctl.DecodeConfig(strings.NewReader(yml))
		reqrd.NoError(err)
		as.Equal("/srv/openbank", cfg.Data.Dir)
		as.Equal(filepath.Join("/srv/openbank", "cards.json"), cfg.Path(openbankctl.CardsDoc))
		as.Equal(filepath.Join("/srv/openbank", "accounts-config.json"), cfg.Path(openbankctl.AccountsDoc))
		as.Equal("debug", cfg.Log.Level)
	})

	t.Run("an empty file yields the defaults", func(tt *testing.T) {
		as := assert.New(tt)
		cfg, err := openbankctl.DecodeConfig(strings.NewReader(""))
		as.NoError(err)
		as.Equal(openbankctl.DefaultConfig(), cfg)
	})

	t.Run("returns an error on malformed YAML", func(tt *testing.T) {
		as := assert.New(tt)
		cfg, err := openbankctl.DecodeConfig(strings.NewReader("data: [unclosed"))
		as.Error(err)
		as.Nil(cfg)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("reads the file at path", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		path := filepath.Join(tt.TempDir(), "openbankctl.yml")
		reqrd.NoError(os.WriteFile(path, []byte("data:\n  dir: fixtures\n"), 0644))

		cfg, err := openbankctl.LoadConfig(path)
		reqrd.NoError(err)
		as.Equal("fixtures", cfg.Data.Dir)
	})

	t.Run("returns an error when the file does not exist", func(tt *testing.T) {
		as := assert.New(tt)
		_, err := openbankctl.LoadConfig(filepath.Join(tt.TempDir(), "missing.yml"))
		as.ErrorIs(err, os.ErrNotExist)
	})
}
