package openbankctl

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DocumentKind identifies one of the JSON documents the tool edits.
type DocumentKind int

const (
	AccountsDoc DocumentKind = iota
	SettingsDoc
	CardsDoc
	ProductsDoc
)

func (k DocumentKind) String() string {
	switch k {
	case AccountsDoc:
		return "accounts"
	case SettingsDoc:
		return "settings"
	case CardsDoc:
		return "cards"
	case ProductsDoc:
		return "products"
	default:
		return "unknown"
	}
}

type Config struct {
	Data struct {
		Dir      string `yaml:"dir"`
		Accounts string `yaml:"accounts"`
		Settings string `yaml:"settings"`
		Cards    string `yaml:"cards"`
		Products string `yaml:"products"`
	} `yaml:"data"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Data.Dir = "config"
	cfg.Data.Accounts = "accounts-config.json"
	cfg.Data.Settings = "settings-config.json"
	cfg.Data.Cards = "cards-config.json"
	cfg.Data.Products = "products-config.json"
	cfg.Log.Level = "warn"
	return cfg
}

// LoadConfig decodes the YAML file at path over DefaultConfig. Fields left
// empty in the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	cfgfl, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer cfgfl.Close()

	return DecodeConfig(cfgfl)
}

func DecodeConfig(r io.Reader) (*Config, error) {
	var fromFile Config
	if err := yaml.NewDecoder(r).Decode(&fromFile); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	cfg := DefaultConfig()
	override(&cfg.Data.Dir, fromFile.Data.Dir)
	override(&cfg.Data.Accounts, fromFile.Data.Accounts)
	override(&cfg.Data.Settings, fromFile.Data.Settings)
	override(&cfg.Data.Cards, fromFile.Data.Cards)
	override(&cfg.Data.Products, fromFile.Data.Products)
	override(&cfg.Log.Level, fromFile.Log.Level)
	return cfg, nil
}

// Path returns the location of the document of the given kind.
func (c *Config) Path(kind DocumentKind) string {
	var name string
	switch kind {
	case AccountsDoc:
		name = c.Data.Accounts
	case SettingsDoc:
		name = c.Data.Settings
	case CardsDoc:
		name = c.Data.Cards
	case ProductsDoc:
		name = c.Data.Products
	}
	return filepath.Join(c.Data.Dir, name)
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
