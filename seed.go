package openbankctl

import (
	"embed"
	"os"
	"path"

	"github.com/rs/zerolog"
)

//go:embed samples/*.json
var samples embed.FS

var sampleFiles = map[DocumentKind]string{
	AccountsDoc: "accounts-config.json",
	SettingsDoc: "settings-config.json",
	CardsDoc:    "cards-config.json",
	ProductsDoc: "products-config.json",
}

// Seed writes the bundled sample documents into the configured data
// directory, creating it if needed. Existing documents are left alone unless
// overwrite is set. It returns the paths it wrote.
func Seed(cfg *Config, overwrite bool, log *zerolog.Logger) ([]string, error) {
	if err := os.MkdirAll(cfg.Data.Dir, 0755); err != nil {
		return nil, ErrIO{Path: cfg.Data.Dir, Err: err}
	}

	var written []string
	for _, kind := range []DocumentKind{AccountsDoc, SettingsDoc, CardsDoc, ProductsDoc} {
		dst := cfg.Path(kind)
		if !overwrite {
			if _, err := os.Stat(dst); err == nil {
				log.Info().Str("path", dst).Msg("document exists, skipping")
				continue
			}
		}

		bits, err := samples.ReadFile(path.Join("samples", sampleFiles[kind]))
		if err != nil {
			return written, err
		}
		if err = os.WriteFile(dst, bits, 0644); err != nil {
			return written, ErrIO{Path: dst, Err: err}
		}
		log.Info().Str("document", kind.String()).Str("path", dst).Msg("sample document written")
		written = append(written, dst)
	}
	return written, nil
}
