package openbankctl

import (
	"strings"
)

const (
	preferencesKey = "userPreferences"
	languagePath   = "userPreferences.profile.language"
)

type Language struct {
	Code string
	Name string
}

// Languages lists the selectable languages in menu order.
var Languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Español"},
	{Code: "fr", Name: "Français"},
}

func (s *serviceImpl) ChangeLanguage() error {
	doc, err := s.store.Load(SettingsDoc)
	if err != nil {
		return err
	}
	if !doc.Get(preferencesKey).IsObject() {
		return nil
	}

	s.prompt.Header("--- Change Language ---")
	current := textOr(doc.Get(languagePath), "N/A")
	s.prompt.Printf("Current language is: %s\n", strings.ToUpper(current))

	names := make([]string, len(Languages))
	for i, lang := range Languages {
		names[i] = lang.Name
	}
	idx, err := s.prompt.ReadChoice(names)
	if err != nil {
		return err
	}

	if err = doc.Set(languagePath, Languages[idx].Code); err != nil {
		return err
	}
	return s.save(doc)
}
