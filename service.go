package openbankctl

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// Service is the set of menu actions. Each action loads one document, lets
// the operator pick or edit something, and saves the document if it changed.
// A missing top-level key makes an action return nil without doing anything.
type Service interface {
	EditBalance() error
	ChangeLanguage() error
	ToggleCardStatus() error
	ViewProducts() error
}

func NewService(store Store, prompt *Prompter, log *zerolog.Logger) *serviceImpl {
	return &serviceImpl{
		store:  store,
		prompt: prompt,
		log:    log,
	}
}

type serviceImpl struct {
	store  Store
	prompt *Prompter
	log    *zerolog.Logger
}

var (
	_ Service = (*serviceImpl)(nil)
)

func (s *serviceImpl) save(doc *Document) error {
	if err := s.store.Save(doc); err != nil {
		return err
	}
	s.prompt.Success(fmt.Sprintf("✅ Data successfully saved to %s", doc.Path))
	return nil
}

// textOr renders a JSON value for display, or fallback when it is absent.
func textOr(r gjson.Result, fallback string) string {
	if !r.Exists() || r.Type == gjson.Null {
		return fallback
	}
	return r.String()
}
