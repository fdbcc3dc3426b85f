package openbankctl

import (
	"errors"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// Store loads and saves whole documents.
type Store interface {
	Load(kind DocumentKind) (*Document, error)
	Save(doc *Document) error
}

type FileStore struct {
	cfg *Config
	log *zerolog.Logger
}

var (
	_ Store = (*FileStore)(nil)
)

func NewFileStore(cfg *Config, log *zerolog.Logger) *FileStore {
	return &FileStore{
		cfg: cfg,
		log: log,
	}
}

func (s *FileStore) Load(kind DocumentKind) (*Document, error) {
	path := s.cfg.Path(kind)
	bits, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = ErrNotFound{Path: path}
		} else {
			err = ErrIO{Path: path, Err: err}
		}
		s.log.Err(err).Str("document", kind.String()).Msg("error loading document")
		return nil, err
	}

	doc, err := NewDocument(kind, path, bits)
	if err != nil {
		s.log.Err(err).Str("document", kind.String()).Msg("error parsing document")
		return nil, err
	}
	s.log.Debug().Str("document", kind.String()).Str("path", path).Msg("document loaded")
	return doc, nil
}

// Save overwrites the document's file. The new content goes to a temporary
// file first and is renamed over the original so a failed write never leaves
// a truncated document behind.
func (s *FileStore) Save(doc *Document) error {
	perm := os.FileMode(0644)
	if info, err := os.Stat(doc.Path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp := doc.Path + ".tmp"
	if err := os.WriteFile(tmp, doc.Bytes(), perm); err != nil {
		os.Remove(tmp)
		return s.saveErr(doc, err)
	}
	if err := os.Rename(tmp, doc.Path); err != nil {
		os.Remove(tmp)
		return s.saveErr(doc, err)
	}

	s.log.Info().Str("document", doc.Kind.String()).Str("path", doc.Path).Msg("document saved")
	return nil
}

func (s *FileStore) saveErr(doc *Document, err error) error {
	err = ErrIO{Path: doc.Path, Err: err}
	s.log.Err(err).Str("document", doc.Kind.String()).Msg("error saving document")
	return err
}
