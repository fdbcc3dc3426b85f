package openbankctl

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
)

type Middleware func(Service) Service

// loggingMiddleware records every action run from the menu together with its
// outcome. Errors pass through unchanged; the menu decides what the operator
// sees.
type loggingMiddleware struct {
	next Service
	log  *zerolog.Logger
}

var (
	_ Service = (*loggingMiddleware)(nil)
)

func NewLoggingMiddleware(log *zerolog.Logger) Middleware {
	return func(next Service) Service {
		return &loggingMiddleware{
			next: next,
			log:  log,
		}
	}
}

func (l *loggingMiddleware) EditBalance() error {
	return l.observe("edit_balance", l.next.EditBalance)
}

func (l *loggingMiddleware) ChangeLanguage() error {
	return l.observe("change_language", l.next.ChangeLanguage)
}

func (l *loggingMiddleware) ToggleCardStatus() error {
	return l.observe("toggle_card_status", l.next.ToggleCardStatus)
}

func (l *loggingMiddleware) ViewProducts() error {
	return l.observe("view_products", l.next.ViewProducts)
}

func (l *loggingMiddleware) observe(action string, fn func() error) error {
	l.log.Debug().Str("action", action).Msg("action started")
	start := time.Now()
	err := fn()
	took := time.Since(start)

	switch {
	case err == nil:
		l.log.Info().Str("action", action).Dur("took", took).Msg("action finished")
	case errors.Is(err, ErrInputClosed):
		l.log.Debug().Str("action", action).Msg("input closed during action")
	default:
		l.log.Warn().Err(err).Str("action", action).Dur("took", took).Msg("action aborted")
	}
	return err
}
