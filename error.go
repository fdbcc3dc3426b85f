package openbankctl

import (
	"errors"
	"fmt"
)

var (
	// ErrInputClosed is returned by the prompt helpers once standard input
	// has no more lines to give.
	ErrInputClosed = errors.New("input closed")
)

type ErrMissingConfigDir struct {
	Dir string
}

func (e ErrMissingConfigDir) Error() string {
	return fmt.Sprintf("the '%s' directory was not found", e.Dir)
}

type ErrNotFound struct {
	Path string `json:"path"`
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("%s: file not found", e.Path)
}

type ErrParse struct {
	Path string
	Err  error
}

func (e ErrParse) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: invalid JSON", e.Path)
	}
	return fmt.Sprintf("%s: invalid JSON: %s", e.Path, e.Err.Error())
}

func (e ErrParse) Unwrap() error {
	return e.Err
}

type ErrIO struct {
	Path string
	Err  error
}

func (e ErrIO) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err.Error())
}

func (e ErrIO) Unwrap() error {
	return e.Err
}
