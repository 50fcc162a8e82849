// Package content holds the catalog services layered over the record store.
// The services own the rules the store deliberately does not enforce:
// category references, the notice view counter, and the error taxonomy
// surfaced to handlers.
package content

import (
	"errors"

	"github.com/minsu-han/corpsite/internal/database"
)

// Error taxonomy surfaced to the presentation layer.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

// Services bundles every catalog service over one store handle.
type Services struct {
	Pages      *Pages
	Portfolio  *Portfolio
	Downloads  *Downloads
	Categories *Categories
	Notices    *Notices
	Cards      *Cards
	Settings   *Settings
}

// NewServices wires all catalog services to the given store.
func NewServices(store database.Store) *Services {
	return &Services{
		Pages:      &Pages{store: store},
		Portfolio:  &Portfolio{store: store},
		Downloads:  &Downloads{store: store},
		Categories: &Categories{store: store},
		Notices:    &Notices{store: store},
		Cards:      &Cards{store: store},
		Settings:   &Settings{store: store},
	}
}

// notFound translates the store sentinel into the service taxonomy and
// passes every other failure through untouched.
func notFound(err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
