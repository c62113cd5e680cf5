// Package form holds the player form logic: loading a record for editing,
// validating submitted values, and dispatching create or update actions to a
// record store. It has no knowledge of HTTP or HTML.
package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/baharkarakas/player-registry/internal/models"
	"github.com/baharkarakas/player-registry/internal/repository"
	"github.com/baharkarakas/player-registry/internal/validate"
)

// DefaultListingPath is where a successful submission navigates to.
const DefaultListingPath = "/user-management"

// Store is the part of the record store the form needs.
type Store interface {
	Find(ctx context.Context, id string) (models.Player, error)
	Create(ctx context.Context, p models.Player) (models.Player, error)
	Update(ctx context.Context, p models.Player) (models.Player, error)
}

type Navigator interface {
	NavigateTo(path string)
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) NavigateTo(path string) { f(path) }

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// ModeOf picks the form mode from the optional record id.
func ModeOf(recordID string) Mode {
	if strings.TrimSpace(recordID) == "" {
		return ModeCreate
	}
	return ModeEdit
}

type ActionKind string

const (
	ActionCreate ActionKind = "create"
	ActionUpdate ActionKind = "update"
)

// Action is what a valid submission dispatched to the store.
type Action struct {
	Kind   ActionKind    `json:"kind"`
	Player models.Player `json:"player"`
}

type Controller struct {
	store       Store
	nav         Navigator
	clock       clockwork.Clock
	newID       func() string
	listingPath string
}

type Option func(*Controller)

func WithClock(c clockwork.Clock) Option { return func(fc *Controller) { fc.clock = c } }

func WithIDFunc(f func() string) Option { return func(fc *Controller) { fc.newID = f } }

func WithListingPath(p string) Option {
	return func(fc *Controller) {
		if p != "" {
			fc.listingPath = p
		}
	}
}

func New(store Store, nav Navigator, opts ...Option) *Controller {
	c := &Controller{
		store:       store,
		nav:         nav,
		clock:       clockwork.NewRealClock(),
		newID:       uuid.NewString,
		listingPath: DefaultListingPath,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// LoadForEdit returns the editable state for recordID. A blank id, an
// unknown id or a failing store all yield the empty form.
func (c *Controller) LoadForEdit(ctx context.Context, recordID string) Values {
	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return Empty()
	}
	p, err := c.store.Find(ctx, recordID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			slog.WarnContext(ctx, "load player for edit", "id", recordID, "err", err)
		}
		return Empty()
	}
	return FromPlayer(p)
}

// Validate runs the field rules at the controller's current time.
func (c *Controller) Validate(v Values) validate.Errs {
	return Validate(v, c.clock.Now())
}

// Submit validates v and, when it passes, creates or updates the record and
// navigates to the listing. Invalid values come back as validate.Errs with
// nothing dispatched; the error result is reserved for store failures.
func (c *Controller) Submit(ctx context.Context, recordID string, v Values) (Action, validate.Errs, error) {
	if errs := c.Validate(v); len(errs) > 0 {
		return Action{}, errs, nil
	}

	var (
		act Action
		err error
	)
	recordID = strings.TrimSpace(recordID)
	switch ModeOf(recordID) {
	case ModeEdit:
		act.Kind = ActionUpdate
		act.Player, err = c.store.Update(ctx, v.toPlayer(recordID))
	default:
		act.Kind = ActionCreate
		act.Player, err = c.store.Create(ctx, v.toPlayer(c.newID()))
	}
	if err != nil {
		return Action{}, nil, fmt.Errorf("%s player: %w", act.Kind, err)
	}

	if c.nav != nil {
		c.nav.NavigateTo(c.listingPath)
	}
	return act, nil, nil
}
