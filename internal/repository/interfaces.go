package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/player-registry/internal/models"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicateID = errors.New("record id already exists")
)

// Players is the keyed record store behind the player form.
type Players interface {
	Find(ctx context.Context, id string) (models.Player, error)
	Create(ctx context.Context, p models.Player) (models.Player, error)
	// Update replaces every field except id and created_at.
	Update(ctx context.Context, p models.Player) (models.Player, error)
	List(ctx context.Context) ([]models.Player, error)
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
	ListByEntity(ctx context.Context, entityID string) ([]models.AuditLog, error)
}

type Repositories struct {
	Players   Players
	AuditLogs AuditLogs
}
