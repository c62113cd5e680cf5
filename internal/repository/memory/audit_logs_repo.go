package memory

import (
	"context"
	"sync"

	"github.com/baharkarakas/player-registry/internal/models"
	"github.com/baharkarakas/player-registry/internal/repository"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

type auditLogsRepo struct {
	mu    sync.Mutex
	logs  []models.AuditLog
	clock clockwork.Clock
}

func NewAuditLogs(clock clockwork.Clock) repository.AuditLogs {
	return &auditLogsRepo{clock: clock}
}

func (r *auditLogsRepo) Create(_ context.Context, l models.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = r.clock.Now().UTC()
	}
	r.logs = append(r.logs, l)
	return nil
}

func (r *auditLogsRepo) ListByEntity(_ context.Context, entityID string) ([]models.AuditLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.AuditLog
	for _, l := range r.logs {
		if l.EntityID == entityID {
			out = append(out, l)
		}
	}
	return out, nil
}
