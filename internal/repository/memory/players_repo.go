package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/baharkarakas/player-registry/internal/models"
	"github.com/baharkarakas/player-registry/internal/repository"
	"github.com/jonboulle/clockwork"
)

// playersRepo keeps records in insertion order; lookups scan linearly.
type playersRepo struct {
	mu    sync.RWMutex
	rows  []models.Player
	clock clockwork.Clock
}

func NewPlayers(clock clockwork.Clock, seed ...models.Player) repository.Players {
	r := &playersRepo{clock: clock}
	for _, p := range seed {
		r.rows = append(r.rows, p.Clone())
	}
	return r
}

func (r *playersRepo) indexOf(id string) int {
	for i := range r.rows {
		if r.rows[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *playersRepo) Find(_ context.Context, id string) (models.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return models.Player{}, fmt.Errorf("find player %s: %w", id, repository.ErrNotFound)
	}
	return r.rows[i].Clone(), nil
}

func (r *playersRepo) Create(_ context.Context, p models.Player) (models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(p.ID) >= 0 {
		return models.Player{}, fmt.Errorf("create player %s: %w", p.ID, repository.ErrDuplicateID)
	}
	now := r.clock.Now().UTC()
	p = p.Clone()
	p.CreatedAt, p.UpdatedAt = now, now
	r.rows = append(r.rows, p)
	return p.Clone(), nil
}

func (r *playersRepo) Update(_ context.Context, p models.Player) (models.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(p.ID)
	if i < 0 {
		return models.Player{}, fmt.Errorf("update player %s: %w", p.ID, repository.ErrNotFound)
	}
	p = p.Clone()
	p.CreatedAt = r.rows[i].CreatedAt
	p.UpdatedAt = r.clock.Now().UTC()
	r.rows[i] = p
	return p.Clone(), nil
}

func (r *playersRepo) List(_ context.Context) ([]models.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Player, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, p.Clone())
	}
	return out, nil
}
