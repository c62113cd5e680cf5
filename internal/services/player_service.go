package services

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/baharkarakas/player-registry/internal/form"
	"github.com/baharkarakas/player-registry/internal/metrics"
	"github.com/baharkarakas/player-registry/internal/models"
	repo "github.com/baharkarakas/player-registry/internal/repository"
	"github.com/baharkarakas/player-registry/internal/validate"
)

// Submitter schedules background work; *worker.Pool satisfies it.
type Submitter interface {
	Submit(f func())
}

type PlayerService struct {
	players     repo.Players
	audit       repo.AuditLogs
	wp          Submitter
	clock       clockwork.Clock
	listingPath string
}

func NewPlayerService(p repo.Players, a repo.AuditLogs, wp Submitter, clock clockwork.Clock, listingPath string) *PlayerService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if listingPath == "" {
		listingPath = form.DefaultListingPath
	}
	return &PlayerService{players: p, audit: a, wp: wp, clock: clock, listingPath: listingPath}
}

func (s *PlayerService) ListingPath() string { return s.listingPath }

func (s *PlayerService) controller(nav form.Navigator) *form.Controller {
	return form.New(s.players, nav,
		form.WithClock(s.clock),
		form.WithListingPath(s.listingPath),
	)
}

func (s *PlayerService) List(ctx context.Context) ([]models.Player, error) {
	return s.players.List(ctx)
}

func (s *PlayerService) Form(ctx context.Context, id string) form.Values {
	return s.controller(nil).LoadForEdit(ctx, id)
}

func (s *PlayerService) Validate(v form.Values) validate.Errs {
	return s.controller(nil).Validate(v)
}

// Submit runs the form controller with nav as the navigation host and
// records the outcome. A stored record is audited in the background.
func (s *PlayerService) Submit(ctx context.Context, nav form.Navigator, id string, v form.Values) (form.Action, validate.Errs, error) {
	mode := string(form.ModeOf(id))
	act, errs, err := s.controller(nav).Submit(ctx, id, v)
	switch {
	case err != nil:
		metrics.SubmissionsTotal.WithLabelValues(mode, "error").Inc()
		slog.ErrorContext(ctx, "player submit", "mode", mode, "id", id, "err", err)
		return act, nil, err
	case len(errs) > 0:
		metrics.SubmissionsTotal.WithLabelValues(mode, "invalid").Inc()
		for _, e := range errs {
			metrics.ValidationFailures.WithLabelValues(e.Field).Inc()
		}
		slog.DebugContext(ctx, "player form rejected", "mode", mode, "errors", errs.Error())
		return act, errs, nil
	}

	metrics.SubmissionsTotal.WithLabelValues(mode, "ok").Inc()
	slog.InfoContext(ctx, "player saved", "action", act.Kind, "id", act.Player.ID)
	s.recordAudit(act)
	return act, nil, nil
}

func (s *PlayerService) recordAudit(act form.Action) {
	if s.audit == nil {
		return
	}
	l := models.AuditLog{
		EntityType: models.EntityPlayer,
		EntityID:   act.Player.ID,
		Action:     models.AuditCreated,
		Details:    map[string]any{"name": act.Player.Name},
	}
	if act.Kind == form.ActionUpdate {
		l.Action = models.AuditUpdated
	}
	write := func() {
		if err := s.audit.Create(context.Background(), l); err != nil {
			metrics.AuditWriteFailures.Inc()
			slog.Error("audit write", "entity_id", l.EntityID, "err", err)
		}
	}
	if s.wp == nil {
		write()
		return
	}
	s.wp.Submit(write)
}

func (s *PlayerService) History(ctx context.Context, id string) ([]models.AuditLog, error) {
	if s.audit == nil {
		return nil, nil
	}
	return s.audit.ListByEntity(ctx, id)
}
