// Package service contains the audit trail workflows
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	perr "salesops/internal/platform/errors"
	"salesops/internal/platform/store"
	"salesops/internal/services/api/audit/domain"
	"salesops/internal/services/api/audit/repo"
)

// Service defines the audit service contract
type Service interface {
	domain.RecorderPort
	domain.ServicePort
}

// Svc implements the Service interface
type Svc struct {
	Repo repo.Repo
	now  func() time.Time
}

// New creates a new audit service over the clickhouse seam.
// A nil db yields a service that rejects writes, which keeps the API
// usable when the audit backend is disabled
func New(db store.Clickhouse) *Svc {
	var r repo.Repo
	if db != nil {
		r = repo.NewCH(db)
	}
	return &Svc{Repo: r, now: time.Now}
}

// Record appends one event to the trail
func (s *Svc) Record(ctx context.Context, ev domain.Event) error {
	if s.Repo == nil {
		return perr.Unavailablef("audit backend disabled")
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.At == "" {
		ev.At = s.now().UTC().Format(time.RFC3339)
	}
	if ev.Actor == "" {
		ev.Actor = "system"
	}
	return s.Repo.Append(ctx, []repo.RowEvent{toRow(ev)})
}

// Recent returns the newest events for the optional entity and action scope
func (s *Svc) Recent(ctx context.Context, in domain.ListInput) ([]domain.Event, error) {
	if s.Repo == nil {
		return nil, perr.Unavailablef("audit backend disabled")
	}
	rows, err := s.Repo.Recent(ctx, in.Entity, in.Action, in.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Event, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Event{
			ID:       r.ID,
			At:       r.At,
			Actor:    r.Actor,
			Entity:   r.Entity,
			EntityID: r.EntityID,
			Action:   r.Action,
			Detail:   r.Detail,
		})
	}
	return out, nil
}

func toRow(ev domain.Event) repo.RowEvent {
	return repo.RowEvent{
		ID:       ev.ID,
		At:       ev.At,
		Actor:    ev.Actor,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Action:   ev.Action,
		Detail:   ev.Detail,
	}
}
