// Package repo provides clickhouse access for the audit trail
package repo

import (
	"context"

	"salesops/internal/platform/store"
)

// Table is the audit events table in clickhouse
const Table = "audit_events"

// Repo defines the repository contract for audit events
type Repo interface {
	Append(ctx context.Context, rows []RowEvent) error
	Recent(ctx context.Context, entity, action string, limit int) ([]RowEvent, error)
}

// RowEvent is an audit event row as stored
type RowEvent struct {
	ID       string
	At       string
	Actor    string
	Entity   string
	EntityID string
	Action   string
	Detail   string
}

// CH implements the Repo interface over the clickhouse seam
type CH struct{ db store.Clickhouse }

// NewCH creates a clickhouse backed audit repo
func NewCH(db store.Clickhouse) *CH { return &CH{db: db} }

// Append writes events in one batch
func (r *CH) Append(ctx context.Context, rows []RowEvent) error {
	if len(rows) == 0 {
		return nil
	}
	batch := make([][]any, 0, len(rows))
	for _, ev := range rows {
		batch = append(batch, []any{ev.ID, ev.At, ev.Actor, ev.Entity, ev.EntityID, ev.Action, ev.Detail})
	}
	return r.db.Insert(ctx, Table, batch)
}

// Recent returns the newest events, optionally scoped to an entity and action
func (r *CH) Recent(ctx context.Context, entity, action string, limit int) ([]RowEvent, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	const sql = `
SELECT id, at, actor, entity, entity_id, action, detail
FROM audit_events
WHERE (? = '' OR entity = ?)
AND (? = '' OR action = ?)
ORDER BY at DESC
LIMIT ?`
	rows, err := r.db.Query(ctx, sql, entity, entity, action, action, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowEvent
	for rows.Next() {
		var ev RowEvent
		if err := rows.Scan(&ev.ID, &ev.At, &ev.Actor, &ev.Entity, &ev.EntityID, &ev.Action, &ev.Detail); err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}
