// Package repo provides postgres access for assets
package repo

import (
	"context"
	"fmt"

	"salesops/internal/modkit/repokit"
)

// Repo defines the repository contract for assets
type Repo interface {
	List(ctx context.Context, vehicleID, sortBy string, sortDesc bool, limit, offset int) ([]RowAsset, error)
	Count(ctx context.Context, vehicleID string) (int, error)
	Search(ctx context.Context, query string, limit, offset int) ([]RowAsset, error)
	SearchCount(ctx context.Context, query string) (int, error)
	Get(ctx context.Context, id string) (RowAsset, error)
	Insert(ctx context.Context, vehicleID, kind, label, url, status string) (RowAsset, error)
	Delete(ctx context.Context, id string) (bool, error)

	// SetStatus flips rows from one status to another and returns how many changed
	SetStatus(ctx context.Context, ids []string, from, to, reason string) (int, error)
}

// RowAsset is an asset row as stored. Status keeps the raw legacy
// encoding; callers normalize it at the domain boundary
type RowAsset struct {
	ID        string
	VehicleID string
	Kind      string
	Label     string
	URL       string
	Status    string
	CreatedAt string
}

// sortCols is the allow-list of sortable columns
var sortCols = map[string]string{
	"kind":       "kind",
	"label":      "label",
	"status":     "status",
	"created_at": "created_at",
}

const cols = `id::text, vehicle_id::text, kind, coalesce(label, ''), url, status, created_at::text`

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func orderClause(sortBy string, desc bool) string {
	col, ok := sortCols[sortBy]
	if !ok {
		col = "created_at"
		desc = true
	}
	dir := "asc"
	if desc {
		dir = "desc"
	}
	return fmt.Sprintf("order by %s %s, id asc", col, dir)
}

func (r *queries) List(ctx context.Context, vehicleID, sortBy string, sortDesc bool, limit, offset int) ([]RowAsset, error) {
	sql := fmt.Sprintf(`select %s from assets
where ($1 = '' or vehicle_id = $1::uuid)
%s limit $2 offset $3`, cols, orderClause(sortBy, sortDesc))
	return r.many(ctx, sql, vehicleID, limit, offset)
}

func (r *queries) Count(ctx context.Context, vehicleID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `select count(*) from assets where ($1 = '' or vehicle_id = $1::uuid)`, vehicleID).Scan(&n)
	return n, err
}

func (r *queries) Search(ctx context.Context, query string, limit, offset int) ([]RowAsset, error) {
	sql := fmt.Sprintf(`select %s from assets
where coalesce(label, '') ilike '%%' || $1 || '%%'
or kind ilike '%%' || $1 || '%%'
order by created_at desc, id asc
limit $2 offset $3`, cols)
	return r.many(ctx, sql, query, limit, offset)
}

func (r *queries) SearchCount(ctx context.Context, query string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `select count(*) from assets
where coalesce(label, '') ilike '%' || $1 || '%'
or kind ilike '%' || $1 || '%'`, query).Scan(&n)
	return n, err
}

func (r *queries) Get(ctx context.Context, id string) (RowAsset, error) {
	sql := fmt.Sprintf(`select %s from assets where id = $1::uuid`, cols)
	return r.one(ctx, sql, id)
}

func (r *queries) Insert(ctx context.Context, vehicleID, kind, label, url, status string) (RowAsset, error) {
	sql := fmt.Sprintf(`insert into assets (vehicle_id, kind, label, url, status)
values ($1::uuid, $2, nullif($3, ''), $4, $5)
returning %s`, cols)
	return r.one(ctx, sql, vehicleID, kind, label, url, status)
}

func (r *queries) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `delete from assets where id = $1::uuid`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *queries) SetStatus(ctx context.Context, ids []string, from, to, reason string) (int, error) {
	tag, err := r.q.Exec(ctx, `update assets
set status = $3, review_reason = nullif($4, ''), updated_at = now()
where id = any($1::uuid[]) and status = $2`, ids, from, to, reason)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *queries) many(ctx context.Context, sql string, args ...any) ([]RowAsset, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowAsset
	for rows.Next() {
		var rr RowAsset
		if err := rows.Scan(&rr.ID, &rr.VehicleID, &rr.Kind, &rr.Label, &rr.URL, &rr.Status, &rr.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) one(ctx context.Context, sql string, args ...any) (RowAsset, error) {
	var rr RowAsset
	err := r.q.QueryRow(ctx, sql, args...).Scan(&rr.ID, &rr.VehicleID, &rr.Kind, &rr.Label, &rr.URL, &rr.Status, &rr.CreatedAt)
	return rr, err
}
