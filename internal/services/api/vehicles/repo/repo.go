// Package repo provides postgres access for vehicles
package repo

import (
	"context"
	"fmt"

	"salesops/internal/modkit/repokit"
)

// Repo defines the repository contract for vehicles
type Repo interface {
	List(ctx context.Context, sortBy string, sortDesc bool, limit, offset int) ([]RowVehicle, error)
	Count(ctx context.Context) (int, error)
	Search(ctx context.Context, query, column string, limit, offset int) ([]RowVehicle, error)
	SearchCount(ctx context.Context, query, column string) (int, error)
	Filter(ctx context.Context, status, make_ string, year int, limit, offset int) ([]RowVehicle, error)
	FilterCount(ctx context.Context, status, make_ string, year int) (int, error)
	Get(ctx context.Context, id string) (RowVehicle, error)
	// SetStatus flips rows from one status to another and returns how many changed
	SetStatus(ctx context.Context, ids []string, from, to, reason string) (int, error)
	Export(ctx context.Context, query, status string, limit int) ([]RowVehicle, error)
}

// RowVehicle is a vehicle row as stored. Status keeps the raw legacy
// encoding; callers normalize it at the domain boundary
type RowVehicle struct {
	ID         string
	CustomerID string
	Plate      string
	Make       string
	Model      string
	Year       int
	Status     string
	CreatedAt  string
}

var sortCols = map[string]string{
	"plate":      "plate",
	"make":       "make",
	"model":      "model",
	"year":       "year",
	"status":     "status",
	"created_at": "created_at",
}

var searchCols = map[string]string{
	"plate": "plate",
	"make":  "make",
	"model": "model",
}

const cols = `id::text, coalesce(customer_id::text, ''), plate, make, model, year, status, created_at::text`

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

func (r *queries) List(ctx context.Context, sortBy string, sortDesc bool, limit, offset int) ([]RowVehicle, error) {
	sql := fmt.Sprintf(`select %s from vehicles %s limit $1 offset $2`, cols, orderClause(sortBy, sortDesc))
	return r.many(ctx, sql, limit, offset)
}

func (r *queries) Count(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `select count(*) from vehicles`).Scan(&n)
	return n, err
}

func (r *queries) Search(ctx context.Context, query, column string, limit, offset int) ([]RowVehicle, error) {
	if col, ok := searchCols[column]; ok {
		sql := fmt.Sprintf(`select %s from vehicles where %s ilike '%%' || $1 || '%%' order by created_at desc, id asc limit $2 offset $3`, cols, col)
		return r.many(ctx, sql, query, limit, offset)
	}
	sql := fmt.Sprintf(`select %s from vehicles
where plate ilike '%%' || $1 || '%%'
or make ilike '%%' || $1 || '%%'
or model ilike '%%' || $1 || '%%'
order by created_at desc, id asc
limit $2 offset $3`, cols)
	return r.many(ctx, sql, query, limit, offset)
}

func (r *queries) SearchCount(ctx context.Context, query, column string) (int, error) {
	var n int
	if col, ok := searchCols[column]; ok {
		sql := fmt.Sprintf(`select count(*) from vehicles where %s ilike '%%' || $1 || '%%'`, col)
		err := r.q.QueryRow(ctx, sql, query).Scan(&n)
		return n, err
	}
	err := r.q.QueryRow(ctx, `select count(*) from vehicles
where plate ilike '%' || $1 || '%'
or make ilike '%' || $1 || '%'
or model ilike '%' || $1 || '%'`, query).Scan(&n)
	return n, err
}

func (r *queries) Filter(ctx context.Context, status, make_ string, year, limit, offset int) ([]RowVehicle, error) {
	sql := fmt.Sprintf(`select %s from vehicles
where ($1 = '' or status = $1)
and ($2 = '' or make = $2)
and ($3 = 0 or year = $3)
order by created_at desc, id asc
limit $4 offset $5`, cols)
	return r.many(ctx, sql, status, make_, year, limit, offset)
}

func (r *queries) FilterCount(ctx context.Context, status, make_ string, year int) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `select count(*) from vehicles
where ($1 = '' or status = $1)
and ($2 = '' or make = $2)
and ($3 = 0 or year = $3)`, status, make_, year).Scan(&n)
	return n, err
}

func (r *queries) Get(ctx context.Context, id string) (RowVehicle, error) {
	sql := fmt.Sprintf(`select %s from vehicles where id = $1::uuid`, cols)
	var rr RowVehicle
	err := r.q.QueryRow(ctx, sql, id).Scan(&rr.ID, &rr.CustomerID, &rr.Plate, &rr.Make, &rr.Model, &rr.Year, &rr.Status, &rr.CreatedAt)
	return rr, err
}

func (r *queries) SetStatus(ctx context.Context, ids []string, from, to, reason string) (int, error) {
	tag, err := r.q.Exec(ctx, `update vehicles
set status = $3, review_reason = nullif($4, ''), updated_at = now()
where id = any($1::uuid[]) and status = $2`, ids, from, to, reason)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *queries) Export(ctx context.Context, query, status string, limit int) ([]RowVehicle, error) {
	if limit <= 0 {
		limit = 10000
	}
	sql := fmt.Sprintf(`select %s from vehicles
where ($1 = '' or plate ilike '%%' || $1 || '%%' or make ilike '%%' || $1 || '%%' or model ilike '%%' || $1 || '%%')
and ($2 = '' or status = $2)
order by created_at desc, id asc
limit $3`, cols)
	return r.many(ctx, sql, query, status, limit)
}

func (r *queries) many(ctx context.Context, sql string, args ...any) ([]RowVehicle, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowVehicle
	for rows.Next() {
		var rr RowVehicle
		if err := rows.Scan(&rr.ID, &rr.CustomerID, &rr.Plate, &rr.Make, &rr.Model, &rr.Year, &rr.Status, &rr.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
