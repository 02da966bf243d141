// Package repo provides postgres access for payments
package repo

import (
	"context"
	"fmt"

	"salesops/internal/modkit/repokit"
)

// Repo defines the repository contract for payments
type Repo interface {
	List(ctx context.Context, sortBy string, sortDesc bool, limit, offset int) ([]RowPayment, error)
	Count(ctx context.Context) (int, error)
	Search(ctx context.Context, query, column string, limit, offset int) ([]RowPayment, error)
	SearchCount(ctx context.Context, query, column string) (int, error)
	Filter(ctx context.Context, status, currency string, limit, offset int) ([]RowPayment, error)
	FilterCount(ctx context.Context, status, currency string) (int, error)
	Get(ctx context.Context, id string) (RowPayment, error)
	Sum(ctx context.Context, status, currency string) (int, float64, error)
	Export(ctx context.Context, query, status, currency string, limit int) ([]RowPayment, error)
}

// RowPayment is a payment row as stored. Status keeps the raw legacy
// encoding; callers normalize it at the domain boundary
type RowPayment struct {
	ID         string
	CustomerID string
	Reference  string
	Amount     float64
	Currency   string
	Status     string
	PaidAt     string
	CreatedAt  string
}

var sortCols = map[string]string{
	"reference":  "reference",
	"amount":     "amount",
	"currency":   "currency",
	"status":     "status",
	"paid_at":    "paid_at",
	"created_at": "created_at",
}

var searchCols = map[string]string{
	"reference": "reference",
	"currency":  "currency",
}

const cols = `id::text, customer_id::text, reference, amount::float8, currency, status, coalesce(paid_at::text, ''), created_at::text`

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

func (r *queries) List(ctx context.Context, sortBy string, sortDesc bool, limit, offset int) ([]RowPayment, error) {
	sql := fmt.Sprintf(`select %s from payments %s limit $1 offset $2`, cols, orderClause(sortBy, sortDesc))
	return r.many(ctx, sql, limit, offset)
}

func (r *queries) Count(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `select count(*) from payments`).Scan(&n)
	return n, err
}

func (r *queries) Search(ctx context.Context, query, column string, limit, offset int) ([]RowPayment, error) {
	if col, ok := searchCols[column]; ok {
		sql := fmt.Sprintf(`select %s from payments where %s ilike '%%' || $1 || '%%' order by created_at desc, id asc limit $2 offset $3`, cols, col)
		return r.many(ctx, sql, query, limit, offset)
	}
	sql := fmt.Sprintf(`select %s from payments
where reference ilike '%%' || $1 || '%%'
order by created_at desc, id asc
limit $2 offset $3`, cols)
	return r.many(ctx, sql, query, limit, offset)
}

func (r *queries) SearchCount(ctx context.Context, query, column string) (int, error) {
	var n int
	if col, ok := searchCols[column]; ok {
		sql := fmt.Sprintf(`select count(*) from payments where %s ilike '%%' || $1 || '%%'`, col)
		err := r.q.QueryRow(ctx, sql, query).Scan(&n)
		return n, err
	}
	err := r.q.QueryRow(ctx, `select count(*) from payments where reference ilike '%' || $1 || '%'`, query).Scan(&n)
	return n, err
}

func (r *queries) Filter(ctx context.Context, status, currency string, limit, offset int) ([]RowPayment, error) {
	sql := fmt.Sprintf(`select %s from payments
where ($1 = '' or status = $1)
and ($2 = '' or currency = $2)
order by created_at desc, id asc
limit $3 offset $4`, cols)
	return r.many(ctx, sql, status, currency, limit, offset)
}

func (r *queries) FilterCount(ctx context.Context, status, currency string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `select count(*) from payments
where ($1 = '' or status = $1)
and ($2 = '' or currency = $2)`, status, currency).Scan(&n)
	return n, err
}

func (r *queries) Get(ctx context.Context, id string) (RowPayment, error) {
	sql := fmt.Sprintf(`select %s from payments where id = $1::uuid`, cols)
	var rr RowPayment
	err := r.q.QueryRow(ctx, sql, id).Scan(&rr.ID, &rr.CustomerID, &rr.Reference, &rr.Amount, &rr.Currency, &rr.Status, &rr.PaidAt, &rr.CreatedAt)
	return rr, err
}

func (r *queries) Sum(ctx context.Context, status, currency string) (int, float64, error) {
	var n int
	var total float64
	err := r.q.QueryRow(ctx, `select count(*), coalesce(sum(amount), 0)::float8 from payments
where ($1 = '' or status = $1)
and ($2 = '' or currency = $2)`, status, currency).Scan(&n, &total)
	return n, total, err
}

func (r *queries) Export(ctx context.Context, query, status, currency string, limit int) ([]RowPayment, error) {
	if limit <= 0 {
		limit = 10000
	}
	sql := fmt.Sprintf(`select %s from payments
where ($1 = '' or reference ilike '%%' || $1 || '%%')
and ($2 = '' or status = $2)
and ($3 = '' or currency = $3)
order by created_at desc, id asc
limit $4`, cols)
	return r.many(ctx, sql, query, status, currency, limit)
}

func (r *queries) many(ctx context.Context, sql string, args ...any) ([]RowPayment, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowPayment
	for rows.Next() {
		var rr RowPayment
		if err := rows.Scan(&rr.ID, &rr.CustomerID, &rr.Reference, &rr.Amount, &rr.Currency, &rr.Status, &rr.PaidAt, &rr.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
