// Package repo provides postgres access for customers
package repo

import (
	"context"
	"fmt"

	"salesops/internal/modkit/repokit"
)

// Repo defines the repository contract for customers
type Repo interface {
	List(ctx context.Context, sortBy string, sortDesc bool, limit, offset int) ([]RowCustomer, error)
	Count(ctx context.Context) (int, error)
	Search(ctx context.Context, query, column string, limit, offset int) ([]RowCustomer, error)
	SearchCount(ctx context.Context, query, column string) (int, error)
	Filter(ctx context.Context, status, city string, limit, offset int) ([]RowCustomer, error)
	FilterCount(ctx context.Context, status, city string) (int, error)
	Get(ctx context.Context, id string) (RowCustomer, error)
	Insert(ctx context.Context, name, email, phone, city, status string) (RowCustomer, error)
	Update(ctx context.Context, id, name, email, phone, city, status string) (RowCustomer, error)
	Delete(ctx context.Context, id string) (bool, error)
	Export(ctx context.Context, query, status, city string, limit int) ([]RowCustomer, error)
}

// RowCustomer is a customer row as stored. Status keeps the raw legacy
// encoding; callers normalize it at the domain boundary
type RowCustomer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	City      string
	Status    string
	CreatedAt string
}

// sortCols is the allow-list of sortable columns
var sortCols = map[string]string{
	"name":       "name",
	"email":      "email",
	"city":       "city",
	"status":     "status",
	"created_at": "created_at",
}

// searchCols is the allow-list of per-column search targets
var searchCols = map[string]string{
	"name":  "name",
	"email": "email",
	"phone": "phone",
	"city":  "city",
}

const cols = `id::text, name, email, coalesce(phone, ''), coalesce(city, ''), status, created_at::text`

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

func (r *queries) List(ctx context.Context, sortBy string, sortDesc bool, limit, offset int) ([]RowCustomer, error) {
	sql := fmt.Sprintf(`select %s from customers %s limit $1 offset $2`, cols, orderClause(sortBy, sortDesc))
	return r.many(ctx, sql, limit, offset)
}

func (r *queries) Count(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `select count(*) from customers`).Scan(&n)
	return n, err
}

func (r *queries) Search(ctx context.Context, query, column string, limit, offset int) ([]RowCustomer, error) {
	if col, ok := searchCols[column]; ok {
		sql := fmt.Sprintf(`select %s from customers where %s ilike '%%' || $1 || '%%' order by created_at desc, id asc limit $2 offset $3`, cols, col)
		return r.many(ctx, sql, query, limit, offset)
	}
	sql := fmt.Sprintf(`select %s from customers
where name ilike '%%' || $1 || '%%'
or email ilike '%%' || $1 || '%%'
or coalesce(city, '') ilike '%%' || $1 || '%%'
order by created_at desc, id asc
limit $2 offset $3`, cols)
	return r.many(ctx, sql, query, limit, offset)
}

func (r *queries) SearchCount(ctx context.Context, query, column string) (int, error) {
	var n int
	if col, ok := searchCols[column]; ok {
		sql := fmt.Sprintf(`select count(*) from customers where %s ilike '%%' || $1 || '%%'`, col)
		err := r.q.QueryRow(ctx, sql, query).Scan(&n)
		return n, err
	}
	err := r.q.QueryRow(ctx, `select count(*) from customers
where name ilike '%' || $1 || '%'
or email ilike '%' || $1 || '%'
or coalesce(city, '') ilike '%' || $1 || '%'`, query).Scan(&n)
	return n, err
}

func (r *queries) Filter(ctx context.Context, status, city string, limit, offset int) ([]RowCustomer, error) {
	sql := fmt.Sprintf(`select %s from customers
where ($1 = '' or status = $1)
and ($2 = '' or coalesce(city, '') = $2)
order by created_at desc, id asc
limit $3 offset $4`, cols)
	return r.many(ctx, sql, status, city, limit, offset)
}

func (r *queries) FilterCount(ctx context.Context, status, city string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `select count(*) from customers
where ($1 = '' or status = $1)
and ($2 = '' or coalesce(city, '') = $2)`, status, city).Scan(&n)
	return n, err
}

func (r *queries) Get(ctx context.Context, id string) (RowCustomer, error) {
	sql := fmt.Sprintf(`select %s from customers where id = $1::uuid`, cols)
	return r.one(ctx, sql, id)
}

func (r *queries) Insert(ctx context.Context, name, email, phone, city, status string) (RowCustomer, error) {
	sql := fmt.Sprintf(`insert into customers (name, email, phone, city, status)
values ($1, $2, nullif($3, ''), nullif($4, ''), $5)
returning %s`, cols)
	return r.one(ctx, sql, name, email, phone, city, status)
}

func (r *queries) Update(ctx context.Context, id, name, email, phone, city, status string) (RowCustomer, error) {
	sql := fmt.Sprintf(`update customers
set name = $2, email = $3, phone = nullif($4, ''), city = nullif($5, ''), status = $6, updated_at = now()
where id = $1::uuid
returning %s`, cols)
	return r.one(ctx, sql, id, name, email, phone, city, status)
}

func (r *queries) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `delete from customers where id = $1::uuid`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *queries) Export(ctx context.Context, query, status, city string, limit int) ([]RowCustomer, error) {
	if limit <= 0 {
		limit = 10000
	}
	sql := fmt.Sprintf(`select %s from customers
where ($1 = '' or name ilike '%%' || $1 || '%%' or email ilike '%%' || $1 || '%%')
and ($2 = '' or status = $2)
and ($3 = '' or coalesce(city, '') = $3)
order by created_at desc, id asc
limit $4`, cols)
	return r.many(ctx, sql, query, status, city, limit)
}

func (r *queries) many(ctx context.Context, sql string, args ...any) ([]RowCustomer, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowCustomer
	for rows.Next() {
		var rr RowCustomer
		if err := rows.Scan(&rr.ID, &rr.Name, &rr.Email, &rr.Phone, &rr.City, &rr.Status, &rr.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) one(ctx context.Context, sql string, args ...any) (RowCustomer, error) {
	var rr RowCustomer
	err := r.q.QueryRow(ctx, sql, args...).Scan(&rr.ID, &rr.Name, &rr.Email, &rr.Phone, &rr.City, &rr.Status, &rr.CreatedAt)
	return rr, err
}
