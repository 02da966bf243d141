// Package repo provides postgres access for lookup lists
package repo

import (
	"context"

	"salesops/internal/modkit/repokit"
)

// Repo defines the repository contract for lookups
type Repo interface {
	Names(ctx context.Context) ([]string, error)
	Options(ctx context.Context, name string) ([]RowOption, error)
	Insert(ctx context.Context, name, value, label string) error
	Delete(ctx context.Context, name, value string) (bool, error)
}

// RowOption is a lookup option row as stored
type RowOption struct {
	Value string
	Label string
}

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

func (r *queries) Names(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `select distinct list_name from lookup_options order by list_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func (r *queries) Options(ctx context.Context, name string) ([]RowOption, error) {
	rows, err := r.q.Query(ctx, `select value, coalesce(label, value)
from lookup_options
where list_name = $1
order by value`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowOption
	for rows.Next() {
		var ro RowOption
		if err := rows.Scan(&ro.Value, &ro.Label); err != nil {
			return nil, err
		}
		out = append(out, ro)
	}
	return out, rows.Err()
}

func (r *queries) Insert(ctx context.Context, name, value, label string) error {
	_, err := r.q.Exec(ctx, `insert into lookup_options (list_name, value, label)
values ($1, $2, nullif($3, ''))
on conflict (list_name, value) do update set label = excluded.label`, name, value, label)
	return err
}

func (r *queries) Delete(ctx context.Context, name, value string) (bool, error) {
	tag, err := r.q.Exec(ctx, `delete from lookup_options where list_name = $1 and value = $2`, name, value)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
