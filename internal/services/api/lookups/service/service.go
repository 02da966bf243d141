// Package service contains lookup list workflows
package service

import (
	"context"
	"sort"
	"strings"

	"salesops/internal/core/seedpack"
	"salesops/internal/modkit/repokit"
	perr "salesops/internal/platform/errors"
	"salesops/internal/services/api/lookups/domain"
	"salesops/internal/services/api/lookups/repo"
)

// Service defines the service contract for lookups
type Service interface{ domain.ServicePort }

// Svc implements the Service interface. Lists with no stored rows fall
// back to the embedded seed pack so dropdowns never come up empty
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	seeds  *seedpack.Pack
}

// New creates a new lookups service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("lookups.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("lookups.Service requires a non nil Repo binder")
	}
	seeds, err := seedpack.Load()
	if err != nil {
		panic("lookups.Service: " + err.Error())
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, seeds: seeds}
}

// Names returns every known list name, stored and seeded merged
func (s *Svc) Names(ctx context.Context) (domain.NamesOutput, error) {
	stored, err := s.Repo.Names(ctx)
	if err != nil {
		return domain.NamesOutput{}, err
	}
	seen := make(map[string]struct{}, len(stored))
	names := make([]string, 0, len(stored))
	for _, n := range stored {
		seen[n] = struct{}{}
		names = append(names, n)
	}
	for _, n := range s.seeds.Names() {
		if _, ok := seen[n]; !ok {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return domain.NamesOutput{Names: names}, nil
}

// Get returns one lookup list, falling back to seeds when empty
func (s *Svc) Get(ctx context.Context, in domain.GetInput) (domain.List, error) {
	name := canon(in.Name)
	rows, err := s.Repo.Options(ctx, name)
	if err != nil {
		return domain.List{}, err
	}
	if len(rows) > 0 {
		return domain.List{Name: name, Options: toOptions(rows)}, nil
	}
	if seeded := s.seeds.List(name); len(seeded) > 0 {
		opts := make([]domain.Option, 0, len(seeded))
		for _, o := range seeded {
			opts = append(opts, domain.Option{Value: o.Value, Label: o.Label})
		}
		return domain.List{Name: name, Options: opts, Seeded: true}, nil
	}
	return domain.List{}, perr.NotFoundf("lookup list %s", name)
}

// Add upserts an option and returns the updated list
func (s *Svc) Add(ctx context.Context, in domain.AddInput) (domain.List, error) {
	name := canon(in.Name)
	value := canon(in.Value)
	if err := s.Repo.Insert(ctx, name, value, strings.TrimSpace(in.Label)); err != nil {
		return domain.List{}, perr.Wrapf(err, perr.ErrorCodeConflict, "insert lookup option")
	}
	return s.Get(ctx, domain.GetInput{Name: name})
}

// Remove drops an option and returns the updated list
func (s *Svc) Remove(ctx context.Context, in domain.RemoveInput) (domain.List, error) {
	name := canon(in.Name)
	ok, err := s.Repo.Delete(ctx, name, canon(in.Value))
	if err != nil {
		return domain.List{}, err
	}
	if !ok {
		return domain.List{}, perr.NotFoundf("lookup option %s/%s", name, in.Value)
	}
	return s.Get(ctx, domain.GetInput{Name: name})
}

func canon(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func toOptions(rows []repo.RowOption) []domain.Option {
	out := make([]domain.Option, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Option{Value: r.Value, Label: r.Label})
	}
	return out
}
