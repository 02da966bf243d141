// Package service contains payment workflows
package service

import (
	"context"

	"salesops/internal/core/normalize"
	"salesops/internal/core/status"
	"salesops/internal/modkit/repokit"
	perr "salesops/internal/platform/errors"
	"salesops/internal/services/api/payments/domain"
	"salesops/internal/services/api/payments/repo"
)

// DefaultPageSize is used when a request does not name one
const DefaultPageSize = 10

// Service defines the service contract for payments
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	norm   *normalize.Normalizer
}

// New creates a new payments service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("payments.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("payments.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, norm: normalize.New()}
}

// List returns one page of payments
func (s *Svc) List(ctx context.Context, in domain.ListInput) (domain.Page, error) {
	page, size := clampPage(in.Page, in.PageSize)
	rows, err := s.Repo.List(ctx, in.SortBy, in.SortDesc, size, (page-1)*size)
	if err != nil {
		return domain.Page{}, err
	}
	total, err := s.Repo.Count(ctx)
	if err != nil {
		return domain.Page{}, err
	}
	return assemble(rows, total, page, size), nil
}

// Search returns one page of payments matching the query
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.Page, error) {
	page, size := clampPage(in.Page, in.PageSize)
	q := s.norm.Normalize(in.Query)
	if q == "" {
		return s.List(ctx, domain.ListInput{Page: page, PageSize: size})
	}
	rows, err := s.Repo.Search(ctx, q, in.Column, size, (page-1)*size)
	if err != nil {
		return domain.Page{}, err
	}
	total, err := s.Repo.SearchCount(ctx, q, in.Column)
	if err != nil {
		return domain.Page{}, err
	}
	return assemble(rows, total, page, size), nil
}

// Filter returns one page of payments matching the column filters
func (s *Svc) Filter(ctx context.Context, in domain.FilterInput) (domain.Page, error) {
	page, size := clampPage(in.Page, in.PageSize)
	st, cur := filterArgs(in.Filters)
	rows, err := s.Repo.Filter(ctx, st, cur, size, (page-1)*size)
	if err != nil {
		return domain.Page{}, err
	}
	total, err := s.Repo.FilterCount(ctx, st, cur)
	if err != nil {
		return domain.Page{}, err
	}
	return assemble(rows, total, page, size), nil
}

// Get returns a single payment by id
func (s *Svc) Get(ctx context.Context, in domain.GetInput) (domain.Payment, error) {
	row, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return domain.Payment{}, perr.NotFoundf("payment %s", in.ID)
	}
	return toDomain(row), nil
}

// Summarize aggregates the filtered selection for display alongside the table
func (s *Svc) Summarize(ctx context.Context, in domain.FilterInput) (domain.Summary, error) {
	st, cur := filterArgs(in.Filters)
	n, total, err := s.Repo.Sum(ctx, st, cur)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summary{Count: n, Total: total, Currency: cur}, nil
}

// Export returns every payment matching the export selection
func (s *Svc) Export(ctx context.Context, in domain.ExportInput) ([]domain.Payment, error) {
	st, cur := filterArgs(in.Filters)
	rows, err := s.Repo.Export(ctx, s.norm.Normalize(in.Query), st, cur, 0)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Payment, 0, len(rows))
	for _, r := range rows {
		out = append(out, toDomain(r))
	}
	return out, nil
}

func assemble(rows []repo.RowPayment, total, page, size int) domain.Page {
	out := make([]domain.Payment, 0, len(rows))
	for _, r := range rows {
		out = append(out, toDomain(r))
	}
	return domain.Page{
		Rows:       out,
		TotalPages: totalPages(total, size),
		Page:       page,
		PageSize:   size,
	}
}

func toDomain(r repo.RowPayment) domain.Payment {
	return domain.Payment{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		Reference:  r.Reference,
		Amount:     r.Amount,
		Currency:   r.Currency,
		Status:     status.Parse(r.Status),
		PaidAt:     r.PaidAt,
		CreatedAt:  r.CreatedAt,
	}
}

func clampPage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 200 {
		size = DefaultPageSize
	}
	return page, size
}

func totalPages(total, size int) int {
	if total <= 0 {
		return 1
	}
	n := (total + size - 1) / size
	if n < 1 {
		n = 1
	}
	return n
}

func filterArgs(filters map[string]any) (st, currency string) {
	if filters == nil {
		return "", ""
	}
	if v, ok := filters["status"]; ok {
		if parsed := status.Parse(v); parsed != status.Unknown {
			st = parsed.String()
		}
	}
	if v, ok := filters["currency"].(string); ok {
		currency = v
	}
	return st, currency
}
