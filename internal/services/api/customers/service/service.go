// Package service contains customer workflows
package service

import (
	"context"

	"salesops/internal/core/normalize"
	"salesops/internal/core/status"
	"salesops/internal/modkit/repokit"
	perr "salesops/internal/platform/errors"
	"salesops/internal/services/api/customers/domain"
	"salesops/internal/services/api/customers/repo"
)

// DefaultPageSize is used when a request does not name one
const DefaultPageSize = 10

// Service defines the service contract for customers
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	norm   *normalize.Normalizer
}

// New creates a new customers service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("customers.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("customers.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, norm: normalize.New()}
}

// List returns one page of customers
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
	return s.assemble(rows, total, page, size), nil
}

// Search returns one page of customers matching the query
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
	return s.assemble(rows, total, page, size), nil
}

// Filter returns one page of customers matching the column filters
func (s *Svc) Filter(ctx context.Context, in domain.FilterInput) (domain.Page, error) {
	page, size := clampPage(in.Page, in.PageSize)
	st, city := filterArgs(in.Filters)
	rows, err := s.Repo.Filter(ctx, st, city, size, (page-1)*size)
	if err != nil {
		return domain.Page{}, err
	}
	total, err := s.Repo.FilterCount(ctx, st, city)
	if err != nil {
		return domain.Page{}, err
	}
	return s.assemble(rows, total, page, size), nil
}

// Get returns a single customer by id
func (s *Svc) Get(ctx context.Context, in domain.GetInput) (domain.Customer, error) {
	row, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return domain.Customer{}, perr.NotFoundf("customer %s", in.ID)
	}
	return toDomain(row), nil
}

// Create inserts a customer and returns the stored record
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Customer, error) {
	st := status.Parse(in.Status)
	if st == status.Unknown {
		st = status.Pending
	}
	row, err := s.Repo.Insert(ctx, in.Name, in.Email, in.Phone, in.City, st.String())
	if err != nil {
		return domain.Customer{}, perr.Wrapf(err, perr.ErrorCodeConflict, "insert customer")
	}
	return toDomain(row), nil
}

// Update replaces a customer's mutable fields
func (s *Svc) Update(ctx context.Context, in domain.UpdateInput) (domain.Customer, error) {
	st := status.Parse(in.Status)
	if st == status.Unknown {
		cur, err := s.Get(ctx, domain.GetInput{ID: in.ID})
		if err != nil {
			return domain.Customer{}, err
		}
		st = cur.Status
	}
	row, err := s.Repo.Update(ctx, in.ID, in.Name, in.Email, in.Phone, in.City, st.String())
	if err != nil {
		return domain.Customer{}, perr.NotFoundf("customer %s", in.ID)
	}
	return toDomain(row), nil
}

// Delete removes a customer
func (s *Svc) Delete(ctx context.Context, in domain.DeleteInput) error {
	ok, err := s.Repo.Delete(ctx, in.ID)
	if err != nil {
		return err
	}
	if !ok {
		return perr.NotFoundf("customer %s", in.ID)
	}
	return nil
}

// Export returns every customer matching the export selection
func (s *Svc) Export(ctx context.Context, in domain.ExportInput) ([]domain.Customer, error) {
	st, city := filterArgs(in.Filters)
	rows, err := s.Repo.Export(ctx, s.norm.Normalize(in.Query), st, city, 0)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Customer, 0, len(rows))
	for _, r := range rows {
		out = append(out, toDomain(r))
	}
	return out, nil
}

func (s *Svc) assemble(rows []repo.RowCustomer, total, page, size int) domain.Page {
	out := make([]domain.Customer, 0, len(rows))
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

func toDomain(r repo.RowCustomer) domain.Customer {
	return domain.Customer{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		City:      r.City,
		Status:    status.Parse(r.Status),
		CreatedAt: r.CreatedAt,
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

// totalPages converts a row count into a page count, never below 1
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

func filterArgs(filters map[string]any) (st, city string) {
	if filters == nil {
		return "", ""
	}
	if v, ok := filters["status"]; ok {
		if parsed := status.Parse(v); parsed != status.Unknown {
			st = parsed.String()
		}
	}
	if v, ok := filters["city"].(string); ok {
		city = v
	}
	return st, city
}
