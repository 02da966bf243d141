// Package service contains vehicle workflows, including the review queue
package service

import (
	"context"
	"strings"

	"salesops/internal/core/normalize"
	"salesops/internal/core/status"
	"salesops/internal/modkit/repokit"
	perr "salesops/internal/platform/errors"
	"salesops/internal/platform/store"
	auditdom "salesops/internal/services/api/audit/domain"
	"salesops/internal/services/api/vehicles/domain"
	"salesops/internal/services/api/vehicles/repo"
)

// DefaultPageSize is used when a request does not name one
const DefaultPageSize = 10

// Service defines the service contract for vehicles
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo     repo.Repo
	binder   repokit.Binder[repo.Repo]
	db       repokit.TxRunner
	norm     *normalize.Normalizer
	recorder auditdom.RecorderPort
}

// New creates a new vehicles service. recorder may be nil when the audit
// trail is disabled
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], recorder auditdom.RecorderPort) *Svc {
	if db == nil {
		panic("vehicles.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("vehicles.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, norm: normalize.New(), recorder: recorder}
}

// List returns one page of vehicles
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

// Search returns one page of vehicles matching the query
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

// Filter returns one page of vehicles matching the column filters
func (s *Svc) Filter(ctx context.Context, in domain.FilterInput) (domain.Page, error) {
	page, size := clampPage(in.Page, in.PageSize)
	st, mk, year := filterArgs(in.Filters)
	rows, err := s.Repo.Filter(ctx, st, mk, year, size, (page-1)*size)
	if err != nil {
		return domain.Page{}, err
	}
	total, err := s.Repo.FilterCount(ctx, st, mk, year)
	if err != nil {
		return domain.Page{}, err
	}
	return assemble(rows, total, page, size), nil
}

// Get returns a single vehicle by id
func (s *Svc) Get(ctx context.Context, in domain.GetInput) (domain.Vehicle, error) {
	row, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return domain.Vehicle{}, perr.NotFoundf("vehicle %s", in.ID)
	}
	return toDomain(row), nil
}

// Approve moves pending vehicles to approved. Rows not in pending are skipped
func (s *Svc) Approve(ctx context.Context, in domain.ReviewInput) (domain.ReviewResult, error) {
	return s.review(ctx, in, status.Approved, "")
}

// Reject moves pending vehicles to rejected. A reason is required
func (s *Svc) Reject(ctx context.Context, in domain.ReviewInput) (domain.ReviewResult, error) {
	if strings.TrimSpace(in.Reason) == "" {
		return domain.ReviewResult{}, perr.InvalidArgf("reject requires a reason")
	}
	return s.review(ctx, in, status.Rejected, in.Reason)
}

func (s *Svc) review(ctx context.Context, in domain.ReviewInput, to status.Status, reason string) (domain.ReviewResult, error) {
	if len(in.IDs) == 0 {
		return domain.ReviewResult{}, perr.InvalidArgf("no ids given")
	}
	var changed int
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		n, err := r.SetStatus(ctx, in.IDs, status.Pending.String(), to.String(), reason)
		if err != nil {
			return err
		}
		changed = n
		return nil
	})
	if err != nil {
		return domain.ReviewResult{}, err
	}
	s.audit(ctx, in.IDs, string(to), reason)
	return domain.ReviewResult{Requested: len(in.IDs), Changed: changed}, nil
}

// audit records review outcomes best effort; a dead trail must not fail the review
func (s *Svc) audit(ctx context.Context, ids []string, action, detail string) {
	if s.recorder == nil {
		return
	}
	actor, _ := store.Actor(ctx)
	for _, id := range ids {
		_ = s.recorder.Record(ctx, auditdom.Event{
			Actor:    actor,
			Entity:   "vehicles",
			EntityID: id,
			Action:   action,
			Detail:   detail,
		})
	}
}

// Export returns every vehicle matching the export selection
func (s *Svc) Export(ctx context.Context, in domain.ExportInput) ([]domain.Vehicle, error) {
	st, _, _ := filterArgs(in.Filters)
	rows, err := s.Repo.Export(ctx, s.norm.Normalize(in.Query), st, 0)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Vehicle, 0, len(rows))
	for _, r := range rows {
		out = append(out, toDomain(r))
	}
	return out, nil
}

func assemble(rows []repo.RowVehicle, total, page, size int) domain.Page {
	out := make([]domain.Vehicle, 0, len(rows))
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

func toDomain(r repo.RowVehicle) domain.Vehicle {
	return domain.Vehicle{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		Plate:      r.Plate,
		Make:       r.Make,
		Model:      r.Model,
		Year:       r.Year,
		Status:     status.Parse(r.Status),
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

func filterArgs(filters map[string]any) (st, mk string, year int) {
	if filters == nil {
		return "", "", 0
	}
	if v, ok := filters["status"]; ok {
		if parsed := status.Parse(v); parsed != status.Unknown {
			st = parsed.String()
		}
	}
	if v, ok := filters["make"].(string); ok {
		mk = v
	}
	switch v := filters["year"].(type) {
	case float64:
		year = int(v)
	case int:
		year = v
	}
	return st, mk, year
}
