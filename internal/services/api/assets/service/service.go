// Package service contains asset workflows
package service

import (
	"context"
	"strings"

	"salesops/internal/core/normalize"
	"salesops/internal/core/status"
	"salesops/internal/modkit/repokit"
	perr "salesops/internal/platform/errors"
	"salesops/internal/platform/store"
	"salesops/internal/services/api/assets/domain"
	"salesops/internal/services/api/assets/repo"
	auditdom "salesops/internal/services/api/audit/domain"
)

// DefaultPageSize is used when a request does not name one
const DefaultPageSize = 10

// Service defines the service contract for assets
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo     repo.Repo
	binder   repokit.Binder[repo.Repo]
	db       repokit.TxRunner
	norm     *normalize.Normalizer
	recorder auditdom.RecorderPort
}

// New creates a new assets service. recorder may be nil when the audit
// trail is disabled
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], recorder auditdom.RecorderPort) *Svc {
	if db == nil {
		panic("assets.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("assets.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, norm: normalize.New(), recorder: recorder}
}

// List returns one page of assets
func (s *Svc) List(ctx context.Context, in domain.ListInput) (domain.Page, error) {
	page, size := clampPage(in.Page, in.PageSize)
	rows, err := s.Repo.List(ctx, in.VehicleID, in.SortBy, in.SortDesc, size, (page-1)*size)
	if err != nil {
		return domain.Page{}, err
	}
	total, err := s.Repo.Count(ctx, in.VehicleID)
	if err != nil {
		return domain.Page{}, err
	}
	return assemble(rows, total, page, size), nil
}

// Search returns one page of assets matching the query
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.Page, error) {
	page, size := clampPage(in.Page, in.PageSize)
	q := s.norm.Normalize(in.Query)
	if q == "" {
		return s.List(ctx, domain.ListInput{Page: page, PageSize: size})
	}
	rows, err := s.Repo.Search(ctx, q, size, (page-1)*size)
	if err != nil {
		return domain.Page{}, err
	}
	total, err := s.Repo.SearchCount(ctx, q)
	if err != nil {
		return domain.Page{}, err
	}
	return assemble(rows, total, page, size), nil
}

// Get returns a single asset by id
func (s *Svc) Get(ctx context.Context, in domain.GetInput) (domain.Asset, error) {
	row, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return domain.Asset{}, perr.NotFoundf("asset %s", in.ID)
	}
	return toDomain(row), nil
}

// Create attaches an asset to a vehicle. New assets start pending until
// a reviewer approves them
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Asset, error) {
	row, err := s.Repo.Insert(ctx, in.VehicleID, in.Kind, in.Label, in.URL, status.Pending.String())
	if err != nil {
		return domain.Asset{}, perr.Wrapf(err, perr.ErrorCodeConflict, "insert asset")
	}
	return toDomain(row), nil
}

// Delete removes an asset
func (s *Svc) Delete(ctx context.Context, in domain.DeleteInput) error {
	ok, err := s.Repo.Delete(ctx, in.ID)
	if err != nil {
		return err
	}
	if !ok {
		return perr.NotFoundf("asset %s", in.ID)
	}
	return nil
}

// Approve moves pending assets to approved. Rows not in pending are skipped
func (s *Svc) Approve(ctx context.Context, in domain.ReviewInput) (domain.ReviewResult, error) {
	return s.review(ctx, in, status.Approved, "")
}

// Reject moves pending assets to rejected. A reason is required
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
			Entity:   "assets",
			EntityID: id,
			Action:   action,
			Detail:   detail,
		})
	}
}

func assemble(rows []repo.RowAsset, total, page, size int) domain.Page {
	out := make([]domain.Asset, 0, len(rows))
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

func toDomain(r repo.RowAsset) domain.Asset {
	return domain.Asset{
		ID:        r.ID,
		VehicleID: r.VehicleID,
		Kind:      r.Kind,
		Label:     r.Label,
		URL:       r.URL,
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
