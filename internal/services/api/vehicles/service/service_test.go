package service

import (
	"context"
	"testing"

	"salesops/internal/core/status"
	"salesops/internal/modkit/repokit"
	perr "salesops/internal/platform/errors"
	"salesops/internal/platform/store"
	auditdom "salesops/internal/services/api/audit/domain"
	"salesops/internal/services/api/vehicles/domain"
	"salesops/internal/services/api/vehicles/repo"
)

type fakeTx struct{}

func (fakeTx) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (fakeTx) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (fakeTx) QueryRow(context.Context, string, ...any) store.Row             { return nil }
func (fakeTx) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error {
	return fn(fakeTx{})
}

type fakeBinder struct{ r repo.Repo }

func (b fakeBinder) Bind(repokit.Queryer) repo.Repo { return b.r }

type fakeRepo struct {
	rows  []repo.RowVehicle
	count int

	setIDs    []string
	setFrom   string
	setTo     string
	setReason string
	changed   int
	setErr    error
}

func (f *fakeRepo) List(_ context.Context, _ string, _ bool, _, _ int) ([]repo.RowVehicle, error) {
	return f.rows, nil
}
func (f *fakeRepo) Count(context.Context) (int, error) { return f.count, nil }
func (f *fakeRepo) Search(_ context.Context, _, _ string, _, _ int) ([]repo.RowVehicle, error) {
	return f.rows, nil
}
func (f *fakeRepo) SearchCount(context.Context, string, string) (int, error) { return f.count, nil }
func (f *fakeRepo) Filter(_ context.Context, _, _ string, _ int, _, _ int) ([]repo.RowVehicle, error) {
	return f.rows, nil
}
func (f *fakeRepo) FilterCount(context.Context, string, string, int) (int, error) {
	return f.count, nil
}
func (f *fakeRepo) Get(context.Context, string) (repo.RowVehicle, error) {
	return repo.RowVehicle{}, nil
}

func (f *fakeRepo) SetStatus(_ context.Context, ids []string, from, to, reason string) (int, error) {
	f.setIDs = ids
	f.setFrom = from
	f.setTo = to
	f.setReason = reason
	return f.changed, f.setErr
}

func (f *fakeRepo) Export(context.Context, string, string, int) ([]repo.RowVehicle, error) {
	return f.rows, nil
}

type fakeRecorder struct {
	events []auditdom.Event
	err    error
}

func (f *fakeRecorder) Record(_ context.Context, ev auditdom.Event) error {
	f.events = append(f.events, ev)
	return f.err
}

func TestApprove_OnlyPendingTransition(t *testing.T) {
	r := &fakeRepo{changed: 1}
	s := New(fakeTx{}, fakeBinder{r: r}, nil)

	res, err := s.Approve(context.Background(), domain.ReviewInput{IDs: []string{"v-1", "v-2"}})
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if r.setFrom != status.Pending.String() || r.setTo != status.Approved.String() {
		t.Fatalf("expected pending -> approved, got %s -> %s", r.setFrom, r.setTo)
	}
	if res.Requested != 2 || res.Changed != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestReject_RequiresReason(t *testing.T) {
	r := &fakeRepo{}
	s := New(fakeTx{}, fakeBinder{r: r}, nil)

	_, err := s.Reject(context.Background(), domain.ReviewInput{IDs: []string{"v-1"}, Reason: "  "})
	if perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if r.setIDs != nil {
		t.Fatal("SetStatus must not run without a reason")
	}
}

func TestReject_PassesReasonThrough(t *testing.T) {
	r := &fakeRepo{changed: 1}
	s := New(fakeTx{}, fakeBinder{r: r}, nil)

	_, err := s.Reject(context.Background(), domain.ReviewInput{IDs: []string{"v-1"}, Reason: "blurry photos"})
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if r.setTo != status.Rejected.String() || r.setReason != "blurry photos" {
		t.Fatalf("got to=%s reason=%q", r.setTo, r.setReason)
	}
}

func TestReview_EmptyIDs(t *testing.T) {
	s := New(fakeTx{}, fakeBinder{r: &fakeRepo{}}, nil)
	_, err := s.Approve(context.Background(), domain.ReviewInput{})
	if perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestReview_RecordsAuditPerID(t *testing.T) {
	rec := &fakeRecorder{}
	r := &fakeRepo{changed: 2}
	s := New(fakeTx{}, fakeBinder{r: r}, rec)

	ctx := store.WithActor(context.Background(), "u-7")
	if _, err := s.Approve(ctx, domain.ReviewInput{IDs: []string{"v-1", "v-2"}}); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if len(rec.events) != 2 {
		t.Fatalf("expected one event per id, got %d", len(rec.events))
	}
	ev := rec.events[0]
	if ev.Actor != "u-7" || ev.Entity != "vehicles" || ev.Action != "approved" {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestReview_AuditFailureDoesNotFailReview(t *testing.T) {
	rec := &fakeRecorder{err: perr.Unavailablef("trail down")}
	r := &fakeRepo{changed: 1}
	s := New(fakeTx{}, fakeBinder{r: r}, rec)

	res, err := s.Approve(context.Background(), domain.ReviewInput{IDs: []string{"v-1"}})
	if err != nil {
		t.Fatalf("review must survive a dead audit trail, got %v", err)
	}
	if res.Changed != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
}
