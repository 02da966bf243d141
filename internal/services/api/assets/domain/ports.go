package domain

import "context"

// ServicePort defines the service contract for assets
type ServicePort interface {
	List(ctx context.Context, in ListInput) (Page, error)
	Search(ctx context.Context, in SearchInput) (Page, error)
	Get(ctx context.Context, in GetInput) (Asset, error)
	Create(ctx context.Context, in CreateInput) (Asset, error)
	Delete(ctx context.Context, in DeleteInput) error
	Approve(ctx context.Context, in ReviewInput) (ReviewResult, error)
	Reject(ctx context.Context, in ReviewInput) (ReviewResult, error)
}
