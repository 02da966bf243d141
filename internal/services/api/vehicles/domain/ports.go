package domain

import "context"

// ServicePort defines the service contract for vehicles
type ServicePort interface {
	List(ctx context.Context, in ListInput) (Page, error)
	Search(ctx context.Context, in SearchInput) (Page, error)
	Filter(ctx context.Context, in FilterInput) (Page, error)
	Get(ctx context.Context, in GetInput) (Vehicle, error)
	Approve(ctx context.Context, in ReviewInput) (ReviewResult, error)
	Reject(ctx context.Context, in ReviewInput) (ReviewResult, error)
	Export(ctx context.Context, in ExportInput) ([]Vehicle, error)
}
