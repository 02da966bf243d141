package domain

import "context"

// ServicePort defines the service contract for payments
type ServicePort interface {
	List(ctx context.Context, in ListInput) (Page, error)
	Search(ctx context.Context, in SearchInput) (Page, error)
	Filter(ctx context.Context, in FilterInput) (Page, error)
	Get(ctx context.Context, in GetInput) (Payment, error)
	Summarize(ctx context.Context, in FilterInput) (Summary, error)
	Export(ctx context.Context, in ExportInput) ([]Payment, error)
}
