package domain

import "context"

// ServicePort defines the service contract for customers
type ServicePort interface {
	List(ctx context.Context, in ListInput) (Page, error)
	Search(ctx context.Context, in SearchInput) (Page, error)
	Filter(ctx context.Context, in FilterInput) (Page, error)
	Get(ctx context.Context, in GetInput) (Customer, error)
	Create(ctx context.Context, in CreateInput) (Customer, error)
	Update(ctx context.Context, in UpdateInput) (Customer, error)
	Delete(ctx context.Context, in DeleteInput) error
	Export(ctx context.Context, in ExportInput) ([]Customer, error)
}
