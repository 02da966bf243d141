package domain

import "context"

// ServicePort defines the service contract for lookups
type ServicePort interface {
	Names(ctx context.Context) (NamesOutput, error)
	Get(ctx context.Context, in GetInput) (List, error)
	Add(ctx context.Context, in AddInput) (List, error)
	Remove(ctx context.Context, in RemoveInput) (List, error)
}
