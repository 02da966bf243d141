package domain

import "context"

// RecorderPort is implemented by the audit service and consumed by other modules
type RecorderPort interface {
	Record(ctx context.Context, ev Event) error
}

// ServicePort defines the service contract for audit reads
type ServicePort interface {
	Recent(ctx context.Context, in ListInput) ([]Event, error)
}
