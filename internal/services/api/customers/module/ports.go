package module

import (
	"context"

	customersdom "salesops/internal/services/api/customers/domain"
	customerssvc "salesops/internal/services/api/customers/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptCustomersPort adapts the customers service to the domain port interface
type adaptCustomersPort struct{ svc customerssvc.Service }

// List implements the domain ServicePort interface
func (a adaptCustomersPort) List(ctx context.Context, in customersdom.ListInput) (customersdom.Page, error) {
	return a.svc.List(ctx, in)
}

// Get implements the domain ServicePort interface
func (a adaptCustomersPort) Get(ctx context.Context, in customersdom.GetInput) (customersdom.Customer, error) {
	return a.svc.Get(ctx, in)
}
