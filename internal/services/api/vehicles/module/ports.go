package module

import (
	"context"

	vehiclesdom "salesops/internal/services/api/vehicles/domain"
	vehiclessvc "salesops/internal/services/api/vehicles/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptVehiclesPort adapts the vehicles service to the domain port interface
type adaptVehiclesPort struct{ svc vehiclessvc.Service }

// List implements the domain ServicePort interface
func (a adaptVehiclesPort) List(ctx context.Context, in vehiclesdom.ListInput) (vehiclesdom.Page, error) {
	return a.svc.List(ctx, in)
}

// Get implements the domain ServicePort interface
func (a adaptVehiclesPort) Get(ctx context.Context, in vehiclesdom.GetInput) (vehiclesdom.Vehicle, error) {
	return a.svc.Get(ctx, in)
}
