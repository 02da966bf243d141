package module

import (
	"context"

	paymentsdom "salesops/internal/services/api/payments/domain"
	paymentssvc "salesops/internal/services/api/payments/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptPaymentsPort adapts the payments service to the domain port interface
type adaptPaymentsPort struct{ svc paymentssvc.Service }

// Summarize implements the domain ServicePort interface
func (a adaptPaymentsPort) Summarize(ctx context.Context, in paymentsdom.FilterInput) (paymentsdom.Summary, error) {
	return a.svc.Summarize(ctx, in)
}
