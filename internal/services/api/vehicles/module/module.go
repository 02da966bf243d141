// Package module wires vehicles into the API using modkit
package module

import (
	"net/http"

	modkit "salesops/internal/modkit"
	"salesops/internal/modkit/httpkit"
	str "salesops/internal/platform/strings"
	auditdom "salesops/internal/services/api/audit/domain"
	vehicleshttp "salesops/internal/services/api/vehicles/http"
	vehiclesrepo "salesops/internal/services/api/vehicles/repo"
	vehiclessvc "salesops/internal/services/api/vehicles/service"
)

// Ports is the injectable dependency set for the vehicles module
type Ports struct {
	// Recorder receives review outcomes for the audit trail
	Recorder auditdom.RecorderPort

	// Reviewers gates the approve/reject routes; nil allows everyone
	Reviewers httpkit.AccessPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc vehiclessvc.Service
}

// New constructs a vehicles module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("vehicles"), modkit.WithPrefix("/vehicles")}, opts...)...)

	var recorder auditdom.RecorderPort
	var reviewers httpkit.AccessPort
	if p, ok := b.Ports.(Ports); ok {
		recorder = p.Recorder
		reviewers = p.Reviewers
	}

	repo := vehiclesrepo.NewPG()
	svc := vehiclessvc.New(deps.PG, repo, recorder)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptVehiclesPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		vehicleshttp.Register(r, m.svc, reviewers)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
