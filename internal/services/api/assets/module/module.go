// Package module wires assets into the API using modkit
package module

import (
	"net/http"

	modkit "salesops/internal/modkit"
	"salesops/internal/modkit/httpkit"
	str "salesops/internal/platform/strings"
	assetshttp "salesops/internal/services/api/assets/http"
	assetsrepo "salesops/internal/services/api/assets/repo"
	assetssvc "salesops/internal/services/api/assets/service"
	auditdom "salesops/internal/services/api/audit/domain"
)

// Ports declares the cross-module dependencies assets accepts
type Ports struct {
	// Recorder receives review audit events; nil disables the trail
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

	svc assetssvc.Service
}

// New constructs an assets module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("assets"), modkit.WithPrefix("/assets")}, opts...)...)

	var recorder auditdom.RecorderPort
	var reviewers httpkit.AccessPort
	if p, ok := b.Ports.(Ports); ok {
		recorder = p.Recorder
		reviewers = p.Reviewers
	}

	repo := assetsrepo.NewPG()
	svc := assetssvc.New(deps.PG, repo, recorder)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		assetshttp.Register(r, m.svc, reviewers)
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

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
