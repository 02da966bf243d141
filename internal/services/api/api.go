// Package api provides the HTTP API for the application
package api

import (
	stdhttp "net/http"
	"strings"

	"salesops/internal/platform/config"
	"salesops/internal/platform/logger"
	phttp "salesops/internal/platform/net/http"
	"salesops/internal/platform/store"

	"salesops/internal/modkit"
	"salesops/internal/modkit/httpkit"
	"salesops/internal/modkit/module"
	"salesops/internal/modkit/swaggerkit"

	perr "salesops/internal/platform/errors"

	assetsmod "salesops/internal/services/api/assets/module"
	auditmod "salesops/internal/services/api/audit/module"
	customersmod "salesops/internal/services/api/customers/module"
	lookupsmod "salesops/internal/services/api/lookups/module"
	metamod "salesops/internal/services/api/meta/module"
	paymentsmod "salesops/internal/services/api/payments/module"
	vehiclesmod "salesops/internal/services/api/vehicles/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// Construct the audit module first and extract its Recorder port
	auditModule := auditmod.New(deps)
	rec := module.MustPortsOf[auditmod.Ports](auditModule).Recorder

	reviewers := reviewerGate(opt.Config)

	// Inject the Recorder into the vehicles module so reviews leave a trail
	vehicles := vehiclesmod.New(
		deps,
		modkit.WithPorts(vehiclesmod.Ports{
			Recorder:  rec,
			Reviewers: reviewers,
		}),
	)

	mods := []module.Module{
		customersmod.New(deps),
		vehicles,
		assetsmod.New(deps, modkit.WithPorts(assetsmod.Ports{Recorder: rec, Reviewers: reviewers})),
		paymentsmod.New(deps),
		lookupsmod.New(deps),
		auditModule,
	}

	authPort := httpkit.NewPortFunc(tokenParser(opt.Config))

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		// health probes stay open
		meta := metamod.New(deps)
		module.Register(meta.Name(), meta.Ports())
		meta.MountRoutes(api)

		httpkit.Protected(api, authPort, func(sec httpkit.Router) {
			for _, m := range mods {
				// register each module's ports under its own name (for cross-module lookups)
				module.Register(m.Name(), m.Ports())

				// mount module routes under its Prefix()
				m.MountRoutes(sec)
			}
		})
	})
}

// reviewerGate restricts approve/reject to the configured user ids.
// An empty REVIEWERS list keeps the routes open to any authenticated user
func reviewerGate(cfg config.Conf) httpkit.AccessPort {
	entries := cfg.MayCSV("REVIEWERS", nil)
	allowed := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if uid := strings.TrimSpace(e); uid != "" {
			allowed[uid] = struct{}{}
		}
	}
	if len(allowed) == 0 {
		return nil
	}
	return reviewerPort{allowed: allowed}
}

type reviewerPort struct{ allowed map[string]struct{} }

func (p reviewerPort) Allow(_ *stdhttp.Request, userID string) error {
	if _, ok := p.allowed[userID]; ok {
		return nil
	}
	return perr.Forbiddenf("reviewer access required")
}

// tokenParser resolves bearer tokens against the configured token list.
// Entries are "token:user_id" pairs
func tokenParser(cfg config.Conf) httpkit.TokenFunc {
	entries := cfg.MayCSV("AUTH_TOKENS", nil)
	byToken := make(map[string]string, len(entries))
	for _, e := range entries {
		tok, uid, ok := strings.Cut(strings.TrimSpace(e), ":")
		if !ok || tok == "" || uid == "" {
			continue
		}
		byToken[tok] = uid
	}
	return func(token string) (string, error) {
		if uid, ok := byToken[token]; ok {
			return uid, nil
		}
		return "", perr.Unauthorizedf("unknown token")
	}
}
