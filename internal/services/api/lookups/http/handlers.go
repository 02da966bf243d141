// Package http provides http transport for lookup lists
package http

import (
	stdhttp "net/http"

	"salesops/internal/modkit/httpkit"
	phttp "salesops/internal/platform/net/http"
	"salesops/internal/services/api/lookups/domain"
	svc "salesops/internal/services/api/lookups/service"
)

// Register mounts lookup endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/names", h.names)
	httpkit.PostJSON[domain.GetInput](r, "/get", h.get)
	// mutations go through the validating bind path
	r.Post("/add", phttp.JSONHandler(h.add))
	r.Post("/remove", phttp.JSONHandler(h.remove))
}

type handlers struct{ svc svc.Service }

// @Summary List known lookup list names
// @Tags Lookups
// @Produce json
// @Success 200 {object} domain.NamesOutput "ok"
// @Router /lookups/names [get]
func (h *handlers) names(r *stdhttp.Request) (any, error) {
	return h.svc.Names(r.Context())
}

// @Summary Fetch one lookup list
// @Tags Lookups
// @Accept json
// @Produce json
// @Param payload body domain.GetInput true "List name"
// @Success 200 {object} domain.List "ok"
// @Router /lookups/get [post]
func (h *handlers) get(r *stdhttp.Request, in domain.GetInput) (any, error) {
	return h.svc.Get(r.Context(), in)
}

// @Summary Add an option to a lookup list
// @Tags Lookups
// @Accept json
// @Produce json
// @Param payload body domain.AddInput true "Option"
// @Success 200 {object} domain.List "ok"
// @Router /lookups/add [post]
func (h *handlers) add(r *stdhttp.Request, in domain.AddInput) (any, error) {
	return h.svc.Add(r.Context(), in)
}

// @Summary Remove an option from a lookup list
// @Tags Lookups
// @Accept json
// @Produce json
// @Param payload body domain.RemoveInput true "Option"
// @Success 200 {object} domain.List "ok"
// @Router /lookups/remove [post]
func (h *handlers) remove(r *stdhttp.Request, in domain.RemoveInput) (any, error) {
	return h.svc.Remove(r.Context(), in)
}
