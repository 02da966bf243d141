// Package http provides http transport for assets
package http

import (
	stdhttp "net/http"

	"salesops/internal/modkit/httpkit"
	phttp "salesops/internal/platform/net/http"
	"salesops/internal/services/api/assets/domain"
	svc "salesops/internal/services/api/assets/service"
)

// Register mounts asset endpoints on the given router. The reviewers
// port gates the review transitions; a nil port leaves them open
func Register(r httpkit.Router, s svc.Service, reviewers httpkit.AccessPort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.SearchInput](r, "/search", h.search)
	httpkit.PostJSON[domain.GetInput](r, "/get", h.get)
	// mutations go through the validating bind path
	r.Post("/create", phttp.JSONHandler(h.create))
	r.Post("/delete", phttp.JSONHandler(h.delete))
	r.Group(func(g httpkit.Router) {
		g.Use(httpkit.Access(reviewers, phttp.JSON))
		g.Post("/approve", phttp.JSONHandler(h.approve))
		g.Post("/reject", phttp.JSONHandler(h.reject))
	})
}

type handlers struct{ svc svc.Service }

// @Summary Page through assets
// @Tags Assets
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Page selection"
// @Success 200 {object} domain.Page "ok"
// @Router /assets/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// @Summary Search assets
// @Tags Assets
// @Accept json
// @Produce json
// @Param payload body domain.SearchInput true "Query"
// @Success 200 {object} domain.Page "ok"
// @Router /assets/search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Search(r.Context(), in)
}

// @Summary Fetch one asset
// @Tags Assets
// @Accept json
// @Produce json
// @Param payload body domain.GetInput true "ID"
// @Success 200 {object} domain.Asset "ok"
// @Router /assets/get [post]
func (h *handlers) get(r *stdhttp.Request, in domain.GetInput) (any, error) {
	return h.svc.Get(r.Context(), in)
}

// @Summary Attach an asset to a vehicle
// @Tags Assets
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Asset"
// @Success 200 {object} domain.Asset "ok"
// @Router /assets/create [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// @Summary Delete an asset
// @Tags Assets
// @Accept json
// @Produce json
// @Param payload body domain.DeleteInput true "ID"
// @Success 200 {object} string "ok"
// @Router /assets/delete [post]
func (h *handlers) delete(r *stdhttp.Request, in domain.DeleteInput) (any, error) {
	if err := h.svc.Delete(r.Context(), in); err != nil {
		return nil, err
	}
	return "deleted", nil
}

// @Summary Approve pending assets
// @Tags Assets
// @Accept json
// @Produce json
// @Param payload body domain.ReviewInput true "IDs"
// @Success 200 {object} domain.ReviewResult "ok"
// @Router /assets/approve [post]
func (h *handlers) approve(r *stdhttp.Request, in domain.ReviewInput) (any, error) {
	return h.svc.Approve(r.Context(), in)
}

// @Summary Reject pending assets with a reason
// @Tags Assets
// @Accept json
// @Produce json
// @Param payload body domain.ReviewInput true "IDs and reason"
// @Success 200 {object} domain.ReviewResult "ok"
// @Router /assets/reject [post]
func (h *handlers) reject(r *stdhttp.Request, in domain.ReviewInput) (any, error) {
	return h.svc.Reject(r.Context(), in)
}
