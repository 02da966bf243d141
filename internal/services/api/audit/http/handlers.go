// Package http provides http transport for the audit trail
package http

import (
	stdhttp "net/http"

	"salesops/internal/modkit/httpkit"
	"salesops/internal/services/api/audit/domain"
	svc "salesops/internal/services/api/audit/service"
)

// Register mounts audit endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
}

type handlers struct{ svc svc.Service }

// @Summary Recent audit events
// @Tags Audit
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Scope"
// @Success 200 {array} domain.Event "ok"
// @Router /audit/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.Recent(r.Context(), in)
}
