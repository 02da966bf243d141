// Package http provides http transport for vehicles
package http

import (
	"fmt"
	stdhttp "net/http"

	"salesops/internal/exportkit"
	"salesops/internal/modkit/httpkit"
	phttp "salesops/internal/platform/net/http"
	"salesops/internal/platform/net/http/bind"
	"salesops/internal/services/api/vehicles/domain"
	svc "salesops/internal/services/api/vehicles/service"
)

// Register mounts vehicle endpoints on the given router. The reviewers
// port gates the review transitions; a nil port leaves them open
func Register(r httpkit.Router, s svc.Service, reviewers httpkit.AccessPort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.SearchInput](r, "/search", h.search)
	httpkit.PostJSON[domain.FilterInput](r, "/filter", h.filter)
	httpkit.PostJSON[domain.GetInput](r, "/get", h.get)
	r.Group(func(g httpkit.Router) {
		g.Use(httpkit.Access(reviewers, phttp.JSON))
		// review transitions go through the validating bind path
		g.Post("/approve", phttp.JSONHandler(h.approve))
		g.Post("/reject", phttp.JSONHandler(h.reject))
	})
	r.Post("/export", h.export)
}

type handlers struct{ svc svc.Service }

// @Summary Page through vehicles
// @Tags Vehicles
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Page selection"
// @Success 200 {object} domain.Page "ok"
// @Router /vehicles/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// @Summary Search vehicles
// @Tags Vehicles
// @Accept json
// @Produce json
// @Param payload body domain.SearchInput true "Query"
// @Success 200 {object} domain.Page "ok"
// @Router /vehicles/search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Search(r.Context(), in)
}

// @Summary Filter vehicles by column values
// @Tags Vehicles
// @Accept json
// @Produce json
// @Param payload body domain.FilterInput true "Filters"
// @Success 200 {object} domain.Page "ok"
// @Router /vehicles/filter [post]
func (h *handlers) filter(r *stdhttp.Request, in domain.FilterInput) (any, error) {
	return h.svc.Filter(r.Context(), in)
}

// @Summary Fetch one vehicle
// @Tags Vehicles
// @Accept json
// @Produce json
// @Param payload body domain.GetInput true "ID"
// @Success 200 {object} domain.Vehicle "ok"
// @Router /vehicles/get [post]
func (h *handlers) get(r *stdhttp.Request, in domain.GetInput) (any, error) {
	return h.svc.Get(r.Context(), in)
}

// @Summary Approve pending vehicles
// @Tags Vehicles
// @Accept json
// @Produce json
// @Param payload body domain.ReviewInput true "IDs"
// @Success 200 {object} domain.ReviewResult "ok"
// @Router /vehicles/approve [post]
func (h *handlers) approve(r *stdhttp.Request, in domain.ReviewInput) (any, error) {
	return h.svc.Approve(r.Context(), in)
}

// @Summary Reject pending vehicles with a reason
// @Tags Vehicles
// @Accept json
// @Produce json
// @Param payload body domain.ReviewInput true "IDs and reason"
// @Success 200 {object} domain.ReviewResult "ok"
// @Router /vehicles/reject [post]
func (h *handlers) reject(r *stdhttp.Request, in domain.ReviewInput) (any, error) {
	return h.svc.Reject(r.Context(), in)
}

// export streams the selection as a csv or xlsx attachment
// @Summary Export vehicles as a file
// @Tags Vehicles
// @Accept json
// @Produce application/octet-stream
// @Param payload body domain.ExportInput true "Selection"
// @Success 200 {file} file "ok"
// @Router /vehicles/export [post]
func (h *handlers) export(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	in, err := bind.ParseJSON[domain.ExportInput](r)
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}
	format, err := exportkit.ParseFormat(in.Format)
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}
	rows, err := h.svc.Export(r.Context(), in)
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}

	sheet := exportkit.Sheet{
		Name:    "vehicles",
		Headers: []string{"ID", "Plate", "Make", "Model", "Year", "Status", "Created"},
	}
	for _, v := range rows {
		sheet.Rows = append(sheet.Rows, []string{v.ID, v.Plate, v.Make, v.Model, fmt.Sprintf("%d", v.Year), v.Status.String(), v.CreatedAt})
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "vehicles"+format.Ext()))
	_ = exportkit.Write(w, format, sheet)
}
