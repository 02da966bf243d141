// Package http provides http transport for customers
package http

import (
	"fmt"
	stdhttp "net/http"

	"salesops/internal/exportkit"
	"salesops/internal/modkit/httpkit"
	phttp "salesops/internal/platform/net/http"
	"salesops/internal/platform/net/http/bind"
	"salesops/internal/services/api/customers/domain"
	svc "salesops/internal/services/api/customers/service"
)

// Register mounts customer endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.SearchInput](r, "/search", h.search)
	httpkit.PostJSON[domain.FilterInput](r, "/filter", h.filter)
	httpkit.PostJSON[domain.GetInput](r, "/get", h.get)
	// mutations go through the validating bind path
	r.Post("/create", phttp.JSONHandler(h.create))
	r.Post("/update", phttp.JSONHandler(h.update))
	r.Post("/delete", phttp.JSONHandler(h.del))
	r.Post("/export", h.export)
}

type handlers struct{ svc svc.Service }

// @Summary Page through customers
// @Tags Customers
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Page selection"
// @Success 200 {object} domain.Page "ok"
// @Router /customers/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// @Summary Search customers
// @Tags Customers
// @Accept json
// @Produce json
// @Param payload body domain.SearchInput true "Query"
// @Success 200 {object} domain.Page "ok"
// @Router /customers/search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Search(r.Context(), in)
}

// @Summary Filter customers by column values
// @Tags Customers
// @Accept json
// @Produce json
// @Param payload body domain.FilterInput true "Filters"
// @Success 200 {object} domain.Page "ok"
// @Router /customers/filter [post]
func (h *handlers) filter(r *stdhttp.Request, in domain.FilterInput) (any, error) {
	return h.svc.Filter(r.Context(), in)
}

// @Summary Fetch one customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param payload body domain.GetInput true "ID"
// @Success 200 {object} domain.Customer "ok"
// @Router /customers/get [post]
func (h *handlers) get(r *stdhttp.Request, in domain.GetInput) (any, error) {
	return h.svc.Get(r.Context(), in)
}

// @Summary Create a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Customer"
// @Success 200 {object} domain.Customer "ok"
// @Router /customers/create [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.svc.Create(r.Context(), in)
}

// @Summary Update a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param payload body domain.UpdateInput true "Customer"
// @Success 200 {object} domain.Customer "ok"
// @Router /customers/update [post]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.Update(r.Context(), in)
}

// @Summary Delete a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param payload body domain.DeleteInput true "ID"
// @Success 200 {object} map[string]bool "ok"
// @Router /customers/delete [post]
func (h *handlers) del(r *stdhttp.Request, in domain.DeleteInput) (any, error) {
	if err := h.svc.Delete(r.Context(), in); err != nil {
		return nil, err
	}
	return map[string]bool{"deleted": true}, nil
}

// export streams the selection as a csv or xlsx attachment
// @Summary Export customers as a file
// @Tags Customers
// @Accept json
// @Produce application/octet-stream
// @Param payload body domain.ExportInput true "Selection"
// @Success 200 {file} file "ok"
// @Router /customers/export [post]
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
		Name:    "customers",
		Headers: []string{"ID", "Name", "Email", "Phone", "City", "Status", "Created"},
	}
	for _, c := range rows {
		sheet.Rows = append(sheet.Rows, []string{c.ID, c.Name, c.Email, c.Phone, c.City, c.Status.String(), c.CreatedAt})
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "customers"+format.Ext()))
	if err := exportkit.Write(w, format, sheet); err != nil {
		// headers are gone; nothing useful to send beyond logging upstream
		return
	}
}
