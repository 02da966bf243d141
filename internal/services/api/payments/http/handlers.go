// Package http provides http transport for payments
package http

import (
	"fmt"
	stdhttp "net/http"

	"golang.org/x/text/language"

	"salesops/internal/exportkit"
	"salesops/internal/modkit/httpkit"
	phttp "salesops/internal/platform/net/http"
	"salesops/internal/platform/net/http/bind"
	"salesops/internal/services/api/payments/domain"
	svc "salesops/internal/services/api/payments/service"
)

// Register mounts payment endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.SearchInput](r, "/search", h.search)
	httpkit.PostJSON[domain.FilterInput](r, "/filter", h.filter)
	httpkit.PostJSON[domain.GetInput](r, "/get", h.get)
	httpkit.PostJSON[domain.FilterInput](r, "/summary", h.summary)
	r.Post("/export", h.export)
}

type handlers struct{ svc svc.Service }

// @Summary Page through payments
// @Tags Payments
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Page selection"
// @Success 200 {object} domain.Page "ok"
// @Router /payments/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// @Summary Search payments
// @Tags Payments
// @Accept json
// @Produce json
// @Param payload body domain.SearchInput true "Query"
// @Success 200 {object} domain.Page "ok"
// @Router /payments/search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Search(r.Context(), in)
}

// @Summary Filter payments by column values
// @Tags Payments
// @Accept json
// @Produce json
// @Param payload body domain.FilterInput true "Filters"
// @Success 200 {object} domain.Page "ok"
// @Router /payments/filter [post]
func (h *handlers) filter(r *stdhttp.Request, in domain.FilterInput) (any, error) {
	return h.svc.Filter(r.Context(), in)
}

// @Summary Fetch one payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param payload body domain.GetInput true "ID"
// @Success 200 {object} domain.Payment "ok"
// @Router /payments/get [post]
func (h *handlers) get(r *stdhttp.Request, in domain.GetInput) (any, error) {
	return h.svc.Get(r.Context(), in)
}

// @Summary Aggregate the filtered selection
// @Tags Payments
// @Accept json
// @Produce json
// @Param payload body domain.FilterInput true "Filters"
// @Success 200 {object} domain.Summary "ok"
// @Router /payments/summary [post]
func (h *handlers) summary(r *stdhttp.Request, in domain.FilterInput) (any, error) {
	return h.svc.Summarize(r.Context(), in)
}

// export streams the selection as a csv or xlsx attachment with
// locale-formatted amounts
// @Summary Export payments as a file
// @Tags Payments
// @Accept json
// @Produce application/octet-stream
// @Param payload body domain.ExportInput true "Selection"
// @Success 200 {file} file "ok"
// @Router /payments/export [post]
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
		Name:    "payments",
		Headers: []string{"ID", "Reference", "Amount", "Currency", "Status", "Paid", "Created"},
	}
	for _, p := range rows {
		sheet.Rows = append(sheet.Rows, []string{
			p.ID, p.Reference, exportkit.Amount(p.Amount, language.English), p.Currency, p.Status.String(), p.PaidAt, p.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "payments"+format.Ext()))
	_ = exportkit.Write(w, format, sheet)
}
