package handlers

import (
	"net/http"

	"github.com/carlinegarage/invoicing/internal/httpx"
	"github.com/carlinegarage/invoicing/internal/models"
	"github.com/carlinegarage/invoicing/internal/render"
	"github.com/carlinegarage/invoicing/internal/services"
)

// RenderHandler serves fully resolved view models: invoice plus settings
// plus every derived style and financial figure, ready for a renderer.
type RenderHandler struct {
	Settings *services.SettingsService
	Drafts   *services.DraftService
	Finance  *services.FinanceService
}

func NewRenderHandler(settings *services.SettingsService, drafts *services.DraftService, finance *services.FinanceService) *RenderHandler {
	return &RenderHandler{Settings: settings, Drafts: drafts, Finance: finance}
}

// Render: GET /render?bill_no=<n> – the view model for a stored draft.
func (h *RenderHandler) Render(w http.ResponseWriter, r *http.Request) {
	billNo := r.URL.Query().Get("bill_no")
	if billNo == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_bill_no", nil)
		return
	}
	inv, err := h.Drafts.GetDraft(billNo)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "load_failed", nil)
		return
	}
	if inv == nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	vm := render.BuildViewModel(*inv, h.Settings.Load(), h.Finance)
	httpx.JSON(w, http.StatusOK, vm)
}

// Sample: GET /render/sample – the view model for the preview invoice,
// used by the template customizer.
func (h *RenderHandler) Sample(w http.ResponseWriter, r *http.Request) {
	vm := render.BuildViewModel(models.SampleInvoice(), h.Settings.Load(), h.Finance)
	httpx.JSON(w, http.StatusOK, vm)
}

// ExportMeta: GET /export/meta?bill_no=<n> – file name and page size for
// an export without building the full view model.
func (h *RenderHandler) ExportMeta(w http.ResponseWriter, r *http.Request) {
	billNo := r.URL.Query().Get("bill_no")
	if billNo == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_bill_no", nil)
		return
	}
	inv, err := h.Drafts.GetDraft(billNo)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "load_failed", nil)
		return
	}
	if inv == nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	s := h.Settings.Load()
	httpx.JSON(w, http.StatusOK, map[string]string{
		"fileName": render.ExportFileName(s.BusinessName, inv.BillNumber),
		"pageSize": render.PageSizeFor(len(inv.LineItems)),
	})
}
