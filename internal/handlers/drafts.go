package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/carlinegarage/invoicing/internal/httpx"
	"github.com/carlinegarage/invoicing/internal/models"
	"github.com/carlinegarage/invoicing/internal/services"
)

type DraftHandler struct {
	Svc *services.DraftService
}

func NewDraftHandler(svc *services.DraftService) *DraftHandler {
	return &DraftHandler{Svc: svc}
}

// List: GET /drafts – all drafts keyed by bill number.
func (h *DraftHandler) List(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{"drafts": h.Svc.ListDrafts()})
}

// Save: POST /drafts – store a draft. A missing bill number gets one
// generated; the normalized, stored record is echoed back.
func (h *DraftHandler) Save(w http.ResponseWriter, r *http.Request) {
	var inv models.InvoiceRecord
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if inv.BillNumber == "" {
		inv.BillNumber = models.NewBillNumber()
	}
	inv.Normalize()
	inv.IsDraft = true
	if err := h.Svc.SaveDraft(inv); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, inv)
}

// Get: GET /drafts/get?bill_no=<n>
func (h *DraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	billNo := r.URL.Query().Get("bill_no")
	if billNo == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_bill_no", nil)
		return
	}
	inv, err := h.Svc.GetDraft(billNo)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "load_failed", nil)
		return
	}
	if inv == nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, inv)
}

// Delete: POST /drafts/delete?bill_no=<n> – idempotent.
func (h *DraftHandler) Delete(w http.ResponseWriter, r *http.Request) {
	billNo := r.URL.Query().Get("bill_no")
	if billNo == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_bill_no", nil)
		return
	}
	if err := h.Svc.DeleteDraft(billNo); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "delete_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
