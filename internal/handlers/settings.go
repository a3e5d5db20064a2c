// Package handlers exposes the template settings, preset and draft
// operations over JSON.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carlinegarage/invoicing/internal/httpx"
	"github.com/carlinegarage/invoicing/internal/models"
	"github.com/carlinegarage/invoicing/internal/services"
	"github.com/carlinegarage/invoicing/internal/templates"
)

type SettingsHandler struct {
	Svc *services.SettingsService
}

func NewSettingsHandler(svc *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{Svc: svc}
}

// Get: GET /settings – the current settings, defaults included.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.Svc.Load())
}

// Put: PUT /settings – replace the full settings object.
func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	// decode onto the current state so a partial body behaves like the
	// stored blob: absent keys keep their current value.
	settings := h.Svc.Load()
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	saved, err := h.Svc.Save(settings)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

// Reset: POST /settings/reset – back to the defaults.
func (h *SettingsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	saved, err := h.Svc.Save(models.DefaultSettings())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

// ListPresets: GET /presets – the full catalog in display order.
func (h *SettingsHandler) ListPresets(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{"presets": templates.Catalog})
}

// ApplyPreset: POST /presets/apply?id=<preset> – merge a preset into the
// current settings and persist the result.
func (h *SettingsHandler) ApplyPreset(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_preset_id", nil)
		return
	}
	saved, err := h.Svc.ApplyPreset(id)
	if err != nil {
		if errors.Is(err, services.ErrUnknownPreset) {
			httpx.JSONError(w, http.StatusNotFound, "unknown_preset", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}
