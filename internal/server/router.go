// Package server wires handlers, middleware and health checks into the
// root http.Handler.
package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/carlinegarage/invoicing/internal/handlers"
	"github.com/carlinegarage/invoicing/internal/httpx"
	"github.com/carlinegarage/invoicing/internal/services"
)

// New constructs the root http.Handler with all routes and middlewares
// applied.
func New(db *gorm.DB, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	settingsSvc := services.NewSettingsService(db, log)
	draftSvc := services.NewDraftService(db, log)
	financeSvc := services.NewFinanceService()

	sh := handlers.NewSettingsHandler(settingsSvc)
	dh := handlers.NewDraftHandler(draftSvc)
	rh := handlers.NewRenderHandler(settingsSvc, draftSvc, financeSvc)

	// --- Health endpoints ---
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		// lightweight DB check; detailed errors stay out of the body
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Settings endpoints
	mux.HandleFunc("/settings", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			sh.Get(w, r)
		case http.MethodPut:
			sh.Put(w, r)
		default:
			w.Header().Set("Allow", "GET,PUT")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		}
	})
	mux.HandleFunc("/settings/reset", requirePost(sh.Reset))

	// Preset endpoints
	mux.HandleFunc("/presets", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", "GET")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
			return
		}
		sh.ListPresets(w, r)
	})
	mux.HandleFunc("/presets/apply", requirePost(sh.ApplyPreset))

	// Draft endpoints
	mux.HandleFunc("/drafts", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			dh.List(w, r)
		case http.MethodPost:
			dh.Save(w, r)
		default:
			w.Header().Set("Allow", "GET,POST")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		}
	})
	mux.HandleFunc("/drafts/get", dh.Get)
	mux.HandleFunc("/drafts/delete", requirePost(dh.Delete))

	// Render endpoints
	mux.HandleFunc("/render", rh.Render)
	mux.HandleFunc("/render/sample", rh.Sample)
	mux.HandleFunc("/export/meta", rh.ExportMeta)

	return withRecover(withLogging(mux, log))
}

func requirePost(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", "POST")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
			return
		}
		next(w, r)
	}
}

func withLogging(next http.Handler, log *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
