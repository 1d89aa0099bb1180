// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/quickly-count/cliparse"
	"github.com/danielhkuo/quickly-count/handlers"
	"github.com/danielhkuo/quickly-count/metrics"
	"github.com/danielhkuo/quickly-count/middleware"
)

// NewRouter registers count metrics on reg and serves them on /metrics.
// A nil reg gets a fresh registry.
func NewRouter(db *sql.DB, cfg cliparse.Config, reg *prometheus.Registry) *http.ServeMux {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	mux := http.NewServeMux()

	// Initialize handlers
	collector := metrics.NewPrometheus(reg, "")
	tabulationHandler := handlers.NewTabulationHandler(db, cfg, collector)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Metrics
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	// Tabulations
	mux.HandleFunc("POST /tabulations", middleware.WithLogging(tabulationHandler.CreateTabulation))
	mux.HandleFunc("GET /tabulations", middleware.WithLogging(tabulationHandler.ListTabulations))
	mux.HandleFunc("GET /tabulations/{id}", middleware.WithLogging(tabulationHandler.GetTabulation))
	mux.HandleFunc("GET /tabulations/{id}/report", middleware.WithLogging(tabulationHandler.GetReport))
	mux.HandleFunc("DELETE /tabulations/{id}", middleware.WithLogging(tabulationHandler.DeleteTabulation))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-count API v1"))
	})

	return mux
}
