// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Count API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	reg := prometheus.NewRegistry()
	mux := router.NewRouter(db, cfg, reg)

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Tabulations:

	POST   /tabulations             - Run and store a count
	GET    /tabulations             - List stored counts
	GET    /tabulations/{id}        - Full count with rounds
	GET    /tabulations/{id}/report - Plain text report
	DELETE /tabulations/{id}        - Remove (requires X-Admin-Key)

Tabulation routes are wrapped in middleware.WithLogging.
*/
package router
