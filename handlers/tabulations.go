// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/quickly-count/auth"
	"github.com/danielhkuo/quickly-count/ballotparse"
	"github.com/danielhkuo/quickly-count/cliparse"
	"github.com/danielhkuo/quickly-count/metrics"
	"github.com/danielhkuo/quickly-count/middleware"
	"github.com/danielhkuo/quickly-count/models"
	"github.com/danielhkuo/quickly-count/report"
	"github.com/danielhkuo/quickly-count/stv"
)

type TabulationHandler struct {
	db      *sql.DB
	cfg     cliparse.Config
	metrics metrics.Collector
}

// NewTabulationHandler returns a handler recording to collector, or to
// nothing when collector is nil.
func NewTabulationHandler(db *sql.DB, cfg cliparse.Config, collector metrics.Collector) *TabulationHandler {
	if collector == nil {
		collector = metrics.Nop{}
	}
	return &TabulationHandler{db: db, cfg: cfg, metrics: collector}
}

// CreateTabulation handles POST /tabulations
// Parses the ballots, runs the count and stores the outcome, including
// failed counts with the rounds logged before the failure.
func (h *TabulationHandler) CreateTabulation(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTabulationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Seats < 1 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "seats must be at least 1")
		return
	}
	if strings.TrimSpace(req.Ballots) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "ballots are required")
		return
	}

	election, err := ballotparse.Read(strings.NewReader(req.Ballots), req.Candidates)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	count, err := stv.NewCount(election.Candidates, election.Ballots, req.Seats,
		stv.WithMaxRounds(h.cfg.MaxRounds))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	res, countErr := count.Run()
	h.metrics.RecordTabulation(res, countErr)

	tabulationID := auth.GenerateID()
	tabulation := newTabulation(tabulationID, req, count, res, countErr, time.Now())

	// Begin transaction
	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	if err := insertTabulation(tx, h.cfg.DatabaseType, tabulation); err != nil {
		slog.Error("failed to store tabulation", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save tabulation")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save tabulation")
		return
	}

	if countErr != nil {
		slog.Warn("tabulation failed", "tabulation_id", tabulationID, "rounds", tabulation.RoundCount, "error", countErr)
	} else {
		slog.Info("tabulation complete", "tabulation_id", tabulationID, "rounds", tabulation.RoundCount, "winners", tabulation.Winners)
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateTabulationResponse{
		TabulationID: tabulationID,
		AdminKey:     auth.GenerateAdminKey(tabulationID, h.cfg.AdminKeySalt),
		Tabulation:   tabulation,
	})
}

// ListTabulations handles GET /tabulations
// Newest first.
func (h *TabulationHandler) ListTabulations(w http.ResponseWriter, r *http.Request) {
	summaries, err := listTabulations(h.db, h.cfg.DatabaseType)
	if err != nil {
		slog.Error("failed to list tabulations", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListTabulationsResponse{
		Tabulations: summaries,
	})
}

// GetTabulation handles GET /tabulations/:id
func (h *TabulationHandler) GetTabulation(w http.ResponseWriter, r *http.Request) {
	tabulation, ok := h.lookup(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, tabulation)
}

// GetReport handles GET /tabulations/:id/report
// Returns the plain text report, the same one count mode prints.
func (h *TabulationHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	tabulation, ok := h.lookup(w, r)
	if !ok {
		return
	}

	res := stv.Result{
		Winners: tabulation.Winners,
		Quota:   tabulation.Quota,
		Ballots: tabulation.BallotCount,
		Log:     stv.NewRoundLog(tabulation.Rounds),
	}
	var countErr error
	if tabulation.Error != nil {
		countErr = errors.New(*tabulation.Error)
	}

	var buf bytes.Buffer
	summary := report.Summary{
		Title:   tabulation.Title,
		Ballots: tabulation.BallotCount,
		Seats:   tabulation.Seats,
	}
	if err := report.Write(&buf, summary, res, countErr); err != nil {
		slog.Error("failed to render report", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render report")
		return
	}

	middleware.TextResponse(w, http.StatusOK, buf.String())
}

// DeleteTabulation handles DELETE /tabulations/:id
// Requires the X-Admin-Key returned on creation.
func (h *TabulationHandler) DeleteTabulation(w http.ResponseWriter, r *http.Request) {
	tabulationID := r.PathValue("id")
	if err := auth.ValidateID(tabulationID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid tabulation ID")
		return
	}

	// Validate admin key
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(tabulationID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	deleted, err := deleteTabulation(tx, h.cfg.DatabaseType, tabulationID)
	if err != nil {
		slog.Error("failed to delete tabulation", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete tabulation")
		return
	}
	if !deleted {
		middleware.ErrorResponse(w, http.StatusNotFound, "Tabulation not found")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete tabulation")
		return
	}

	slog.Info("tabulation deleted", "tabulation_id", tabulationID)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteTabulationResponse{
		TabulationID: tabulationID,
		Message:      "Tabulation deleted",
	})
}

// lookup loads the tabulation named by the id path value, writing the error
// response itself when it cannot.
func (h *TabulationHandler) lookup(w http.ResponseWriter, r *http.Request) (models.Tabulation, bool) {
	tabulationID := r.PathValue("id")
	if err := auth.ValidateID(tabulationID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid tabulation ID")
		return models.Tabulation{}, false
	}

	tabulation, err := loadTabulation(h.db, h.cfg.DatabaseType, tabulationID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Tabulation not found")
		return models.Tabulation{}, false
	}
	if err != nil {
		slog.Error("failed to query tabulation", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return models.Tabulation{}, false
	}

	return tabulation, true
}

func newTabulation(id string, req models.CreateTabulationRequest, count *stv.Count, res stv.Result, countErr error, createdAt time.Time) models.Tabulation {
	t := models.Tabulation{
		TabulationSummary: models.TabulationSummary{
			ID:          id,
			Title:       req.Title,
			Seats:       req.Seats,
			Quota:       res.Quota,
			BallotCount: res.Ballots,
			RoundCount:  res.Log.Len(),
			Status:      models.StatusComplete,
			CreatedAt:   createdAt.UTC(),
		},
		Method:     models.MethodSTV,
		Candidates: []models.Candidate{},
		Winners:    append([]string{}, res.Winners...),
		Rounds:     res.Rounds(),
	}

	if countErr != nil {
		msg := countErr.Error()
		t.Status = models.StatusFailed
		t.Error = &msg
	}

	for i, c := range count.Candidates() {
		t.Candidates = append(t.Candidates, models.Candidate{
			Position: i + 1,
			Name:     c.Name(),
			Status:   c.Status().String(),
		})
	}

	return t
}
