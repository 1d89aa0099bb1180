// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/quickly-count/models"
	"github.com/danielhkuo/quickly-count/testutil"
)

// TestConcurrentCreates verifies that tabulations created in parallel are
// each stored once with their own children
func TestConcurrentCreates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewTabulationHandler(db, cfg, nil)

	const numRequests = 10
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/tabulations", models.CreateTabulationRequest{
				Title:   "Concurrent",
				Seats:   1,
				Ballots: testutil.SampleBallots,
			}, nil)
			w := httptest.NewRecorder()
			handler.CreateTabulation(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if int(successCount.Load()) != numRequests {
		t.Errorf("Expected %d successful creates, got %d", numRequests, successCount.Load())
	}

	var tabulations, candidates, winners int
	if err := db.QueryRow("SELECT COUNT(*) FROM tabulation").Scan(&tabulations); err != nil {
		t.Fatalf("Failed to count tabulations: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM tabulation_candidate").Scan(&candidates); err != nil {
		t.Fatalf("Failed to count candidates: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM tabulation_winner").Scan(&winners); err != nil {
		t.Fatalf("Failed to count winners: %v", err)
	}

	if tabulations != numRequests {
		t.Errorf("Expected %d tabulations, got %d", numRequests, tabulations)
	}
	if candidates != 3*numRequests {
		t.Errorf("Expected %d candidate rows, got %d", 3*numRequests, candidates)
	}
	if winners != numRequests {
		t.Errorf("Expected %d winner rows, got %d", numRequests, winners)
	}
}

// TestConcurrentReadsAndDelete runs readers against a tabulation while it is
// deleted; readers get a 200 or a 404 and never a database error
func TestConcurrentReadsAndDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewTabulationHandler(db, testutil.GetTestConfig(), nil)
	created := createTabulation(t, handler, models.CreateTabulationRequest{Seats: 1, Ballots: testutil.SampleBallots})
	id := created.TabulationID

	var unexpected atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("GET", "/tabulations/"+id, nil, nil)
			req.SetPathValue("id", id)
			w := httptest.NewRecorder()
			handler.GetTabulation(w, req)

			if w.Code != http.StatusOK && w.Code != http.StatusNotFound {
				unexpected.Add(1)
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()

		req := testutil.MakeRequest("DELETE", "/tabulations/"+id, nil, map[string]string{"X-Admin-Key": created.AdminKey})
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		handler.DeleteTabulation(w, req)

		if w.Code != http.StatusOK {
			unexpected.Add(1)
		}
	}()

	wg.Wait()

	if n := unexpected.Load(); n != 0 {
		t.Errorf("%d requests returned an unexpected status", n)
	}
}
