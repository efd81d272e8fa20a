// Copyright 2024 Daniel Erat.
// All rights reserved.

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/derat/spellfix/spell"

	"golang.org/x/time/rate"
)

func newTestServer() *server {
	return &server{
		vocab:    spell.NewVocabulary([]string{"strong", "banks", "financial", "iranian", "are"}),
		maxEdits: 2,
		rm:       newRateMap(),
		limiter:  rate.NewLimiter(rate.Inf, 0),
	}
}

func postCorrect(t *testing.T, srv *server, vals url.Values, addr string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/correct", strings.NewReader(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if addr != "" {
		req.RemoteAddr = addr
	}
	rec := httptest.NewRecorder()
	srv.handleCorrect(rec, req)
	return rec
}

func TestHandleCorrect(t *testing.T) {
	srv := newTestServer()
	rec := postCorrect(t, srv, url.Values{"text": {"Iranin financal banks are strongss"}}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %v; want %v", rec.Code, http.StatusOK)
	}
	var res correction
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal("Failed decoding response: ", err)
	}
	if want := "iranian financial banks are strong"; res.Corrected != want {
		t.Errorf("corrected = %q; want %q", res.Corrected, want)
	}
	if len(res.Misspellings) != 3 {
		t.Errorf("got %d misspellings; want 3", len(res.Misspellings))
	}
}

func TestHandleCorrect_HTML(t *testing.T) {
	srv := newTestServer()
	rec := postCorrect(t, srv, url.Values{
		"text": {"<p>strongss <b>banks</b></p>"},
		"html": {"1"},
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %v; want %v", rec.Code, http.StatusOK)
	}
	var res correction
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal("Failed decoding response: ", err)
	}
	if want := "strong banks"; res.Corrected != want {
		t.Errorf("corrected = %q; want %q", res.Corrected, want)
	}
}

func TestHandleCorrect_BadMethod(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/correct", nil)
	rec := httptest.NewRecorder()
	srv.handleCorrect(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("got status %v; want %v", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandleCorrect_RateLimited(t *testing.T) {
	srv := newTestServer()
	vals := url.Values{"text": {"banks"}}
	if rec := postCorrect(t, srv, vals, "192.0.2.9:1234"); rec.Code != http.StatusOK {
		t.Fatalf("first request got status %v; want %v", rec.Code, http.StatusOK)
	}
	if rec := postCorrect(t, srv, vals, "192.0.2.9:5678"); rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request got status %v; want %v", rec.Code, http.StatusTooManyRequests)
	}
}

func TestHandleForm(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.handleForm(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %v; want %v", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "<form") {
		t.Error("form page doesn't contain a form")
	}

	req = httptest.NewRequest(http.MethodGet, "/bogus", nil)
	rec = httptest.NewRecorder()
	srv.handleForm(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("got status %v for unknown path; want %v", rec.Code, http.StatusNotFound)
	}
}
