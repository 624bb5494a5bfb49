package server

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agbru/binomcalc/internal/binomial"
	"github.com/agbru/binomcalc/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	evaluator, err := binomial.NewEvaluator(binomial.DefaultOptions())
	if err != nil {
		t.Fatalf("Failed to build evaluator: %v", err)
	}
	cfg := config.AppConfig{Port: "8080"}
	return NewServer(evaluator, cfg)
}

func doRequest(t *testing.T, s *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/health")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("Expected healthy status, got %v", body["status"])
	}
}

func TestHandleEvaluate(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/evaluate?x=1&y=8&alpha=0.3333333333333333&info=true")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if math.Abs(resp.Real-2.080083823051904) > 1e-9 || resp.Imag != 0 {
		t.Errorf("Unexpected result: real=%v imag=%v", resp.Real, resp.Imag)
	}
	if !resp.Converged {
		t.Errorf("Expected a converged result: %+v", resp)
	}
	if resp.Diagnostics == nil {
		t.Fatal("Expected the diagnostics block with info=true")
	}
	if resp.Diagnostics.Path != "series" || resp.Diagnostics.TermsUsed == 0 {
		t.Errorf("Unexpected diagnostics: %+v", resp.Diagnostics)
	}
}

func TestHandleEvaluateOmitsDiagnosticsByDefault(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/evaluate?x=1&y=8&alpha=0.5")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if resp.Diagnostics != nil {
		t.Errorf("Expected no diagnostics block without info: %+v", resp.Diagnostics)
	}
	if strings.Contains(rec.Body.String(), "terms_used") {
		t.Errorf("Diagnostics fields leaked into the default response: %s", rec.Body.String())
	}
}

func TestHandleEvaluateComplexOperands(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/evaluate?x=2%2B3i&y=-1i&alpha=0.5")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	// sqrt(2+2i) with principal branch has positive real and imaginary parts.
	if resp.Real <= 0 || resp.Imag <= 0 {
		t.Errorf("Unexpected principal square root: %+v", resp)
	}
}

func TestHandleEvaluateValidation(t *testing.T) {
	s := newTestServer(t)
	cases := []struct {
		name   string
		target string
	}{
		{"missing x", "/evaluate?y=8&alpha=0.5"},
		{"missing alpha", "/evaluate?x=1&y=8"},
		{"malformed x", "/evaluate?x=banana&y=8&alpha=0.5"},
		{"malformed alpha", "/evaluate?x=1&y=8&alpha=1%2B2j"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, s, http.MethodGet, tc.target)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleEvaluatePole(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/evaluate?x=3&y=-3&alpha=-1")

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected status 422, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if resp.Message == "" {
		t.Error("Expected an explanatory message in the error response")
	}
}

func TestHandleEvaluateMethodNotAllowed(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodPost, "/evaluate?x=1&y=8&alpha=0.5")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", rec.Code)
	}
}

func TestHandleMetrics(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/metrics")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "binomcalc_requests_total") {
		t.Error("Expected request counter in metrics output")
	}
}
