package server

import (
	"encoding/json"
	"math/cmplx"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/agbru/binomcalc/internal/errors"
)

// Response is the JSON document returned by the /evaluate endpoint.
// Diagnostics is present only when the request asked for it (info=true);
// Converged is always reported so that best-effort results are never
// silently mistaken for converged ones.
type Response struct {
	X           string             `json:"x"`
	Y           string             `json:"y"`
	Alpha       string             `json:"alpha"`
	Real        float64            `json:"real"`
	Imag        float64            `json:"imag"`
	Converged   bool               `json:"converged"`
	Duration    string             `json:"duration"`
	Diagnostics *DiagnosticsDetail `json:"diagnostics,omitempty"`
}

// DiagnosticsDetail is the optional diagnostics block of a Response.
type DiagnosticsDetail struct {
	Path         string  `json:"path"`
	TermsUsed    int     `json:"terms_used"`
	UsedFallback bool    `json:"used_fallback"`
	AbsZ         float64 `json:"abs_z"`
}

// ErrorResponse is the standardized error document.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// handleHealth responds to health check requests.
// It returns a 200 OK status with a JSON payload indicating the service is
// healthy.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	response := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	}

	s.writeJSONResponse(w, http.StatusOK, response)
}

// handleEvaluate processes requests to evaluate (x + y)^alpha.
// It parses the query parameters 'x', 'y' and 'alpha' as complex literals,
// runs the evaluation, and returns the result in JSON format; 'info=true'
// adds the diagnostics block. Malformed parameters yield 400; mathematically
// undefined inputs (poles) yield 422.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	x, y, alpha, err := parseEvaluateParams(r)
	if err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	value, diag, err := s.evaluator.Evaluate(x, y, alpha)
	duration := time.Since(start)

	if err != nil {
		if apperrors.IsDomainError(err) {
			s.writeErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
		} else {
			s.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	resp := Response{
		X:         r.URL.Query().Get("x"),
		Y:         r.URL.Query().Get("y"),
		Alpha:     r.URL.Query().Get("alpha"),
		Real:      real(value),
		Imag:      imag(value),
		Converged: diag.Converged,
		Duration:  duration.String(),
	}
	if wantInfo, _ := strconv.ParseBool(r.URL.Query().Get("info")); wantInfo {
		resp.Diagnostics = &DiagnosticsDetail{
			Path:         string(diag.Path),
			TermsUsed:    diag.TermsUsed,
			UsedFallback: diag.UsedFallback,
			AbsZ:         cmplx.Abs(diag.Z),
		}
	}
	s.writeJSONResponse(w, http.StatusOK, resp)
}

// parseEvaluateParams extracts and validates the evaluation parameters from
// the request.
//
// Parameters:
//   - r: The HTTP request containing query parameters.
//
// Returns:
//   - x, y, alpha: The parsed operands.
//   - err: A ValidationError if a parameter is missing or malformed.
func parseEvaluateParams(r *http.Request) (x, y, alpha complex128, err error) {
	parse := func(name string) (complex128, error) {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			return 0, apperrors.NewValidationError(name, "missing parameter", nil)
		}
		c, parseErr := strconv.ParseComplex(raw, 128)
		if parseErr != nil {
			return 0, apperrors.NewValidationError(name, "must be a complex literal such as '2', '3i' or '2+3i'", raw)
		}
		return c, nil
	}

	if x, err = parse("x"); err != nil {
		return 0, 0, 0, err
	}
	if y, err = parse("y"); err != nil {
		return 0, 0, 0, err
	}
	if alpha, err = parse("alpha"); err != nil {
		return 0, 0, 0, err
	}
	return x, y, alpha, nil
}

// writeJSONResponse helper function to write a JSON response with the correct
// content type.
//
// Parameters:
//   - w: The HTTP response writer.
//   - statusCode: The HTTP status code to write.
//   - data: The data to be encoded as JSON.
func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Printf("Error encoding JSON response: %v", err)
	}
}

// writeErrorResponse helper function to write a standardized error response.
//
// Parameters:
//   - w: The HTTP response writer.
//   - statusCode: The HTTP status code to write.
//   - message: The error message to be included in the response body.
func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	errResp := ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	s.writeJSONResponse(w, statusCode, errResp)
}
