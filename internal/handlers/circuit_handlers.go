package handlers

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	circuitcore "github.com/jaskrrish/Go-QLab/internal/circuit"
	"github.com/jaskrrish/Go-QLab/internal/circuit/quantum"
	models "github.com/jaskrrish/Go-QLab/internal/models/circuit"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CircuitHandler manages circuit lab HTTP requests
type CircuitHandler struct {
	sessionManager *circuitcore.SessionManager
	logger         *zap.Logger
}

// NewCircuitHandler creates a new circuit handler
func NewCircuitHandler(sessionManager *circuitcore.SessionManager, logger *zap.Logger) *CircuitHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CircuitHandler{
		sessionManager: sessionManager,
		logger:         logger.With(zap.String("component", "circuit_handler")),
	}
}

// Register mounts the circuit routes under /api/v1/circuit
func (h *CircuitHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/circuit/health", h.HealthCheckHandler)
	mux.HandleFunc("GET /api/v1/circuit/gates", h.GatesHandler)
	mux.HandleFunc("GET /api/v1/circuit/bloch", h.BlochHandler)
	mux.HandleFunc("GET /api/v1/circuit/bloch/presets", h.BlochPresetsHandler)
	mux.HandleFunc("GET /api/v1/circuit/algorithms", h.AlgorithmsHandler)
	mux.HandleFunc("GET /api/v1/circuit/algorithms/{key}", h.AlgorithmHandler)

	mux.HandleFunc("POST /api/v1/circuit/sessions", h.CreateSessionHandler)
	mux.HandleFunc("GET /api/v1/circuit/sessions/{id}", h.GetSessionHandler)
	mux.HandleFunc("DELETE /api/v1/circuit/sessions/{id}", h.DeleteSessionHandler)
	mux.HandleFunc("POST /api/v1/circuit/sessions/{id}/qubits", h.AddQubitHandler)
	mux.HandleFunc("DELETE /api/v1/circuit/sessions/{id}/qubits", h.RemoveQubitHandler)
	mux.HandleFunc("POST /api/v1/circuit/sessions/{id}/select", h.SelectGateHandler)
	mux.HandleFunc("POST /api/v1/circuit/sessions/{id}/gates", h.PlaceGateHandler)
	mux.HandleFunc("DELETE /api/v1/circuit/sessions/{id}/gates/{lane}/{gate}", h.RemoveGateHandler)
	mux.HandleFunc("POST /api/v1/circuit/sessions/{id}/reset", h.ResetHandler)
	mux.HandleFunc("POST /api/v1/circuit/sessions/{id}/run", h.RunHandler)
	mux.HandleFunc("POST /api/v1/circuit/sessions/{id}/view", h.SetViewHandler)
	mux.HandleFunc("GET /api/v1/circuit/sessions/{id}/qasm", h.QASMHandler)
}

// CreateSessionHandler handles POST /api/v1/circuit/sessions
// An empty body opens a session with the default lane count
func (h *CircuitHandler) CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req models.SessionCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.sessionManager.CreateSession(&req)
	if err != nil {
		h.respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, models.SessionResponse{Session: session})
}

// GetSessionHandler handles GET /api/v1/circuit/sessions/{id}
func (h *CircuitHandler) GetSessionHandler(w http.ResponseWriter, r *http.Request) {
	h.sessionAction(w, r, h.sessionManager.GetSession)
}

// DeleteSessionHandler handles DELETE /api/v1/circuit/sessions/{id}
func (h *CircuitHandler) DeleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	if err := h.sessionManager.DeleteSession(sessionID); err != nil {
		h.respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Session deleted",
	})
}

// AddQubitHandler handles POST /api/v1/circuit/sessions/{id}/qubits
func (h *CircuitHandler) AddQubitHandler(w http.ResponseWriter, r *http.Request) {
	h.sessionAction(w, r, h.sessionManager.AddQubit)
}

// RemoveQubitHandler handles DELETE /api/v1/circuit/sessions/{id}/qubits
func (h *CircuitHandler) RemoveQubitHandler(w http.ResponseWriter, r *http.Request) {
	h.sessionAction(w, r, h.sessionManager.RemoveQubit)
}

// SelectGateHandler handles POST /api/v1/circuit/sessions/{id}/select
func (h *CircuitHandler) SelectGateHandler(w http.ResponseWriter, r *http.Request) {
	var req models.SelectGateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.sessionAction(w, r, func(id uuid.UUID) (*models.SessionView, error) {
		return h.sessionManager.SelectGate(id, req.Gate)
	})
}

// PlaceGateHandler handles POST /api/v1/circuit/sessions/{id}/gates
func (h *CircuitHandler) PlaceGateHandler(w http.ResponseWriter, r *http.Request) {
	var req models.PlaceGateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.sessionAction(w, r, func(id uuid.UUID) (*models.SessionView, error) {
		return h.sessionManager.PlaceGate(id, req.LaneID, req.Gate)
	})
}

// RemoveGateHandler handles DELETE /api/v1/circuit/sessions/{id}/gates/{lane}/{gate}
func (h *CircuitHandler) RemoveGateHandler(w http.ResponseWriter, r *http.Request) {
	laneID := r.PathValue("lane")
	gateID := r.PathValue("gate")

	h.sessionAction(w, r, func(id uuid.UUID) (*models.SessionView, error) {
		return h.sessionManager.RemoveGate(id, laneID, gateID)
	})
}

// ResetHandler handles POST /api/v1/circuit/sessions/{id}/reset
func (h *CircuitHandler) ResetHandler(w http.ResponseWriter, r *http.Request) {
	h.sessionAction(w, r, h.sessionManager.Reset)
}

// RunHandler handles POST /api/v1/circuit/sessions/{id}/run
func (h *CircuitHandler) RunHandler(w http.ResponseWriter, r *http.Request) {
	h.sessionAction(w, r, h.sessionManager.Run)
}

// SetViewHandler handles POST /api/v1/circuit/sessions/{id}/view
func (h *CircuitHandler) SetViewHandler(w http.ResponseWriter, r *http.Request) {
	var req models.SetViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.sessionAction(w, r, func(id uuid.UUID) (*models.SessionView, error) {
		return h.sessionManager.SetView(id, req.View)
	})
}

// QASMHandler handles GET /api/v1/circuit/sessions/{id}/qasm
// Returns the circuit as OpenQASM 2.0 with the circuit fingerprint as ETag
func (h *CircuitHandler) QASMHandler(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	qasm, fingerprint, err := h.sessionManager.ExportQASM(sessionID)
	if err != nil {
		h.respondWithDomainError(w, err)
		return
	}

	etag := strconv.Quote(fingerprint)
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(qasm))
}

// GatesHandler handles GET /api/v1/circuit/gates
func (h *CircuitHandler) GatesHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"gates": quantum.Catalog(),
	})
}

// BlochHandler handles GET /api/v1/circuit/bloch?theta=&phi=
// Angles are in radians; a preset query parameter may be used instead
func (h *CircuitHandler) BlochHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if name := q.Get("preset"); name != "" {
		preset, found := quantum.FindBlochPreset(name)
		if !found {
			respondWithError(w, http.StatusNotFound, "Unknown preset")
			return
		}
		respondWithJSON(w, http.StatusOK, newBlochResponse(quantum.NewBlochPoint(preset.Theta, preset.Phi)))
		return
	}

	theta, err := parseAngle(q.Get("theta"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid theta")
		return
	}
	phi, err := parseAngle(q.Get("phi"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid phi")
		return
	}

	respondWithJSON(w, http.StatusOK, newBlochResponse(quantum.NewBlochPoint(theta, phi)))
}

// BlochPresetsHandler handles GET /api/v1/circuit/bloch/presets
func (h *CircuitHandler) BlochPresetsHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"presets": quantum.BlochPresets(),
	})
}

// AlgorithmsHandler handles GET /api/v1/circuit/algorithms
func (h *CircuitHandler) AlgorithmsHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"algorithms": quantum.Algorithms(),
	})
}

// AlgorithmHandler handles GET /api/v1/circuit/algorithms/{key}
func (h *CircuitHandler) AlgorithmHandler(w http.ResponseWriter, r *http.Request) {
	algorithm, found := quantum.FindAlgorithm(r.PathValue("key"))
	if !found {
		respondWithError(w, http.StatusNotFound, "Unknown algorithm")
		return
	}

	respondWithJSON(w, http.StatusOK, algorithm)
}

// HealthCheckHandler handles GET /api/v1/circuit/health
func (h *CircuitHandler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	health := map[string]interface{}{
		"status":   "healthy",
		"service":  "Quantum Circuit Lab",
		"version":  "1.0.0",
		"backend":  h.sessionManager.Backend().Name(),
		"sessions": h.sessionManager.SessionCount(),
	}

	respondWithJSON(w, http.StatusOK, health)
}

// sessionAction parses the session id and responds with the session snapshot
// returned by action
func (h *CircuitHandler) sessionAction(w http.ResponseWriter, r *http.Request, action func(uuid.UUID) (*models.SessionView, error)) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	session, err := action(sessionID)
	if err != nil {
		h.respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, models.SessionResponse{Session: session})
}

// respondWithDomainError maps session manager errors to status codes
func (h *CircuitHandler) respondWithDomainError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrSessionNotFound):
		statusCode = http.StatusNotFound
	case errors.Is(err, models.ErrSessionExpired):
		statusCode = http.StatusGone
	case errors.Is(err, models.ErrInvalidQubitCount),
		errors.Is(err, models.ErrInvalidLaneID),
		errors.Is(err, models.ErrInvalidView),
		errors.Is(err, quantum.ErrUnknownGate):
		statusCode = http.StatusBadRequest
	}

	if statusCode == http.StatusInternalServerError {
		h.logger.Error("circuit request failed", zap.Error(err))
	}

	respondWithError(w, statusCode, err.Error())
}

func parseSessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, models.ErrInvalidSessionID.Error())
		return uuid.Nil, false
	}
	return sessionID, true
}

// parseAngle reads a radian angle; an empty value is 0. NaN and infinities
// are rejected since the resulting point cannot be encoded.
func parseAngle(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Errorf("angle %q is not finite", s)
	}
	return v, nil
}

type blochResponse struct {
	quantum.BlochPoint
	Alpha     string `json:"alpha"`
	Beta      string `json:"beta"`
	StateText string `json:"state"`
}

func newBlochResponse(p quantum.BlochPoint) blochResponse {
	alpha := formatComplex(p.Alpha)
	beta := formatComplex(p.Beta)
	return blochResponse{
		BlochPoint: p,
		Alpha:      alpha,
		Beta:       beta,
		StateText:  alpha + "|0⟩ + " + beta + "|1⟩",
	}
}

// formatComplex prints amplitudes with four decimals, collapsing values
// within 1e-4 of 0 or ±1 and dropping a negligible imaginary part
func formatComplex(c complex128) string {
	re := formatReal(real(c))
	im := imag(c)
	if abs(im) < 0.0001 {
		return re
	}
	sign := "+"
	if im < 0 {
		sign = "-"
	}
	return "(" + re + sign + formatReal(abs(im)) + "i)"
}

func formatReal(x float64) string {
	switch {
	case abs(x) < 0.0001:
		return "0"
	case abs(abs(x)-1) < 0.0001:
		if x < 0 {
			return "-1"
		}
		return "1"
	}
	return strconv.FormatFloat(x, 'f', 4, 64)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
