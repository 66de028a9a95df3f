package circuit

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jaskrrish/Go-QLab/internal/circuit/quantum"
	"github.com/jaskrrish/Go-QLab/internal/circuit/results"
)

// View is the screen a session is currently showing
type View string

const (
	ViewBuilder View = "builder"
	ViewResults View = "results"
)

// Valid reports whether v is a known view
func (v View) Valid() bool {
	return v == ViewBuilder || v == ViewResults
}

// GateView is a placed gate as rendered to clients
type GateView struct {
	ID    string `json:"id"`
	Gate  string `json:"gate"`
	Order uint64 `json:"order"`
}

// LaneView is a qubit lane as rendered to clients
type LaneView struct {
	ID    string     `json:"id"`
	Gates []GateView `json:"gates"`
}

// ResultsView holds the outcome of the most recent run
type ResultsView struct {
	Outcomes []quantum.Outcome `json:"outcomes"`
	// Measured is false when the run produced the no-measurement sentinel
	Measured    bool                    `json:"measured"`
	Mode        string                  `json:"mode"`
	Frequencies *results.FrequencyTable `json:"frequencies,omitempty"`
	RanAt       time.Time               `json:"ran_at"`
}

// SessionView is a snapshot of a circuit lab session
type SessionView struct {
	SessionID    uuid.UUID    `json:"session_id"`
	Qubits       []LaneView   `json:"qubits"`
	State        string       `json:"state"`
	SelectedGate string       `json:"selected_gate,omitempty"`
	ActiveView   View         `json:"active_view"`
	Results      *ResultsView `json:"results,omitempty"`
	Fingerprint  string       `json:"fingerprint"`
	CreatedAt    time.Time    `json:"created_at"`
	ExpiresAt    time.Time    `json:"expires_at"`
}

// SessionCreateRequest represents a request to open a new circuit session
type SessionCreateRequest struct {
	Qubits int `json:"qubits,omitempty"`
}

// SelectGateRequest selects (or, with an empty gate, clears) the active gate
type SelectGateRequest struct {
	Gate quantum.GateKind `json:"gate"`
}

// PlaceGateRequest places a gate on a lane. An empty gate uses the
// session's selected gate.
type PlaceGateRequest struct {
	LaneID string           `json:"lane_id"`
	Gate   quantum.GateKind `json:"gate,omitempty"`
}

// SetViewRequest switches the session between builder and results
type SetViewRequest struct {
	View View `json:"view"`
}

// SessionResponse represents the response when creating or querying a session
type SessionResponse struct {
	Session *SessionView `json:"session"`
	Error   string       `json:"error,omitempty"`
}

// Validate validates a session create request, filling in the default qubit
// count. maxQubits of zero means no upper bound.
func (r *SessionCreateRequest) Validate(defaultQubits, maxQubits int) error {
	if r.Qubits == 0 {
		r.Qubits = defaultQubits
	}

	if r.Qubits < 1 || (maxQubits > 0 && r.Qubits > maxQubits) {
		return ErrInvalidQubitCount
	}

	return nil
}

// Validate validates a place gate request
func (r *PlaceGateRequest) Validate() error {
	r.LaneID = strings.TrimSpace(r.LaneID)
	if r.LaneID == "" {
		return ErrInvalidLaneID
	}

	return nil
}

// Validate validates a set view request
func (r *SetViewRequest) Validate() error {
	if !r.View.Valid() {
		return ErrInvalidView
	}

	return nil
}

// Custom errors
type CircuitError struct {
	Message string
}

func (e *CircuitError) Error() string {
	return e.Message
}

var (
	ErrInvalidSessionID  = &CircuitError{"invalid session ID"}
	ErrInvalidQubitCount = &CircuitError{"qubit count out of range"}
	ErrInvalidLaneID     = &CircuitError{"lane ID is required"}
	ErrInvalidView       = &CircuitError{"view must be builder or results"}
	ErrSessionNotFound   = &CircuitError{"session not found"}
	ErrSessionExpired    = &CircuitError{"session has expired"}
)
