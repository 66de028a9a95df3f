package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionCreateRequestValidate(t *testing.T) {
	tests := []struct {
		name     string
		qubits   int
		max      int
		expected int
		err      error
	}{
		{"Default applied", 0, 8, 2, nil},
		{"Explicit", 4, 8, 4, nil},
		{"At max", 8, 8, 8, nil},
		{"Above max", 9, 8, 9, ErrInvalidQubitCount},
		{"Negative", -1, 8, -1, ErrInvalidQubitCount},
		{"Unbounded", 64, 0, 64, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &SessionCreateRequest{Qubits: tt.qubits}
			err := req.Validate(2, tt.max)
			assert.Equal(t, tt.err, err)
			assert.Equal(t, tt.expected, req.Qubits)
		})
	}
}

func TestPlaceGateRequestValidate(t *testing.T) {
	req := &PlaceGateRequest{LaneID: "  q1 "}
	assert.NoError(t, req.Validate())
	assert.Equal(t, "q1", req.LaneID)

	req = &PlaceGateRequest{LaneID: "   "}
	assert.Equal(t, ErrInvalidLaneID, req.Validate())
}

func TestSetViewRequestValidate(t *testing.T) {
	assert.NoError(t, (&SetViewRequest{View: ViewBuilder}).Validate())
	assert.NoError(t, (&SetViewRequest{View: ViewResults}).Validate())
	assert.Equal(t, ErrInvalidView, (&SetViewRequest{View: "graph"}).Validate())
}

func TestCircuitError(t *testing.T) {
	assert.Equal(t, "session not found", ErrSessionNotFound.Error())
}
