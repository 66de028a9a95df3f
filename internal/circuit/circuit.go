package circuit

import (
	"fmt"

	"github.com/jaskrrish/Go-QLab/internal/circuit/quantum"
)

// GateInstance is one placed occurrence of a gate on a lane. Instances are
// never modified; reordering is remove plus re-place.
type GateInstance struct {
	ID     string           `json:"id"`
	Kind   quantum.GateKind `json:"gate"`
	LaneID string           `json:"lane_id"`
	// Order is the circuit-wide placement sequence number
	Order uint64 `json:"order"`
}

// QubitLane holds the ordered gates applied to one qubit
type QubitLane struct {
	ID    string         `json:"id"`
	Gates []GateInstance `json:"gates"`
}

// Count returns how many gates of kind sit on the lane
func (l QubitLane) Count(kind quantum.GateKind) int {
	n := 0
	for _, g := range l.Gates {
		if g.Kind == kind {
			n++
		}
	}
	return n
}

// Has reports whether at least one gate of kind sits on the lane
func (l QubitLane) Has(kind quantum.GateKind) bool {
	for _, g := range l.Gates {
		if g.Kind == kind {
			return true
		}
	}
	return false
}

// Circuit is an ordered set of qubit lanes. Lane order is display order and
// bit position. There is always at least one lane.
//
// Every mutation recomputes the derived state label, so State never lags the
// lanes. A Circuit is not safe for concurrent use.
type Circuit struct {
	lanes  []QubitLane
	tokens TokenSource
	order  uint64
	state  string
}

// NewCircuit creates a circuit with numQubits empty lanes (at least one).
// A nil token source defaults to a counter.
func NewCircuit(numQubits int, tokens TokenSource) *Circuit {
	if numQubits < 1 {
		numQubits = 1
	}
	if tokens == nil {
		tokens = &CounterTokens{}
	}

	c := &Circuit{
		lanes:  make([]QubitLane, 0, numQubits),
		tokens: tokens,
	}
	for i := 0; i < numQubits; i++ {
		c.lanes = append(c.lanes, QubitLane{ID: laneID(i), Gates: []GateInstance{}})
	}
	c.changed()

	return c
}

func laneID(index int) string {
	return fmt.Sprintf("q%d", index)
}

// NumQubits returns the lane count
func (c *Circuit) NumQubits() int {
	return len(c.lanes)
}

// State returns the ket label for the current lanes
func (c *Circuit) State() string {
	return c.state
}

// Lanes returns a deep copy of the lanes for rendering
func (c *Circuit) Lanes() []QubitLane {
	out := make([]QubitLane, len(c.lanes))
	for i, l := range c.lanes {
		gates := make([]GateInstance, len(l.Gates))
		copy(gates, l.Gates)
		out[i] = QubitLane{ID: l.ID, Gates: gates}
	}
	return out
}

// Lane returns a copy of the lane with the given id
func (c *Circuit) Lane(id string) (QubitLane, bool) {
	idx := c.laneIndex(id)
	if idx < 0 {
		return QubitLane{}, false
	}
	return c.Lanes()[idx], true
}

// HasGate reports whether any lane holds a gate of kind
func (c *Circuit) HasGate(kind quantum.GateKind) bool {
	return anyLaneHas(c.lanes, kind)
}

// GateCount returns the number of placed gates across all lanes
func (c *Circuit) GateCount() int {
	n := 0
	for _, l := range c.lanes {
		n += len(l.Gates)
	}
	return n
}

// AddLane appends an empty lane and returns its id
func (c *Circuit) AddLane() string {
	id := laneID(len(c.lanes))
	c.lanes = append(c.lanes, QubitLane{ID: id, Gates: []GateInstance{}})
	c.changed()
	return id
}

// RemoveLane drops the last lane together with its gates. It does nothing
// when only one lane is left.
func (c *Circuit) RemoveLane() bool {
	if len(c.lanes) <= 1 {
		return false
	}
	c.lanes = c.lanes[:len(c.lanes)-1]
	c.changed()
	return true
}

// PlaceGate appends a new instance of kind to the lane. It does nothing when
// the lane is unknown or kind is not a catalog gate (including GateNone).
func (c *Circuit) PlaceGate(laneID string, kind quantum.GateKind) (GateInstance, bool) {
	if !kind.Valid() {
		return GateInstance{}, false
	}
	idx := c.laneIndex(laneID)
	if idx < 0 {
		return GateInstance{}, false
	}

	c.order++
	g := GateInstance{
		ID:     fmt.Sprintf("%s-%s-%s", kind, laneID, c.tokens.NextToken()),
		Kind:   kind,
		LaneID: laneID,
		Order:  c.order,
	}
	c.lanes[idx].Gates = append(c.lanes[idx].Gates, g)
	c.changed()

	return g, true
}

// RemoveGate removes the instance from the lane if present
func (c *Circuit) RemoveGate(laneID, gateID string) bool {
	idx := c.laneIndex(laneID)
	if idx < 0 {
		return false
	}

	gates := c.lanes[idx].Gates
	for i, g := range gates {
		if g.ID == gateID {
			c.lanes[idx].Gates = append(gates[:i:i], gates[i+1:]...)
			c.changed()
			return true
		}
	}

	return false
}

// Reset clears every lane's gates, keeping lane count and ids
func (c *Circuit) Reset() {
	for i := range c.lanes {
		c.lanes[i].Gates = []GateInstance{}
	}
	c.changed()
}

func (c *Circuit) laneIndex(id string) int {
	for i, l := range c.lanes {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (c *Circuit) changed() {
	c.state = Derive(c)
}
