package circuit

import (
	"strings"
	"testing"

	"github.com/jaskrrish/Go-QLab/internal/circuit/quantum"
	"github.com/stretchr/testify/assert"
)

// build places gates lane by lane; lanes[i] lists the symbols for qi
func build(t *testing.T, lanes ...string) *Circuit {
	t.Helper()

	c := NewCircuit(len(lanes), &CounterTokens{})
	for i, gates := range lanes {
		if gates == "" {
			continue
		}
		for _, symbol := range strings.Split(gates, ",") {
			kind, err := quantum.ParseGateKind(symbol)
			if err != nil {
				t.Fatalf("bad gate %q: %v", symbol, err)
			}
			if _, ok := c.PlaceGate(laneID(i), kind); !ok {
				t.Fatalf("could not place %s on %s", symbol, laneID(i))
			}
		}
	}
	return c
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name     string
		lanes    []string
		expected string
	}{
		{"Empty two lanes", []string{"", ""}, "|00⟩"},
		{"Single X", []string{"X", ""}, "|10⟩"},
		{"X twice cancels", []string{"X,X", "X"}, "|01⟩"},
		{"Three X", []string{"X,X,X"}, "|1⟩"},
		{"Other gates ignored", []string{"Y,Z,S,T", "CNOT,SWAP,M"}, "|00⟩"},
		{"H on one lane", []string{"H"}, "|0⟩ + |1⟩"},
		{"H on two lanes", []string{"", "H"}, "|00⟩ + |01⟩ + |10⟩ + |11⟩"},
		{"H overrides X", []string{"X", "H"}, "|00⟩ + |01⟩ + |10⟩ + |11⟩"},
		{"H on three lanes truncates", []string{"H", "", ""}, "|000⟩ + |001⟩ + |010⟩ + |011⟩ + ..."},
		{"H on five lanes", []string{"", "", "", "", "H"}, "|00000⟩ + |00001⟩ + |00010⟩ + |00011⟩ + ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := build(t, tt.lanes...)
			assert.Equal(t, tt.expected, Derive(c))
			assert.Equal(t, tt.expected, c.State())
		})
	}
}

// TestDeriveTracksMutations checks the label follows each edit
func TestDeriveTracksMutations(t *testing.T) {
	c := NewCircuit(2, nil)
	h, _ := c.PlaceGate("q0", quantum.GateH)
	assert.Equal(t, "|00⟩ + |01⟩ + |10⟩ + |11⟩", c.State())

	c.RemoveGate("q0", h.ID)
	assert.Equal(t, "|00⟩", c.State())

	c.PlaceGate("q1", quantum.GateX)
	assert.Equal(t, "|01⟩", c.State())
}
