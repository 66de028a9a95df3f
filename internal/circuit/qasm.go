package circuit

import (
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/jaskrrish/Go-QLab/internal/circuit/quantum"
	"golang.org/x/crypto/sha3"
)

type placedGate struct {
	GateInstance
	lane int
}

// ExportQASM renders the circuit as an OpenQASM 2.0 program. Gates are emitted
// in placement order. CNOT and SWAP pair a lane with the next lane (wrapping);
// on a single-lane circuit they are emitted as comments.
func ExportQASM(c *Circuit) string {
	n := len(c.lanes)
	builder := quantum.NewQASMBuilder(n, n)

	placed := make([]placedGate, 0, c.GateCount())
	for i, l := range c.lanes {
		for _, g := range l.Gates {
			placed = append(placed, placedGate{GateInstance: g, lane: i})
		}
	}
	sort.Slice(placed, func(a, b int) bool {
		return placed[a].Order < placed[b].Order
	})

	for _, p := range placed {
		gate, err := quantum.Lookup(p.Kind)
		if err != nil {
			continue
		}

		switch {
		case p.Kind == quantum.GateM:
			builder.AddMeasurement(p.lane, p.lane)
		case gate.IsMultiQubit && n < 2:
			builder.AddComment(fmt.Sprintf("%s q[%d] skipped: needs two qubits", gate.QASM, p.lane))
		case gate.IsMultiQubit:
			builder.AddTwoQubitGate(gate.QASM, p.lane, (p.lane+1)%n)
		default:
			builder.AddGate(gate.QASM, p.lane)
		}
	}

	return builder.Build()
}

// Fingerprint returns a SHA3-256 digest of the circuit's QASM form. Two
// circuits with the same gates in the same placement order share a
// fingerprint regardless of gate ids.
func Fingerprint(c *Circuit) string {
	sum := sha3.Sum256([]byte(ExportQASM(c)))
	return hex.EncodeToString(sum[:])
}
