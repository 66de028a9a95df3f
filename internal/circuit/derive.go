package circuit

import (
	"fmt"
	"strings"

	"github.com/jaskrrish/Go-QLab/internal/circuit/quantum"
)

// maxSuperpositionTerms caps how many basis states a superposition label lists
const maxSuperpositionTerms = 4

// Derive returns the ket label for a circuit.
//
// This is a teaching approximation, not a state-vector computation. Without
// any Hadamard the label is the per-lane X-gate parity, e.g. |01⟩. A single
// Hadamard anywhere switches the whole label to an equal-weight listing of
// the first basis states, truncated with " + ..." past four terms.
func Derive(c *Circuit) string {
	return deriveLanes(c.lanes)
}

func deriveLanes(lanes []QubitLane) string {
	if anyLaneHas(lanes, quantum.GateH) {
		return superpositionLabel(len(lanes))
	}
	return quantum.Ket(string(parityOutcome(lanes)))
}

func superpositionLabel(numQubits int) string {
	// 2^n > 4 exactly when n > 2; avoids shifting past 63 bits
	terms := maxSuperpositionTerms
	truncated := numQubits > 2
	if !truncated {
		terms = 1 << numQubits
	}

	kets := make([]string, 0, terms)
	for i := 0; i < terms; i++ {
		kets = append(kets, quantum.Ket(fmt.Sprintf("%0*b", numQubits, i)))
	}

	label := strings.Join(kets, " + ")
	if truncated {
		label += " + ..."
	}
	return label
}

// parityOutcome sets each lane's bit from the parity of its X gates. Other
// gate kinds, including CNOT and SWAP, have no effect.
func parityOutcome(lanes []QubitLane) quantum.Outcome {
	bits := make([]quantum.Bit, len(lanes))
	for i, l := range lanes {
		bits[i] = quantum.ParityBit(l.Count(quantum.GateX))
	}
	return quantum.OutcomeFromBits(bits)
}

func anyLaneHas(lanes []QubitLane, kind quantum.GateKind) bool {
	for _, l := range lanes {
		if l.Has(kind) {
			return true
		}
	}
	return false
}
