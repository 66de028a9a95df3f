package circuit

import (
	"testing"

	"github.com/jaskrrish/Go-QLab/internal/circuit/quantum"
	"github.com/stretchr/testify/assert"
)

const qasmHeader = "OPENQASM 2.0;\ninclude \"qelib1.inc\";\n\n"

func TestExportQASM(t *testing.T) {
	t.Run("Empty circuit", func(t *testing.T) {
		c := NewCircuit(2, nil)
		assert.Equal(t, qasmHeader+"qreg q[2];\ncreg c[2];\n", ExportQASM(c))
	})

	t.Run("Placement order across lanes", func(t *testing.T) {
		c := NewCircuit(2, nil)
		c.PlaceGate("q1", quantum.GateX)
		c.PlaceGate("q0", quantum.GateH)
		c.PlaceGate("q0", quantum.GateCNOT)
		c.PlaceGate("q1", quantum.GateSWAP)
		c.PlaceGate("q0", quantum.GateM)
		c.PlaceGate("q1", quantum.GateM)

		expected := qasmHeader +
			"qreg q[2];\ncreg c[2];\n\n" +
			"x q[1];\n" +
			"h q[0];\n" +
			"cx q[0],q[1];\n" +
			"swap q[1],q[0];\n" +
			"measure q[0] -> c[0];\n" +
			"measure q[1] -> c[1];\n"
		assert.Equal(t, expected, ExportQASM(c))
	})

	t.Run("Two-qubit gate on a single lane", func(t *testing.T) {
		c := NewCircuit(1, nil)
		c.PlaceGate("q0", quantum.GateCNOT)
		c.PlaceGate("q0", quantum.GateT)

		expected := qasmHeader +
			"qreg q[1];\ncreg c[1];\n\n" +
			"// cx q[0] skipped: needs two qubits\n" +
			"t q[0];\n"
		assert.Equal(t, expected, ExportQASM(c))
	})
}

func TestFingerprint(t *testing.T) {
	a := NewCircuit(2, &CounterTokens{})
	b := NewCircuit(2, NewNanoTokens())

	for _, c := range []*Circuit{a, b} {
		c.PlaceGate("q0", quantum.GateH)
		c.PlaceGate("q1", quantum.GateM)
	}

	fp := Fingerprint(a)
	assert.Len(t, fp, 64)
	assert.Equal(t, fp, Fingerprint(b), "gate ids do not affect the fingerprint")

	a.PlaceGate("q1", quantum.GateX)
	assert.NotEqual(t, fp, Fingerprint(a))
}
