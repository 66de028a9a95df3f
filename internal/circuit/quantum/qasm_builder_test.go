package quantum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestQASMBuilder tests OpenQASM program generation
func TestQASMBuilder(t *testing.T) {
	t.Run("Empty program", func(t *testing.T) {
		b := NewQASMBuilder(2, 2)
		expected := "OPENQASM 2.0;\n" +
			"include \"qelib1.inc\";\n" +
			"\n" +
			"qreg q[2];\n" +
			"creg c[2];\n"
		assert.Equal(t, expected, b.Build())
	})

	t.Run("Gates and measurement", func(t *testing.T) {
		b := NewQASMBuilder(2, 2)
		b.AddGate("h", 0)
		b.AddTwoQubitGate("cx", 0, 1)
		b.AddComment("done")
		b.AddMeasurement(1, 1)

		expected := "OPENQASM 2.0;\n" +
			"include \"qelib1.inc\";\n" +
			"\n" +
			"qreg q[2];\n" +
			"creg c[2];\n" +
			"\n" +
			"h q[0];\n" +
			"cx q[0],q[1];\n" +
			"// done\n" +
			"measure q[1] -> c[1];\n"
		assert.Equal(t, expected, b.Build())
	})
}
