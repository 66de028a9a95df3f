package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jaskrrish/Go-QLab/internal/circuit"
	"github.com/jaskrrish/Go-QLab/internal/circuit/quantum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCircuit(t *testing.T) {
	c, err := buildCircuit([]string{"H, M", "", "x,X,x"})
	require.NoError(t, err)
	assert.Equal(t, 3, c.NumQubits())
	assert.Equal(t, 5, c.GateCount())
	assert.Equal(t, circuit.RunProbabilistic, circuit.ClassifyRun(c))

	c, err = buildCircuit(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, c.NumQubits())
	assert.Equal(t, "|0⟩", c.State())

	_, err = buildCircuit([]string{"H,Q"})
	assert.ErrorContains(t, err, "lane q0")
}

func TestSimulateCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"simulate", "--lane", "X,M", "--lane", "M", "--json", "--qasm"})
	t.Cleanup(func() {
		simLanes, simJSON, simQASM = nil, false, false
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	var sim struct {
		State    string            `json:"state"`
		Mode     string            `json:"mode"`
		Outcomes []quantum.Outcome `json:"outcomes"`
		QASM     string            `json:"qasm"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &sim), out.String())
	assert.Equal(t, "|10⟩", sim.State)
	assert.Equal(t, string(circuit.RunDeterministic), sim.Mode)
	assert.Equal(t, []quantum.Outcome{"10"}, sim.Outcomes)
	assert.Contains(t, sim.QASM, "measure q[1] -> c[1];")
}
