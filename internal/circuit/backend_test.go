package circuit

import (
	"testing"

	"github.com/jaskrrish/Go-QLab/internal/circuit/quantum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed draws and counts how often it was asked
type scriptedSource struct {
	draws []int
	calls int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.draws[s.calls%len(s.draws)] % n
	s.calls++
	return v
}

func TestClassifyRun(t *testing.T) {
	assert.Equal(t, RunNoMeasurement, ClassifyRun(build(t, "H,X")))
	assert.Equal(t, RunProbabilistic, ClassifyRun(build(t, "H", "M")))
	assert.Equal(t, RunDeterministic, ClassifyRun(build(t, "X,M")))
}

func TestSimulatorBackend(t *testing.T) {
	backend := NewSimulatorBackend(nil)
	assert.Equal(t, "CircuitSimulator", backend.Name())
	assert.True(t, backend.IsSimulator())
}

// TestRunNoMeasurement tests the sentinel path
func TestRunNoMeasurement(t *testing.T) {
	src := &scriptedSource{draws: []int{1}}
	backend := NewSimulatorBackend(src)

	for _, c := range []*Circuit{build(t, ""), build(t, "H", "X"), build(t, "X,Y,Z")} {
		outcomes := backend.Run(c)
		require.Len(t, outcomes, 1)
		assert.Equal(t, quantum.NoMeasurement, outcomes[0])
	}
	assert.Zero(t, src.calls, "sentinel path draws no randomness")
}

// TestRunDeterministic tests parity outcomes without Hadamard
func TestRunDeterministic(t *testing.T) {
	tests := []struct {
		name     string
		lanes    []string
		expected quantum.Outcome
	}{
		{"Measure only", []string{"M"}, "0"},
		{"X then M", []string{"X,M"}, "1"},
		{"Double X", []string{"X,X,M"}, "0"},
		{"Measure on one lane only", []string{"X", "M"}, "10"},
		{"Other gates ignored", []string{"Y,Z,M", "X,CNOT,SWAP"}, "01"},
	}

	src := &scriptedSource{draws: []int{1}}
	backend := NewSimulatorBackend(src)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcomes := backend.Run(build(t, tt.lanes...))
			require.Len(t, outcomes, 1)
			assert.Equal(t, tt.expected, outcomes[0])
		})
	}
	assert.Zero(t, src.calls)
}

// TestRunProbabilistic tests sampling with Hadamard lanes
func TestRunProbabilistic(t *testing.T) {
	t.Run("Ten outcomes of lane width", func(t *testing.T) {
		backend := NewSimulatorBackend(quantum.NewSeededSource(3))
		outcomes := backend.Run(build(t, "H,M", "", ""))
		require.Len(t, outcomes, SampleShots)
		for _, o := range outcomes {
			bits, ok := o.Bits()
			require.True(t, ok)
			require.Len(t, bits, 3)
			assert.Equal(t, quantum.Zero, bits[1])
			assert.Equal(t, quantum.Zero, bits[2])
		}
	})

	t.Run("Draws per H lane in lane order", func(t *testing.T) {
		src := &scriptedSource{draws: []int{0, 1}}
		backend := NewSimulatorBackend(src)
		outcomes := backend.Run(build(t, "H", "X", "H,M"))

		require.Len(t, outcomes, SampleShots)
		assert.Equal(t, 2*SampleShots, src.calls)
		for _, o := range outcomes {
			assert.Equal(t, quantum.Outcome("011"), o)
		}
	})

	t.Run("Non H lanes use X parity", func(t *testing.T) {
		src := &scriptedSource{draws: []int{1, 0}}
		backend := NewSimulatorBackend(src)
		outcomes := backend.Run(build(t, "X,X,M", "H", "X,Z"))

		expected := []quantum.Outcome{"011", "001"}
		for i, o := range outcomes {
			assert.Equal(t, expected[i%2], o)
		}
	})

	t.Run("Both bits appear", func(t *testing.T) {
		backend := NewSimulatorBackend(&scriptedSource{draws: []int{0, 0, 1, 1, 0}})
		seen := map[quantum.Outcome]bool{}
		for _, o := range backend.Run(build(t, "H,M")) {
			seen[o] = true
		}
		assert.True(t, seen["0"])
		assert.True(t, seen["1"])
	})
}

// TestWorkedExamples runs the reference circuits end to end
func TestWorkedExamples(t *testing.T) {
	backend := NewSimulatorBackend(quantum.NewSeededSource(17))

	t.Run("H and X with measurement", func(t *testing.T) {
		c := build(t, "H", "X,M")
		assert.Equal(t, "|00⟩ + |01⟩ + |10⟩ + |11⟩", c.State())

		outcomes := backend.Run(c)
		require.Len(t, outcomes, 10)
		for _, o := range outcomes {
			require.Len(t, string(o), 2)
			assert.Contains(t, []byte{'0', '1'}, o[0])
			assert.Equal(t, byte('1'), o[1])
		}
	})

	t.Run("Double X measured", func(t *testing.T) {
		c := build(t, "X,X,M")
		assert.Equal(t, "|0⟩", c.State())
		assert.Equal(t, []quantum.Outcome{"0"}, backend.Run(c))
		assert.Equal(t, backend.Run(c), backend.Run(c), "deterministic runs repeat")
	})

	t.Run("Empty lanes", func(t *testing.T) {
		c := build(t, "", "")
		assert.Equal(t, []quantum.Outcome{quantum.NoMeasurement}, backend.Run(c))
	})
}
