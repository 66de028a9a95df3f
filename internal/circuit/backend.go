package circuit

import (
	"github.com/jaskrrish/Go-QLab/internal/circuit/quantum"
)

// SampleShots is the number of outcomes drawn when a circuit is probabilistic
const SampleShots = 10

// RunMode says which measurement path a circuit takes
type RunMode string

const (
	// RunNoMeasurement means no lane holds an M gate; the result is the sentinel
	RunNoMeasurement RunMode = "no_measurement"
	// RunProbabilistic means measurement plus at least one Hadamard
	RunProbabilistic RunMode = "probabilistic"
	// RunDeterministic means measurement and no Hadamard anywhere
	RunDeterministic RunMode = "deterministic"
)

// ClassifyRun decides the measurement path for c
func ClassifyRun(c *Circuit) RunMode {
	switch {
	case !c.HasGate(quantum.GateM):
		return RunNoMeasurement
	case c.HasGate(quantum.GateH):
		return RunProbabilistic
	default:
		return RunDeterministic
	}
}

// Backend runs a circuit and reports measurement outcomes
type Backend interface {
	// Name returns the name of the backend
	Name() string

	// Run measures the circuit. It never fails; circuits without a
	// measurement gate yield the single quantum.NoMeasurement outcome.
	Run(c *Circuit) []quantum.Outcome

	// IsSimulator returns true if this is a simulator, false for real hardware
	IsSimulator() bool
}

// SimulatorBackend samples outcomes from the simplified lane model
type SimulatorBackend struct {
	name   string
	source quantum.RandomSource
	shots  int
}

// NewSimulatorBackend creates a sampler drawing from source. A nil source
// defaults to a time-seeded math/rand source.
func NewSimulatorBackend(source quantum.RandomSource) *SimulatorBackend {
	if source == nil {
		source = quantum.NewMathSource()
	}
	return &SimulatorBackend{
		name:   "CircuitSimulator",
		source: source,
		shots:  SampleShots,
	}
}

// Name returns the name of the simulator backend
func (s *SimulatorBackend) Name() string {
	return s.name
}

// IsSimulator returns true since this is a simulator
func (s *SimulatorBackend) IsSimulator() bool {
	return true
}

// Run measures the circuit.
//
// With a Hadamard present, each of the SampleShots outcomes draws a fresh
// uniform bit for every lane holding an H gate, in lane order; lanes without
// one keep their X-parity bit. Without a Hadamard the single outcome is the
// X-parity bitstring.
func (s *SimulatorBackend) Run(c *Circuit) []quantum.Outcome {
	switch ClassifyRun(c) {
	case RunNoMeasurement:
		return []quantum.Outcome{quantum.NoMeasurement}
	case RunDeterministic:
		return []quantum.Outcome{parityOutcome(c.lanes)}
	}

	outcomes := make([]quantum.Outcome, s.shots)
	bits := make([]quantum.Bit, len(c.lanes))
	for i := range outcomes {
		for j, lane := range c.lanes {
			if lane.Has(quantum.GateH) {
				bits[j] = quantum.RandomBit(s.source)
			} else {
				bits[j] = quantum.ParityBit(lane.Count(quantum.GateX))
			}
		}
		outcomes[i] = quantum.OutcomeFromBits(bits)
	}

	return outcomes
}
