package circuit

import (
	"testing"

	"github.com/jaskrrish/Go-QLab/internal/circuit/quantum"
	"github.com/jaskrrish/Go-QLab/internal/circuit/results"
)

func benchCircuit(b *testing.B) *Circuit {
	b.Helper()

	c := NewCircuit(8, &CounterTokens{})
	for i := 0; i < 8; i++ {
		c.PlaceGate(laneID(i), quantum.GateX)
		c.PlaceGate(laneID(i), quantum.GateZ)
		c.PlaceGate(laneID(i), quantum.GateM)
	}
	c.PlaceGate("q3", quantum.GateH)
	return c
}

func BenchmarkDerive(b *testing.B) {
	c := benchCircuit(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Derive(c)
	}
}

func BenchmarkRunAndAggregate(b *testing.B) {
	c := benchCircuit(b)
	backend := NewSimulatorBackend(quantum.NewSeededSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		results.Aggregate(backend.Run(c))
	}
}

func BenchmarkFingerprint(b *testing.B) {
	c := benchCircuit(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Fingerprint(c)
	}
}
