package quantum

import (
	"strings"
)

// Bit represents a classical bit (0 or 1)
type Bit int

const (
	Zero Bit = 0
	One  Bit = 1
)

func (b Bit) String() string {
	if b == One {
		return "1"
	}
	return "0"
}

// Outcome is one measurement result: a bitstring with one character per
// lane, or the NoMeasurement sentinel.
type Outcome string

// NoMeasurement is returned in place of a bitstring when a circuit has no
// measurement gate. It is not a valid measurement and must be special-cased.
const NoMeasurement Outcome = "No measurement gates in circuit"

// IsSentinel reports whether o is the no-measurement placeholder
func (o Outcome) IsSentinel() bool {
	return o == NoMeasurement
}

// Bits decodes the outcome into bits. ok is false for the sentinel or any
// string containing characters other than '0' and '1'.
func (o Outcome) Bits() (bits []Bit, ok bool) {
	if o.IsSentinel() {
		return nil, false
	}
	bits = make([]Bit, len(o))
	for i := 0; i < len(o); i++ {
		switch o[i] {
		case '0':
			bits[i] = Zero
		case '1':
			bits[i] = One
		default:
			return nil, false
		}
	}
	return bits, true
}

// OutcomeFromBits concatenates bits in lane order
func OutcomeFromBits(bits []Bit) Outcome {
	var sb strings.Builder
	sb.Grow(len(bits))
	for _, b := range bits {
		sb.WriteString(b.String())
	}
	return Outcome(sb.String())
}

// ParityBit returns One when count is odd
func ParityBit(count int) Bit {
	return Bit(count % 2)
}

// Ket wraps a bitstring in ket notation: "01" -> "|01⟩"
func Ket(bitstring string) string {
	return "|" + bitstring + "⟩"
}
