package quantum

import (
	"strings"

	"github.com/pkg/errors"
)

// GateKind identifies one of the gates a learner can place on a qubit lane.
// The zero value means no gate is selected.
type GateKind int

const (
	GateNone GateKind = iota
	GateH
	GateX
	GateY
	GateZ
	GateS
	GateT
	GateCNOT
	GateSWAP
	GateM
)

// Gate holds the catalog metadata for a gate kind
type Gate struct {
	Kind         GateKind `json:"-"`
	Symbol       string   `json:"name"`
	Label        string   `json:"label"`
	Description  string   `json:"description"`
	IsMultiQubit bool     `json:"is_multi_qubit,omitempty"`
	// QASM is the OpenQASM 2.0 mnemonic used when exporting circuits
	QASM string `json:"qasm"`
}

// ErrUnknownGate is returned when a kind or symbol is not in the catalog
var ErrUnknownGate = errors.New("unknown gate")

// catalog lists every gate in display order. Indexed by GateKind-1.
var catalog = [...]Gate{
	{Kind: GateH, Symbol: "H", Label: "Hadamard", Description: "Creates superposition", QASM: "h"},
	{Kind: GateX, Symbol: "X", Label: "Pauli-X", Description: "Bit flip (NOT gate)", QASM: "x"},
	{Kind: GateY, Symbol: "Y", Label: "Pauli-Y", Description: "Bit and phase flip", QASM: "y"},
	{Kind: GateZ, Symbol: "Z", Label: "Pauli-Z", Description: "Phase flip", QASM: "z"},
	{Kind: GateS, Symbol: "S", Label: "S Gate", Description: "π/4 phase rotation", QASM: "s"},
	{Kind: GateT, Symbol: "T", Label: "T Gate", Description: "π/8 phase rotation", QASM: "t"},
	{Kind: GateCNOT, Symbol: "CNOT", Label: "CNOT", Description: "Controlled-NOT gate", IsMultiQubit: true, QASM: "cx"},
	{Kind: GateSWAP, Symbol: "SWAP", Label: "SWAP", Description: "Swaps two qubits", IsMultiQubit: true, QASM: "swap"},
	{Kind: GateM, Symbol: "M", Label: "Measure", Description: "Measurement operation", QASM: "measure"},
}

// Valid reports whether k is one of the nine catalog gates
func (k GateKind) Valid() bool {
	return k >= GateH && k <= GateM
}

func (k GateKind) String() string {
	if !k.Valid() {
		return "Unknown"
	}
	return catalog[k-1].Symbol
}

// Lookup returns the catalog entry for a gate kind
func Lookup(kind GateKind) (Gate, error) {
	if !kind.Valid() {
		return Gate{}, errors.Wrapf(ErrUnknownGate, "kind %d", int(kind))
	}
	return catalog[kind-1], nil
}

// ParseGateKind maps a catalog key such as "H" or "CNOT" to its kind.
// Matching ignores case and surrounding whitespace.
func ParseGateKind(symbol string) (GateKind, error) {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	for _, g := range catalog {
		if g.Symbol == s {
			return g.Kind, nil
		}
	}
	return GateNone, errors.Wrapf(ErrUnknownGate, "symbol %q", symbol)
}

// Catalog returns a copy of all gates in display order
func Catalog() []Gate {
	gates := make([]Gate, len(catalog))
	copy(gates, catalog[:])
	return gates
}

// MarshalText encodes the kind as its catalog key; GateNone encodes as "".
func (k GateKind) MarshalText() ([]byte, error) {
	if k == GateNone {
		return []byte{}, nil
	}
	if !k.Valid() {
		return nil, errors.Wrapf(ErrUnknownGate, "kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a catalog key; an empty string decodes to GateNone.
func (k *GateKind) UnmarshalText(text []byte) error {
	if len(strings.TrimSpace(string(text))) == 0 {
		*k = GateNone
		return nil
	}
	kind, err := ParseGateKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
