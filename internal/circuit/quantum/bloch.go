package quantum

import (
	"math"
	"math/cmplx"
)

// BlochPoint is a single-qubit state on the Bloch sphere
type BlochPoint struct {
	Theta float64 `json:"theta"`
	Phi   float64 `json:"phi"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	// Alpha and Beta are the amplitudes of |0⟩ and |1⟩
	Alpha complex128 `json:"-"`
	Beta  complex128 `json:"-"`
}

// BlochPreset names a well-known single-qubit state
type BlochPreset struct {
	Name  string  `json:"name"`
	Theta float64 `json:"theta"`
	Phi   float64 `json:"phi"`
}

var blochPresets = []BlochPreset{
	{Name: "|0⟩", Theta: 0, Phi: 0},
	{Name: "|1⟩", Theta: math.Pi, Phi: 0},
	{Name: "|+⟩", Theta: math.Pi / 2, Phi: 0},
	{Name: "|-⟩", Theta: math.Pi / 2, Phi: math.Pi},
	{Name: "|+i⟩", Theta: math.Pi / 2, Phi: math.Pi / 2},
	{Name: "|-i⟩", Theta: math.Pi / 2, Phi: 3 * math.Pi / 2},
}

// NewBlochPoint converts spherical angles (radians) to a point and its amplitudes
func NewBlochPoint(theta, phi float64) BlochPoint {
	return BlochPoint{
		Theta: theta,
		Phi:   phi,
		X:     math.Sin(theta) * math.Cos(phi),
		Y:     math.Sin(theta) * math.Sin(phi),
		Z:     math.Cos(theta),
		Alpha: complex(math.Cos(theta/2), 0),
		Beta:  cmplx.Exp(complex(0, phi)) * complex(math.Sin(theta/2), 0),
	}
}

// BlochPresets returns the named basis states
func BlochPresets() []BlochPreset {
	presets := make([]BlochPreset, len(blochPresets))
	copy(presets, blochPresets)
	return presets
}

// FindBlochPreset looks a preset up by name
func FindBlochPreset(name string) (BlochPreset, bool) {
	for _, p := range blochPresets {
		if p.Name == name {
			return p, true
		}
	}
	return BlochPreset{}, false
}
