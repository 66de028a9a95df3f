package quantum

// AlgorithmStep is one stage of an algorithm walkthrough
type AlgorithmStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Algorithm is a named, step-by-step walkthrough
type Algorithm struct {
	Key         string          `json:"key"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Steps       []AlgorithmStep `json:"steps"`
}

var algorithms = []Algorithm{
	{
		Key:         "deutsch-jozsa",
		Name:        "Deutsch-Jozsa Algorithm",
		Description: "Determines whether a function is constant or balanced with a single query.",
		Steps: []AlgorithmStep{
			{"Initialize Qubits", "Start with n+1 qubits in the |0⟩ state, where n is the input size."},
			{"Apply Hadamard Gates", "Apply Hadamard gates to all qubits to create superposition."},
			{"Apply Oracle Function", "Apply the oracle function that encodes whether f is constant or balanced."},
			{"Apply Hadamard Gates Again", "Apply Hadamard gates to the input qubits again."},
			{"Measure Result", "Measure the input qubits. If all are |0⟩, the function is constant; otherwise, it is balanced."},
		},
	},
	{
		Key:         "grovers",
		Name:        "Grover's Search Algorithm",
		Description: "Finds an element in an unsorted database with quadratic speedup.",
		Steps: []AlgorithmStep{
			{"Initialize Qubits", "Start with n qubits in the |0⟩ state, where n is the number of qubits needed to represent the search space."},
			{"Apply Hadamard Gates", "Apply Hadamard gates to all qubits to create an equal superposition of all possible states."},
			{"Apply Oracle", "Apply the oracle function that marks the target state by flipping its sign."},
			{"Apply Diffusion Operator", "Apply the diffusion operator to amplify the amplitude of the marked state."},
			{"Repeat Oracle and Diffusion", "Repeat the oracle and diffusion steps approximately √N times, where N is the size of the search space."},
			{"Measure Result", "Measure all qubits to obtain the index of the target element with high probability."},
		},
	},
	{
		Key:         "shors",
		Name:        "Shor's Factoring Algorithm",
		Description: "Efficiently factors large integers, breaking RSA encryption.",
		Steps: []AlgorithmStep{
			{"Problem Setup", "To factor N, find the period of f(x) = a^x mod N for some random a."},
			{"Initialize Quantum Registers", "Initialize an x register with n qubits and an f(x) register with m qubits."},
			{"Create Superposition", "Apply Hadamard gates to the x register to create a superposition of all possible x values."},
			{"Apply Modular Exponentiation", "Compute f(x) = a^x mod N into the f(x) register."},
			{"Apply Quantum Fourier Transform", "Apply the Quantum Fourier Transform to the x register to find the period of f(x)."},
		},
	},
}

// Algorithms returns the built-in walkthroughs
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// FindAlgorithm looks a walkthrough up by key
func FindAlgorithm(key string) (Algorithm, bool) {
	for _, a := range algorithms {
		if a.Key == key {
			return a, true
		}
	}
	return Algorithm{}, false
}
