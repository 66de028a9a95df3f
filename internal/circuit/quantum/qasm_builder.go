package quantum

import (
	"fmt"
	"strings"
)

// QASMBuilder builds OpenQASM 2.0 programs
type QASMBuilder struct {
	version     string
	includeStmt string
	registers   []string
	body        []string
}

// NewQASMBuilder creates a new OpenQASM circuit builder
func NewQASMBuilder(numQubits int, numClassical int) *QASMBuilder {
	builder := &QASMBuilder{
		version:     "OPENQASM 2.0;",
		includeStmt: "include \"qelib1.inc\";",
		registers:   make([]string, 0, 2),
		body:        make([]string, 0),
	}

	builder.registers = append(builder.registers,
		fmt.Sprintf("qreg q[%d];", numQubits),
		fmt.Sprintf("creg c[%d];", numClassical),
	)

	return builder
}

// AddGate adds a single-qubit gate, e.g. AddGate("h", 0) -> "h q[0];"
func (b *QASMBuilder) AddGate(mnemonic string, qubit int) {
	b.body = append(b.body, fmt.Sprintf("%s q[%d];", mnemonic, qubit))
}

// AddTwoQubitGate adds a gate acting on two qubits, e.g. "cx q[0],q[1];"
func (b *QASMBuilder) AddTwoQubitGate(mnemonic string, first, second int) {
	b.body = append(b.body, fmt.Sprintf("%s q[%d],q[%d];", mnemonic, first, second))
}

// AddMeasurement adds a measurement operation
func (b *QASMBuilder) AddMeasurement(qubit int, classical int) {
	b.body = append(b.body, fmt.Sprintf("measure q[%d] -> c[%d];", qubit, classical))
}

// AddComment adds a line comment
func (b *QASMBuilder) AddComment(text string) {
	b.body = append(b.body, "// "+text)
}

// Build generates the complete QASM program
func (b *QASMBuilder) Build() string {
	var program strings.Builder

	program.WriteString(b.version + "\n")
	program.WriteString(b.includeStmt + "\n")
	program.WriteString("\n")

	for _, reg := range b.registers {
		program.WriteString(reg + "\n")
	}

	if len(b.body) > 0 {
		program.WriteString("\n")
		for _, line := range b.body {
			program.WriteString(line + "\n")
		}
	}

	return program.String()
}
