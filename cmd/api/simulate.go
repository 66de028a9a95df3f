package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jaskrrish/Go-QLab/internal/circuit"
	"github.com/jaskrrish/Go-QLab/internal/circuit/quantum"
	"github.com/jaskrrish/Go-QLab/internal/circuit/results"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	simLanes []string
	simSeed  int64
	simQASM  bool
	simJSON  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Build a circuit from --lane flags and run it once",
	Long: `Build a circuit locally, print its state label, then run it.

Each --lane flag adds one qubit lane; its value is a comma-separated gate list
applied in order. An empty value adds a lane with no gates.

  qlab simulate --lane H --lane X,M
  qlab simulate --lane X,X,M --seed 7`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringArrayVar(&simLanes, "lane", nil, "gates for one lane, e.g. H,X,M (repeatable)")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "seed for sampling (0 = random)")
	simulateCmd.Flags().BoolVar(&simQASM, "qasm", false, "also print the OpenQASM export")
	simulateCmd.Flags().BoolVar(&simJSON, "json", false, "output as JSON")
}

type simulation struct {
	Qubits   []circuit.QubitLane     `json:"qubits"`
	State    string                  `json:"state"`
	Mode     circuit.RunMode         `json:"mode"`
	Outcomes []quantum.Outcome       `json:"outcomes"`
	Table    *results.FrequencyTable `json:"frequencies"`
	QASM     string                  `json:"qasm,omitempty"`
}

func runSimulate(cmd *cobra.Command, args []string) error {
	c, err := buildCircuit(simLanes)
	if err != nil {
		return err
	}

	source := quantum.NewMathSource()
	if simSeed != 0 {
		source = quantum.NewSeededSource(simSeed)
	}
	backend := circuit.NewSimulatorBackend(source)

	outcomes := backend.Run(c)
	sim := simulation{
		Qubits:   c.Lanes(),
		State:    c.State(),
		Mode:     circuit.ClassifyRun(c),
		Outcomes: outcomes,
		Table:    results.Aggregate(outcomes),
	}
	if simQASM {
		sim.QASM = circuit.ExportQASM(c)
	}

	out := cmd.OutOrStdout()
	if simJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(sim)
	}

	printSimulation(out, sim)
	return nil
}

// buildCircuit turns --lane values into a circuit; no values means one empty lane
func buildCircuit(lanes []string) (*circuit.Circuit, error) {
	c := circuit.NewCircuit(max(len(lanes), 1), &circuit.CounterTokens{})

	for i, gates := range lanes {
		laneID := fmt.Sprintf("q%d", i)
		for _, symbol := range strings.Split(gates, ",") {
			if strings.TrimSpace(symbol) == "" {
				continue
			}
			kind, err := quantum.ParseGateKind(symbol)
			if err != nil {
				return nil, errors.Wrapf(err, "lane %s", laneID)
			}
			c.PlaceGate(laneID, kind)
		}
	}

	return c, nil
}

func printSimulation(w io.Writer, sim simulation) {
	fmt.Fprintln(w, "Circuit:")
	for _, lane := range sim.Qubits {
		symbols := make([]string, len(lane.Gates))
		for i, g := range lane.Gates {
			symbols[i] = g.Kind.String()
		}
		fmt.Fprintf(w, "  %s: %s\n", lane.ID, strings.Join(symbols, " "))
	}
	fmt.Fprintf(w, "State: %s\n", sim.State)

	fmt.Fprintln(w)
	if sim.Table.Single {
		fmt.Fprintf(w, "Result: %s\n", sim.Outcomes[0])
	} else {
		fmt.Fprintf(w, "Results from %d measurements:\n", sim.Table.Total)
		for _, o := range sim.Outcomes {
			fmt.Fprintf(w, "  %s\n", o)
		}
		fmt.Fprintln(w, "Frequency distribution:")
		for _, e := range sim.Table.Entries {
			fmt.Fprintf(w, "  %s: %3d  %s\n", e.Outcome, e.Count, e.Display)
		}
	}

	if sim.QASM != "" {
		fmt.Fprintln(w)
		fmt.Fprint(w, sim.QASM)
	}
}
