package main

import (
	"os"

	"github.com/AUSP59/QuantumSimX/internal/circuit"
)

func parseCircuitFile(path string, qasm bool) (*circuit.Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if qasm {
		return circuit.ParseQASM(f)
	}
	return circuit.ParseText(f)
}
