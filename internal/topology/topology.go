// Package topology inserts SWAP gates (three CNOTs each) so every CNOT
// in the rewritten circuit acts on physically adjacent qubits, tracking
// a logical-to-physical permutation as it goes. Two mappers are
// provided: MapToLine for the degenerate 1-D chain, and MapToGraph for
// an arbitrary adjacency list via breadth-first shortest path.
package topology

import "github.com/AUSP59/QuantumSimX/internal/circuit"

func emitSwap(out *circuit.Circuit, a, b int) {
	out.Ops = append(out.Ops,
		circuit.NewCNOT(a, b),
		circuit.NewCNOT(b, a),
		circuit.NewCNOT(a, b),
	)
}

// swapPositions exchanges every logical qubit currently mapped to
// physical position a with the one mapped to b.
func swapPositions(phys []int, a, b int) {
	for l := range phys {
		switch phys[l] {
		case a:
			phys[l] = b
		case b:
			phys[l] = a
		}
	}
}

// MapToLine rewrites in so every CNOT acts on adjacent physical qubits
// on a 1-D chain 0..n-1, moving whichever of the control and target
// sits lower on the chain up one position at a time until the two are
// adjacent. Single-qubit gates and noise channels are relabeled to the
// current physical position of their logical qubit; MEASURE is emitted
// unchanged.
func MapToLine(in *circuit.Circuit) *circuit.Circuit {
	out := &circuit.Circuit{NumQubits: in.NumQubits}
	phys := identity(in.NumQubits)
	for _, op := range in.Ops {
		switch {
		case op.Kind == circuit.CNOT:
			lc, lt := op.Control(), op.Target()
			pc, pt := phys[lc], phys[lt]
			for pc+1 < pt {
				emitSwap(out, pc, pc+1)
				swapPositions(phys, pc, pc+1)
				pc++
			}
			for pt+1 < pc {
				emitSwap(out, pt, pt+1)
				swapPositions(phys, pt, pt+1)
				pt++
			}
			out.Ops = append(out.Ops, circuit.NewCNOT(phys[lc], phys[lt]))
		case len(op.Qubits) == 1:
			out.Ops = append(out.Ops, relabel1(op, phys[op.Qubits[0]]))
		default:
			out.Ops = append(out.Ops, op)
		}
	}
	return out
}

// Graph is an undirected adjacency list over physical qubit indices,
// read from a "u v" edge-list file by ReadGraph.
type Graph [][]int

// MapToGraph rewrites in so every CNOT acts on an edge of adj, moving
// the target position one hop at a time along the breadth-first
// shortest path towards the control position. A CNOT whose control and
// target have no connecting path is emitted unchanged — the caller is
// responsible for supplying a connected topology when this matters.
func MapToGraph(in *circuit.Circuit, adj Graph) *circuit.Circuit {
	out := &circuit.Circuit{NumQubits: in.NumQubits}
	phys := identity(in.NumQubits)
	for _, op := range in.Ops {
		switch {
		case op.Kind == circuit.CNOT:
			lc, lt := op.Control(), op.Target()
			pc, pt := phys[lc], phys[lt]
			path := shortestPath(adj, pc, pt)
			if len(path) >= 2 {
				for i := len(path) - 1; i >= 2; i-- {
					emitSwap(out, path[i-1], path[i])
					swapPositions(phys, path[i-1], path[i])
				}
				pc, pt = phys[lc], phys[lt]
			}
			out.Ops = append(out.Ops, circuit.NewCNOT(pc, pt))
		case len(op.Qubits) == 1:
			out.Ops = append(out.Ops, relabel1(op, phys[op.Qubits[0]]))
		default:
			out.Ops = append(out.Ops, op)
		}
	}
	return out
}

// shortestPath runs breadth-first search over adj and returns the
// sequence of physical indices from s to t inclusive, or nil if they
// are disconnected.
func shortestPath(adj Graph, s, t int) []int {
	if s == t {
		return []int{s}
	}
	prev := make([]int, len(adj))
	for i := range prev {
		prev[i] = -1
	}
	prev[s] = s
	queue := []int{s}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for _, y := range adj[x] {
			if prev[y] == -1 {
				prev[y] = x
				queue = append(queue, y)
			}
		}
	}
	if prev[t] == -1 {
		return nil
	}
	path := []int{t}
	for path[len(path)-1] != s {
		path = append(path, prev[path[len(path)-1]])
	}
	reverse(path)
	return path
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func identity(n int) []int {
	phys := make([]int, n)
	for i := range phys {
		phys[i] = i
	}
	return phys
}

func relabel1(op circuit.Operation, physIdx int) circuit.Operation {
	out := op
	out.Qubits = []int{physIdx}
	return out
}
