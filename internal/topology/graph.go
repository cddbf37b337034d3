package topology

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/AUSP59/QuantumSimX/internal/qerr"
)

// ReadGraph parses an undirected edge list, one "u v" pair per line
// (0-based physical qubit indices), into an adjacency list of size
// nqubits. Edges naming an index outside [0,nqubits) are rejected rather
// than silently dropped, since a caller who mistyped a qubit count
// deserves a loud failure instead of a topology missing an edge.
func ReadGraph(r io.Reader, nqubits int) (Graph, error) {
	adj := make(Graph, nqubits)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, qerr.NewAt(qerr.Parse, lineno, "expected two qubit indices")
		}
		u, err1 := strconv.Atoi(fields[0])
		v, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return nil, qerr.NewAt(qerr.Parse, lineno, "non-integer qubit index")
		}
		if u < 0 || u >= nqubits || v < 0 || v >= nqubits {
			return nil, qerr.NewAt(qerr.Parse, lineno, "qubit index out of range")
		}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}
	if err := scanner.Err(); err != nil {
		return nil, qerr.NewAt(qerr.Parse, lineno, err.Error())
	}
	return adj, nil
}
