package griddevice

import "math"

type wireEdge struct {
	from, to int
	weight   float64
}

// buildDelayMatrix computes all-pairs shortest path distances over an n
// node graph from a directed edge list, using the classic triple-nested
// Floyd-Warshall relaxation. Unreachable pairs stay at +Inf; the diagonal
// starts at 0. Rewritten in terms of a plain [][]float64 rather than a
// matrix.Matrix abstraction, since this is the only matrix operation
// griddevice needs.
func buildDelayMatrix(n int, edges []wireEdge) [][]float64 {
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i == j {
				dist[i][j] = 0
			} else {
				dist[i][j] = math.Inf(1)
			}
		}
	}
	for _, e := range edges {
		if e.weight < dist[e.from][e.to] {
			dist[e.from][e.to] = e.weight
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if dist[i][k] == math.Inf(1) {
				continue
			}
			for j := 0; j < n; j++ {
				if via := dist[i][k] + dist[k][j]; via < dist[i][j] {
					dist[i][j] = via
				}
			}
		}
	}
	return dist
}
