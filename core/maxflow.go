package core

import (
	"context"
	"fmt"
	"math"
)

// MaxFlow computes the maximum number of units that can travel from Source to
// Sink in one epoch, using Dinic's algorithm (level graph + blocking flows)
// over the static capacities.
//
// commodity == 0 considers every arc; commodity k ∈ 1..K only arcs carrying k.
// No epoch can deliver more than MaxFlow(ctx, 0) units in total, and no
// commodity more than MaxFlow(ctx, k).
//
// Steps:
//  1. Build the residual matrix res[u][v] from arc capacities (O(V² + A)).
//  2. Repeat until the sink is unreachable:
//     a. Check for cancellation.
//     b. BFS from the source to assign levels (O(V²)).
//     c. Push blocking flow with DFS along level+1 edges.
//
// Complexity: O(V² · A) worst case; layered networks converge in few phases.
func (n *Network) MaxFlow(ctx context.Context, commodity int) (int, error) {
	if commodity < 0 || commodity > n.commodities {
		return 0, fmt.Errorf("%w: %d not in 0..%d", ErrCommodityRange, commodity, n.commodities)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// 1) Residual capacities, indexed by node id.
	size := n.NodeCount() + 1
	res := make([][]int, size)
	for i := range res {
		res[i] = make([]int, size)
	}
	for i, a := range n.arcs {
		if commodity != 0 && !n.Carries(i, commodity) {
			continue
		}
		res[a.From][a.To] += a.Capacity
	}

	src, sink := n.Source(), n.Sink()
	total := 0
	level := make([]int, size)
	iter := make([]int, size)
	for {
		// 2a) Cancellation check before BFS
		if err := ctx.Err(); err != nil {
			return total, err
		}

		// 2b) BFS levels
		for i := range level {
			level[i] = -1
		}
		level[src] = 0
		queue := []int{src}
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for v := 1; v < size; v++ {
				if res[u][v] > 0 && level[v] < 0 {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		if level[sink] < 0 {
			break
		}

		// 2c) Blocking flow
		for i := range iter {
			iter[i] = 1
		}
		for {
			pushed := pushDinic(res, level, iter, src, sink, math.MaxInt)
			if pushed == 0 {
				break
			}
			total += pushed
		}
	}
	return total, nil
}

// pushDinic sends up to available units from u toward sink along the level
// graph and updates res in place. It returns the amount sent.
func pushDinic(res [][]int, level, iter []int, u, sink, available int) int {
	if u == sink {
		return available
	}
	for ; iter[u] < len(res); iter[u]++ {
		v := iter[u]
		if res[u][v] <= 0 || level[v] != level[u]+1 {
			continue
		}
		send := available
		if res[u][v] < send {
			send = res[u][v]
		}
		if pushed := pushDinic(res, level, iter, v, sink, send); pushed > 0 {
			res[u][v] -= pushed
			res[v][u] += pushed
			return pushed
		}
	}
	return 0
}
