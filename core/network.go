package core

import (
	"fmt"
	"sort"
)

// Network is the immutable layered graph: node partition, arcs, capacities,
// and per-commodity costs. Build it with NewNetwork.
type Network struct {
	nodes       int // inner nodes, excluding source and sink
	commodities int

	layers  [][]int // layer → node ids, ascending
	layerOf []int   // node id → layer; index 0 unused

	arcs  []Arc          // dense, ascending (from, to)
	index map[ArcKey]int // ArcKey → dense index
	out   [][]int        // node id → outgoing arc indices, ascending target

	// Per-(arc, commodity) tables addressed by slot(arc, commodity).
	carries      []bool
	cost         []float64
	desirability []float64
}

// Partition buckets node ids 1..nodes+2 into layers.
// Node id belongs to layer ceil((id-1)/nodesPerLayer) with
// nodesPerLayer = nodes/(layers-2). The inner node count must be a positive
// multiple of layers-2 so that the source and the sink each sit alone in the
// first and last layer.
//
// Complexity: O(nodes).
func Partition(nodes, layers int) ([][]int, error) {
	if layers < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrLayerCount, layers)
	}
	inner := layers - 2
	if nodes < inner || nodes%inner != 0 {
		return nil, fmt.Errorf("%w: %d nodes over %d inner layers", ErrNodeCount, nodes, inner)
	}
	perLayer := nodes / inner

	out := make([][]int, layers)
	for id := 1; id <= nodes+2; id++ {
		// integer ceil((id-1)/perLayer)
		l := (id - 1 + perLayer - 1) / perLayer
		out[l] = append(out[l], id)
	}
	return out, nil
}

// NewNetwork validates the arc records and builds the static network.
//
// Steps:
//  1. Partition node ids into layers.
//  2. Validate every record: endpoints exist, arc goes to the next layer,
//     commodity in range, cost > 0, capacity ≥ 0, capacities agree per arc.
//  3. Assign dense arc indices in ascending (from, to) order.
//  4. Fill per-(arc, commodity) cost and desirability = 1/cost; reject duplicates.
//
// Complexity: O(V + A·log A).
func NewNetwork(nodes, layers, commodities int, specs []ArcSpec) (*Network, error) {
	if commodities < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrCommodityCount, commodities)
	}
	parts, err := Partition(nodes, layers)
	if err != nil {
		return nil, err
	}

	n := &Network{
		nodes:       nodes,
		commodities: commodities,
		layers:      parts,
		layerOf:     make([]int, nodes+3),
		index:       make(map[ArcKey]int),
	}
	n.layerOf[0] = -1
	for l, ids := range parts {
		for _, id := range ids {
			n.layerOf[id] = l
		}
	}

	// 2) Validate records and gather physical arcs with their capacity.
	capacity := make(map[ArcKey]int)
	for _, s := range specs {
		if err = n.checkSpec(s); err != nil {
			return nil, &ArcError{Spec: s, Err: err}
		}
		key := s.Key()
		if c, ok := capacity[key]; ok && c != s.Capacity {
			return nil, &ArcError{Spec: s, Err: fmt.Errorf("%w: %d vs %d", ErrCapacityConflict, c, s.Capacity)}
		}
		capacity[key] = s.Capacity
	}

	// 3) Dense indices in ascending (from, to).
	keys := make([]ArcKey, 0, len(capacity))
	for k := range capacity {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].From != keys[j].From {
			return keys[i].From < keys[j].From
		}
		return keys[i].To < keys[j].To
	})

	n.arcs = make([]Arc, len(keys))
	n.out = make([][]int, nodes+3)
	for i, k := range keys {
		n.arcs[i] = Arc{Index: i, From: k.From, To: k.To, Capacity: capacity[k]}
		n.index[k] = i
		n.out[k.From] = append(n.out[k.From], i)
	}

	// 4) Per-commodity attributes.
	size := len(keys) * commodities
	n.carries = make([]bool, size)
	n.cost = make([]float64, size)
	n.desirability = make([]float64, size)
	for _, s := range specs {
		slot := n.slot(n.index[s.Key()], s.Commodity)
		if n.carries[slot] {
			return nil, &ArcError{Spec: s, Err: ErrDuplicateArc}
		}
		n.carries[slot] = true
		n.cost[slot] = float64(s.Cost)
		n.desirability[slot] = 1.0 / float64(s.Cost)
	}

	return n, nil
}

// checkSpec validates a single record against the partition.
func (n *Network) checkSpec(s ArcSpec) error {
	if !n.HasNode(s.From) {
		return fmt.Errorf("%w: from=%d", ErrNodeNotFound, s.From)
	}
	if !n.HasNode(s.To) {
		return fmt.Errorf("%w: to=%d", ErrNodeNotFound, s.To)
	}
	if n.layerOf[s.To] != n.layerOf[s.From]+1 {
		return fmt.Errorf("%w: layer %d → layer %d", ErrArcSkipsLayer, n.layerOf[s.From], n.layerOf[s.To])
	}
	if s.Commodity < 1 || s.Commodity > n.commodities {
		return fmt.Errorf("%w: %d not in 1..%d", ErrCommodityRange, s.Commodity, n.commodities)
	}
	if s.Cost <= 0 {
		return fmt.Errorf("%w: %d", ErrBadCost, s.Cost)
	}
	if s.Capacity < 0 {
		return fmt.Errorf("%w: %d", ErrBadCapacity, s.Capacity)
	}
	return nil
}

// slot addresses the per-(arc, commodity) tables.
func (n *Network) slot(arc, commodity int) int {
	return arc*n.commodities + commodity - 1
}
