package core

import "fmt"

// Source returns the unique source node id (always 1).
func (n *Network) Source() int { return 1 }

// Sink returns the unique sink node id (nodes+2).
func (n *Network) Sink() int { return n.nodes + 2 }

// InnerNodes returns the number of nodes between source and sink.
func (n *Network) InnerNodes() int { return n.nodes }

// NodeCount returns the total number of nodes, source and sink included.
func (n *Network) NodeCount() int { return n.nodes + 2 }

// Commodities returns the number of commodities, numbered 1..Commodities().
func (n *Network) Commodities() int { return n.commodities }

// LayerCount returns the number of layers.
func (n *Network) LayerCount() int { return len(n.layers) }

// HasNode reports whether id is a node of the network.
func (n *Network) HasNode(id int) bool {
	return id >= 1 && id <= n.nodes+2
}

// Layer returns a copy of the node ids of layer i in ascending order,
// or nil when i is out of range.
func (n *Network) Layer(i int) []int {
	if i < 0 || i >= len(n.layers) {
		return nil
	}
	out := make([]int, len(n.layers[i]))
	copy(out, n.layers[i])
	return out
}

// LayerOf returns the layer index of node id.
func (n *Network) LayerOf(id int) (int, error) {
	if !n.HasNode(id) {
		return -1, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	return n.layerOf[id], nil
}
