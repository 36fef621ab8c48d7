// Package generator synthesizes layered datasets (arc list + supply list)
// for a config.Config.
//
// Model:
//   - Nodes are partitioned exactly like core.Partition: source, LAYERS-2
//     inner layers of NODES/(LAYERS-2) nodes, sink.
//   - Every node of layer i connects to each node of layer i+1 independently
//     with probability DENSITY/100.
//   - Connectivity is then forced: a node left without an outgoing arc gets
//     one to a random node of the next layer, and a node beyond layer 0 left
//     without an incoming arc gets one from a random node of the previous
//     layer. Every node can therefore reach the sink.
//   - Each physical arc draws one capacity and carries every commodity, each
//     with its own cost.
//   - Each commodity draws a demand.
//
// Determinism:
//   - Trials run layer ascending, source id ascending, target id ascending.
//   - Attribute draws follow the ascending (from, to, commodity) order.
//   - A fixed seed (WithSeed) or *rand.Rand (WithRand) fixes the output.
//
// Options follow the functional style: constructors validate and panic on
// meaningless input; Layered itself never panics.
package generator
