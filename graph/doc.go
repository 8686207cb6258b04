// Package graph implements the undirected, integer-labeled graph kernel that
// the rest of this module builds on: per-player indistinguishability
// relations, history graphs, and the working graphs fed to the retraction
// and isomorphism finders are all graph.Graph values.
//
// A Graph stores edges as an unordered set of unordered vertex pairs and
// always permits self-loops: every history and every state is
// indistinguishable from itself, so loops are not a configurable option here
// the way core.Graph treats them, they are simply part of the domain. There
// is no weight or direction: states and histories are either
// indistinguishable or they are not.
//
// Supported operations: AddNode, AddEdge, HasEdge, Nodes, Edges, Neighbors,
// ConnectedComponents, Subgraph, Relabel, and ConvertLabelsToIntegers.
//
// The unfolding walks this graph single-threaded and synchronously: Graph is
// plain data with no internal locking, unlike core.Graph's muVert/muEdgeAdj
// pair, which exists to support concurrent mutation this domain never does.
package graph
