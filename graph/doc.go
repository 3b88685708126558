// Package graph provides a directed weighted graph and an all-pairs shortest
// path index over it.
//
// The graph is append-only: edges get consecutive ids in insertion order and
// are never removed. Router precomputes the best path between every pair of
// vertices once; the resulting table can be exported with InternalData and
// restored with NewRouterFromData without running the relaxation again.
package graph
