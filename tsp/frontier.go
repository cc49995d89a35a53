package tsp

import "container/heap"

// node is one partial route on the frontier.
//
// path holds stop indices (0 is the depot) from the depot to the last placed
// stop; depth is the number of placed interior stops.
type node struct {
	bound float64
	cost  float64
	depth int
	path  []int
	seq   int // insertion order, breaks bound ties deterministically
}

// frontier is a binary min-heap of nodes ordered by bound, then by depth
// (deeper first), then by insertion order.
type frontier []*node

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].bound != f[j].bound {
		return f[i].bound < f[j].bound
	}
	if f[i].depth != f[j].depth {
		return f[i].depth > f[j].depth
	}

	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*node)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return it
}

var _ heap.Interface = (*frontier)(nil)
