package planner

// node is a single open-set entry: a packed-key (x,y,t) plus its A*
// scores. g and t are carried alongside f purely for the deterministic
// tie-break (see doc.go); they are not recomputed from key to keep the
// heap's comparisons O(1).
type node struct {
	key  int
	f, g int
	t    int
	x, y int
}

// nodeHeap is a min-heap of *node ordered by (f, g, t, x, y) ascending:
// lowest f wins; among equal f, lowest g (less waiting); among equal g,
// lowest t, then lexicographic (x, y). This fixes the tie-break the
// source left unspecified (spec.md Open Question).
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g < b.g
	}
	if a.t != b.t {
		return a.t < b.t
	}
	if a.x != b.x {
		return a.x < b.x
	}
	return a.y < b.y
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x interface{}) {
	*h = append(*h, x.(*node))
}

func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
