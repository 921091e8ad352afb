package core

import "github.com/kamstrup/intmap"

// MaxBoardSize bounds the board so that packed anchor keys stay unique.
const MaxBoardSize = 256

// Anchors are packed into a single int key. The bias keeps slightly
// negative overshoot anchors positive.
const (
	keyBias   = 64
	keyStride = 1 << 10
)

func anchorKey(a Anchor) int {
	return (a.Row+keyBias)*keyStride + (a.Col + keyBias)
}

// ReachableSet is the set of anchors a dragged shape can reach from its
// start position through single-cell steps.
type ReachableSet struct {
	start   Anchor
	index   *intmap.Map[int, int] // anchor key -> position in anchors
	anchors []Anchor              // BFS discovery order
}

func newReachableSet(start Anchor, capacity int) *ReachableSet {
	r := &ReachableSet{
		start: start,
		index: intmap.New[int, int](capacity),
	}
	r.add(start)
	return r
}

// add inserts a and reports whether it was new.
func (r *ReachableSet) add(a Anchor) bool {
	key := anchorKey(a)
	if _, ok := r.index.Get(key); ok {
		return false
	}
	r.index.Put(key, len(r.anchors))
	r.anchors = append(r.anchors, a)
	return true
}

// Contains returns true if a is reachable.
func (r *ReachableSet) Contains(a Anchor) bool {
	if r == nil {
		return false
	}
	_, ok := r.index.Get(anchorKey(a))
	return ok
}

// Len returns the number of reachable anchors.
func (r *ReachableSet) Len() int {
	if r == nil {
		return 0
	}
	return len(r.anchors)
}

// Start returns the anchor the search began from.
func (r *ReachableSet) Start() Anchor { return r.start }

// Anchors returns the reachable anchors in discovery order.
func (r *ReachableSet) Anchors() []Anchor {
	if r == nil {
		return nil
	}
	out := make([]Anchor, len(r.anchors))
	copy(out, r.anchors)
	return out
}

// ComputeReachable runs a breadth-first search over anchors for the shape
// id with matrix m, starting at start. A neighbour is accepted when the
// shape could be placed there (relaxed bounds, own cells ignored). The
// start anchor is always a member, even if it is not itself placeable.
func ComputeReachable(b *Board, m Matrix, id int, start Anchor) *ReachableSet {
	size := b.Size() + 2 // Anchors span the board plus one cell of overshoot
	reach := newReachableSet(start, size*size)

	queue := []Anchor{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range neighbours {
			next := cur.Add(d[0], d[1])
			if reach.Contains(next) {
				continue
			}
			if !b.CanPlace(m, next, id) {
				continue
			}
			reach.add(next)
			queue = append(queue, next)
		}
	}
	return reach
}
