package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/hypertile/core"
)

// Result holds the settled costs and, with ReturnPath, the predecessors.
type Result[N comparable] struct {
	dist    map[N]float64
	prev    map[N]N
	order   []N
	reached bool
}

// Dist is the least cost of n and whether n was settled.
func (r *Result[N]) Dist(n N) (float64, bool) {
	d, ok := r.dist[n]
	return d, ok
}

// Settled lists the settled nodes in order of increasing cost.
func (r *Result[N]) Settled() []N { return r.order }

// Reached reports whether the target given by WithTarget was settled.
func (r *Result[N]) Reached() bool { return r.reached }

// PathTo rebuilds the path from the source to n (both included). It
// returns nil when n was not settled or predecessors were not kept.
func (r *Result[N]) PathTo(n N) []N {
	if _, ok := r.dist[n]; !ok || r.prev == nil {
		return nil
	}
	var path []N
	for {
		path = append(path, n)
		p, ok := r.prev[n]
		if !ok {
			break
		}
		n = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Dijkstra computes least costs from source over edges priced by w.
//
// Preconditions and validation (in order):
//  1. source must be non-nil (ErrNilSource).
//  2. w must be non-nil (ErrNilWeight).
//  3. MaxDistance must be finite (ErrUnbounded).
//
// A negative or NaN cost met during relaxation aborts with
// ErrNegativeWeight; the partial result is returned with it.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[N core.Node[N]](source N, w Weight[N], opts ...Option) (*Result[N], error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	var zero N
	if source == zero {
		return nil, ErrNilSource
	}
	if w == nil {
		return nil, ErrNilWeight
	}
	if math.IsInf(cfg.MaxDistance, 1) {
		return nil, ErrUnbounded
	}

	// 3) Prepare state; prev only when paths are requested.
	res := &Result[N]{dist: make(map[N]float64)}
	if cfg.ReturnPath {
		res.prev = make(map[N]N)
	}
	r := &runner[N]{
		options: cfg,
		weight:  w,
		res:     res,
		best:    map[N]float64{source: 0},
	}
	heap.Push(&r.pq, &nodeItem[N]{node: source, dist: 0})

	// 4) Main loop.
	return res, r.process()
}

// runner holds the mutable state for a single execution.
type runner[N core.Node[N]] struct {
	options Options
	weight  Weight[N]
	res     *Result[N]
	best    map[N]float64 // tentative costs, including unsettled nodes
	pq      nodePQ[N]
}

// process pops nodes by increasing cost until the heap is empty or the
// target is settled.
func (r *runner[N]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[N])
		u := item.node

		// Skip stale entries of already settled nodes.
		if _, done := r.res.dist[u]; done {
			continue
		}
		r.res.dist[u] = item.dist
		r.res.order = append(r.res.order, u)

		if r.options.Target != nil && any(u) == r.options.Target {
			r.res.reached = true
			return nil
		}
		if err := r.relax(u, item.dist); err != nil {
			return err
		}
	}
	return nil
}

// relax prices every edge of u and pushes improved neighbours. Walls and
// edges leading beyond MaxDistance are skipped before the neighbour is
// generated.
func (r *runner[N]) relax(u N, du float64) error {
	for d := 0; d < u.Degree(); d++ {
		c := r.weight(u, d)
		if c < 0 || math.IsNaN(c) {
			return fmt.Errorf("%w: node %d edge %d weight=%v", ErrNegativeWeight, u.Serial(), d, c)
		}
		if c >= r.options.InfEdgeThreshold {
			continue
		}
		nd := du + c
		if nd > r.options.MaxDistance {
			continue
		}
		v := u.CMove(d)
		if _, done := r.res.dist[v]; done {
			continue
		}
		if old, ok := r.best[v]; ok && nd >= old {
			continue
		}
		r.best[v] = nd
		if r.res.prev != nil {
			r.res.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem[N]{node: v, dist: nd})
	}
	return nil
}

// nodeItem is a node with a tentative cost.
type nodeItem[N any] struct {
	node N
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by cost.
type nodePQ[N any] []*nodeItem[N]

func (pq nodePQ[N]) Len() int            { return len(pq) }
func (pq nodePQ[N]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ[N]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ[N]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[N])) }

func (pq *nodePQ[N]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
