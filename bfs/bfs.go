package bfs

import (
	"fmt"

	"github.com/katalvlaran/hypertile/core"
)

// Listing is the result of Collect: the listed nodes in breadth-first
// order with their distances from the origin.
type Listing[N comparable] struct {
	*Lister[N]
	dists []int

	// Found reports that the BreakOn target was discovered.
	Found bool
}

// Dist is the recorded distance of c.
func (r *Listing[N]) Dist(c N) (int, bool) {
	i, ok := r.Index(c)
	if !ok {
		return 0, false
	}
	return r.dists[i], true
}

// DistAt is the distance of the i-th listed node.
func (r *Listing[N]) DistAt(i int) int { return r.dists[i] }

// collector encapsulates mutable listing state.
type collector[N core.Node[N]] struct {
	opts Options
	res  *Listing[N]
}

// Collect lists the nodes around origin breadth-first, generating them as
// needed, until a bound of opts is reached. It returns ErrNilOrigin,
// ErrOptionViolation for invalid or missing bounds, the context error on
// cancellation, or the OnExpand error. On error the partial listing is
// returned as well.
//
// Complexity: O(V·degree) for V listed nodes, plus generation cost.
func Collect[N core.Node[N]](origin N, opts ...Option) (*Listing[N], error) {
	var zero N
	if origin == zero {
		return nil, ErrNilOrigin
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.MaxDist == 0 && o.MaxCount == 0 && o.BreakOn == nil {
		return nil, fmt.Errorf("%w: no bound on an infinite graph", ErrOptionViolation)
	}

	c := &collector[N]{opts: o, res: &Listing[N]{Lister: NewLister[N]()}}
	c.add(origin, 0)
	if c.isTarget(origin) {
		c.res.Found = true
		return c.res, nil
	}
	return c.res, c.loop()
}

func (c *collector[N]) add(n N, d int) bool {
	if !c.res.Add(n) {
		return false
	}
	c.res.dists = append(c.res.dists, d)
	c.opts.OnAdd(n.Serial(), d)
	return true
}

func (c *collector[N]) isTarget(n N) bool {
	return c.opts.BreakOn != nil && any(n) == c.opts.BreakOn
}

// loop expands listed nodes in order; a layer ends at the node that was
// last when the layer began.
func (c *collector[N]) loop() error {
	res := c.res
	last := res.At(0)
	for i := 0; i < res.Len(); i++ {
		select {
		case <-c.opts.Ctx.Done():
			return c.opts.Ctx.Err()
		default:
		}
		n, d := res.At(i), res.dists[i]
		if err := c.opts.OnExpand(n.Serial(), d); err != nil {
			return fmt.Errorf("bfs: OnExpand error at node %d: %w", n.Serial(), err)
		}
		for dir := 0; dir < n.Degree(); dir++ {
			m := n.CMove(dir)
			c.add(m, d+1)
			if c.isTarget(m) {
				res.Found = true
				return nil
			}
		}
		if n == last {
			if (c.opts.MaxCount > 0 && res.Len() >= c.opts.MaxCount) || d+1 == c.opts.MaxDist {
				break
			}
			last = res.At(res.Len() - 1)
		}
	}
	return nil
}
