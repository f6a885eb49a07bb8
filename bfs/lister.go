package bfs

// Lister is an add-only set that remembers insertion order.
type Lister[N comparable] struct {
	lst   []N
	index map[N]int
}

// NewLister returns an empty lister.
func NewLister[N comparable]() *Lister[N] {
	return &Lister[N]{index: make(map[N]int)}
}

// Listed reports whether c has been added.
func (l *Lister[N]) Listed(c N) bool {
	_, ok := l.index[c]
	return ok
}

// Add appends c unless it is already listed and reports whether it did.
func (l *Lister[N]) Add(c N) bool {
	if l.Listed(c) {
		return false
	}
	l.index[c] = len(l.lst)
	l.lst = append(l.lst, c)
	return true
}

// Index is the position of c in insertion order.
func (l *Lister[N]) Index(c N) (int, bool) {
	i, ok := l.index[c]
	return i, ok
}

// Len is the number of listed nodes.
func (l *Lister[N]) Len() int { return len(l.lst) }

// At is the i-th listed node.
func (l *Lister[N]) At(i int) N { return l.lst[i] }

// Nodes returns the listed nodes in insertion order. The slice is shared
// with the lister and must not be modified.
func (l *Lister[N]) Nodes() []N { return l.lst }
