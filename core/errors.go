package core

import "errors"

// Sentinel errors for the tessellation graph.
var (
	// ErrHookContract marks a creation hook that is missing, returned nil or
	// left the new edge one-sided. It is the panic payload of CMove.
	ErrHookContract = errors.New("core: creation hook broke its contract")

	// ErrDegree indicates a node degree outside [1, FullEdge].
	ErrDegree = errors.New("core: degree out of range")

	// ErrEdge indicates an edge index outside [0, degree).
	ErrEdge = errors.New("core: edge index out of range")

	// ErrEdgeTaken is the panic payload of Connect on a slot that is
	// already joined to a different edge.
	ErrEdgeTaken = errors.New("core: edge already connected")

	// ErrNilNode indicates a nil node passed to Connect or a constructor.
	ErrNilNode = errors.New("core: nil node")

	// ErrNotProper is the panic payload of Movei.DirForce and
	// Movei.RevDirForce on a move that is not a graph edge.
	ErrNotProper = errors.New("core: move is not proper")
)
