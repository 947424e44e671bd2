package datastructure

import "errors"

var (
	ErrSelfLoop         = errors.New("self loop is not allowed in a simple graph")
	ErrDuplicateEdge    = errors.New("duplicate edge")
	ErrUnknownVertex    = errors.New("edge endpoint is not a vertex of the graph")
	ErrInvalidPartition = errors.New("invalid partition")
	ErrMalformedFile    = errors.New("malformed graph file")
)
