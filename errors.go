package ngramdist

import "errors"

var (
	// ErrNotRegistered is returned by Lookup for an unknown function name.
	ErrNotRegistered = errors.New("ngramdist: function not registered")

	// ErrInvalidParallelism is returned by ColumnParallel when parallelism
	// is not positive.
	ErrInvalidParallelism = errors.New("ngramdist: parallelism must be positive")
)
