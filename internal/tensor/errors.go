package tensor

import "errors"

// Error kinds returned by tensor operations. Every error produced by this
// package wraps exactly one of these; match with errors.Is.
var (
	ErrInvalidShape          = errors.New("invalid shape")
	ErrShapeMismatch         = errors.New("shape mismatch")
	ErrInvalidRank           = errors.New("invalid rank")
	ErrIndexOutOfBounds      = errors.New("index out of bounds")
	ErrIncompatibleBroadcast = errors.New("incompatible broadcast")
	ErrInvalidEquation       = errors.New("invalid einsum equation")
	ErrDimensionConflict     = errors.New("dimension conflict")
	ErrEmptyTensor           = errors.New("empty tensor")
	ErrInvalidAxis           = errors.New("invalid axis")
	ErrInvalidPermutation    = errors.New("invalid permutation")
	ErrReadOnly              = errors.New("tensor view is read-only")
	ErrReleased              = errors.New("tensor has been released")
)
