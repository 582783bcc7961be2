// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/ringtensor/internal/tensor"

// Error kinds. Every error returned by this package wraps one of them;
// match with errors.Is.
var (
	ErrInvalidShape          = tensor.ErrInvalidShape
	ErrShapeMismatch         = tensor.ErrShapeMismatch
	ErrInvalidRank           = tensor.ErrInvalidRank
	ErrIndexOutOfBounds      = tensor.ErrIndexOutOfBounds
	ErrIncompatibleBroadcast = tensor.ErrIncompatibleBroadcast
	ErrInvalidEquation       = tensor.ErrInvalidEquation
	ErrDimensionConflict     = tensor.ErrDimensionConflict
	ErrEmptyTensor           = tensor.ErrEmptyTensor
	ErrInvalidAxis           = tensor.ErrInvalidAxis
	ErrInvalidPermutation    = tensor.ErrInvalidPermutation
	ErrReadOnly              = tensor.ErrReadOnly
	ErrReleased              = tensor.ErrReleased
)
