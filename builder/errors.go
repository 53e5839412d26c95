// SPDX-License-Identifier: MIT
// Package: searchviz/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers use errors.Is(err, ErrX); implementations attach context with %w.

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (n, rows, cols) is below the
// minimum for the requested constructor.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that construction could not proceed
// (e.g. a nil constructor was passed to BuildGraph).
var ErrConstructFailed = errors.New("builder: construction failed")
