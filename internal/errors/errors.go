// Package errors provides error handling for tsdecl.
//
// It re-exports github.com/cockroachdb/errors so the rest of the repository
// gets stack traces, wrapping, and marker-based classification from a single
// import path.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Error creation and wrapping.
var (
	New       = crdb.New
	Newf      = crdb.Newf
	Wrap      = crdb.Wrap
	Wrapf     = crdb.Wrapf
	WithStack = crdb.WithStack
)

// Error inspection.
var (
	Is     = crdb.Is
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Marker-based classification.
var (
	Mark    = crdb.Mark
	IsAny   = crdb.IsAny
	Handled = crdb.Handled
)
