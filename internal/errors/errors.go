// Package errors is the single errors import of the module. Sentinel
// handling comes from the standard library; wrapping records a stack trace
// through github.com/pkg/errors.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	New  = stderrors.New
	Is   = stderrors.Is
	As   = stderrors.As
	Join = stderrors.Join
)

var (
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
	Errorf    = pkgerrors.Errorf
)

// AsType returns the first error in err's tree assignable to T.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}
