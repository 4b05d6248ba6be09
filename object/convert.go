package object

import (
	"fmt"

	"github.com/lualink/lua-object/engine"
	"github.com/lualink/lua-object/errors"
)

// Verified is the opt-in surface for safe downcasting. IsCorrectType is a
// predicate over the candidate's actual runtime class, never over its
// static wrapper type: a type-erased wrapper can house any value, so every
// safe narrowing re-checks at the moment of conversion. ErrorMessage is the
// fixed description carried by failed conversions.
//
// Implementations must not touch the receiver; TryConvert calls them on a
// zero wrapper.
type Verified interface {
	Object
	IsCorrectType(candidate Object) bool
	ErrorMessage() string
}

// wrapper is the constraint tying a wrapper type to its pointer form, which
// is where bind lives. It is what lets the conversion entry points
// construct any wrapper from a handle without reflection.
type wrapper[T any] interface {
	*T
	Object
	bind(rt *engine.Runtime, h engine.Handle)
}

// UnsafeTo reinterprets the candidate's handle as wrapper type T without
// verifying the runtime class. This is the library's explicit trust
// boundary: the caller asserts the value really is a T. On a mismatched
// value the returned wrapper is a lie, discovered only at the next
// operation that assumes the wrong shape.
//
// Use it when the code that produced the value is under the caller's
// control and well tested; everywhere else, use TryConvert.
func UnsafeTo[T Object, PT wrapper[T]](candidate Object) T {
	var out T
	PT(&out).bind(candidate.Runtime(), candidate.Handle())
	return out
}

// TryConvert narrows the candidate to wrapper type T after verifying its
// runtime class. On success the result wraps the candidate's handle
// unchanged; on failure the returned error is a type mismatch carrying T's
// fixed error message and the candidate is untouched.
func TryConvert[T Verified, PT wrapper[T]](candidate Object) (T, error) {
	var out T
	if !out.IsCorrectType(candidate) {
		return out, errors.TypeMismatch(
			fmt.Sprintf("%T", out),
			candidate.Kind().String(),
			out.ErrorMessage(),
		)
	}
	PT(&out).bind(candidate.Runtime(), candidate.Handle())
	return out, nil
}
