package object

import (
	"math"

	luaobject "github.com/lualink/lua-object"
	"github.com/lualink/lua-object/engine"
)

// Integer wraps a runtime number carrying an integral value. The runtime
// has a single number kind; Integer narrows it to whole values, so
// verified conversion from a fractional number fails.
type Integer struct {
	Base
}

// NewInteger creates a runtime number from a native integer and wraps it.
func NewInteger(rt *engine.Runtime, i int) Integer {
	return Integer{base(rt, rt.NewInteger(i))}
}

// Int returns the native integer value.
func (n Integer) Int() int {
	return n.rt.IntegerValue(n.h)
}

func (Integer) IsCorrectType(candidate Object) bool {
	if candidate.Kind() != luaobject.KindNumber {
		return false
	}
	f := candidate.Runtime().NumberValue(candidate.Handle())
	return f == math.Trunc(f)
}

func (Integer) ErrorMessage() string { return "Error converting to Integer" }

// Float wraps any runtime number.
type Float struct {
	Base
}

// NewFloat creates a runtime number and wraps it.
func NewFloat(rt *engine.Runtime, f float64) Float {
	return Float{base(rt, rt.NewNumber(f))}
}

// Float64 returns the native value.
func (f Float) Float64() float64 {
	return f.rt.NumberValue(f.h)
}

func (Float) IsCorrectType(candidate Object) bool {
	return candidate.Kind() == luaobject.KindNumber
}

func (Float) ErrorMessage() string { return "Error converting to Float" }
