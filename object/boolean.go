package object

import (
	luaobject "github.com/lualink/lua-object"
	"github.com/lualink/lua-object/engine"
)

// Bool wraps a runtime boolean value.
type Bool struct {
	Base
}

// NewBoolean creates a runtime boolean and wraps it.
func NewBoolean(rt *engine.Runtime, b bool) Bool {
	return Bool{base(rt, rt.NewBoolean(b))}
}

// Bool returns the native boolean value.
func (b Bool) Bool() bool {
	return b.rt.BooleanValue(b.h)
}

func (Bool) IsCorrectType(candidate Object) bool {
	return candidate.Kind() == luaobject.KindBoolean
}

func (Bool) ErrorMessage() string { return "Error converting to Boolean" }
