package object

import (
	luaobject "github.com/lualink/lua-object"
	"github.com/lualink/lua-object/engine"
)

// Str wraps a runtime string value.
type Str struct {
	Base
}

// NewString creates a runtime string and wraps it.
func NewString(rt *engine.Runtime, s string) Str {
	return Str{base(rt, rt.NewString(s))}
}

// String returns the native string content.
func (s Str) String() string {
	return s.rt.StringValue(s.h)
}

func (Str) IsCorrectType(candidate Object) bool {
	return candidate.Kind() == luaobject.KindString
}

func (Str) ErrorMessage() string { return "Error converting to String" }
