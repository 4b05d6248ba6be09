package object

import (
	luaobject "github.com/lualink/lua-object"
)

// Func wraps a runtime function value.
type Func struct {
	Base
}

// Call invokes the function directly, without method-dispatch semantics:
// no receiver is prepended and the call runs protected, so host errors
// come back as Go errors instead of unwinding.
func (f Func) Call(args ...Object) (Any, error) {
	h, err := f.rt.CallValue(f.h, handles(args))
	if err != nil {
		return Any{}, err
	}
	return Any{base(f.rt, h)}, nil
}

func (Func) IsCorrectType(candidate Object) bool {
	return candidate.Kind() == luaobject.KindFunction
}

func (Func) ErrorMessage() string { return "Error converting to Function" }
