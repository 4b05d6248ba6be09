package object

import (
	"github.com/lualink/lua-object/engine"
)

// Callback is a native function registered as a method. The dispatcher
// invokes it with the receiver and the positional arguments, each presented
// as a type-erased wrapper; the returned wrapper's handle becomes the call
// result. A nil return yields nil to the caller.
//
// Argument and return types all implement Object, so the dispatcher can
// extract and construct handles without knowing anything about the
// callback's declared types. Narrow the arguments with TryConvert, or with
// UnsafeTo when the calling code is trusted to pass the right classes.
type Callback func(self Any, args Arguments) Object

// Arguments is the positional argument vector handed to a callback.
type Arguments []Any

// Len returns the number of arguments passed.
func (a Arguments) Len() int { return len(a) }

// Get returns the i-th argument, or a nil wrapper when the caller passed
// fewer arguments. The nil wrapper is bound to the same runtime as the
// argument vector's receiver only when at least one argument exists;
// callbacks that allow optional arguments should check Len first when they
// need the runtime off an argument.
func (a Arguments) Get(i int) Any {
	if i < 0 || i >= len(a) {
		return Any{}
	}
	return a[i]
}

// nativeCallback adapts a Callback to the engine's dispatcher ABI.
func nativeCallback(fn Callback) engine.Native {
	return func(rt *engine.Runtime, recv engine.Handle, args []engine.Handle) engine.Handle {
		self := Any{base(rt, recv)}
		vec := make(Arguments, len(args))
		for i, h := range args {
			vec[i] = Any{base(rt, h)}
		}
		out := fn(self, vec)
		if out == nil {
			return 0
		}
		return out.Handle()
	}
}
