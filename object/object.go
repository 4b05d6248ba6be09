package object

import (
	luaobject "github.com/lualink/lua-object"
	"github.com/lualink/lua-object/engine"
)

// Object is the capability surface shared by every typed wrapper. Anything
// that can surrender a handle can be introspected, extended with methods,
// converted and dispatched against, uniformly.
type Object interface {
	// Handle returns the opaque token for the wrapped runtime value.
	Handle() engine.Handle

	// Runtime returns the runtime the handle belongs to.
	Runtime() *engine.Runtime

	// Kind returns the coarse runtime kind of the wrapped value.
	Kind() luaobject.Kind

	// Class returns the runtime class of the wrapped value.
	Class() Class

	// SingletonClass returns the per-object class of the wrapped value,
	// creating it on first use. Aborts through the host runtime for
	// immediate kinds.
	SingletonClass() Class

	// DefineMethod registers a callback as an instance method on the
	// receiver, which must be a class (or singleton class). Last write
	// wins; sealed kinds abort through the host runtime.
	DefineMethod(name string, fn Callback)

	// DefineSingletonMethod registers a callback on the receiver's
	// singleton class, so only this object (or, for a class receiver, the
	// class itself) dispatches it.
	DefineSingletonMethod(name string, fn Callback)

	// Send invokes a method dynamically with positional arguments. Errors
	// raised by the method, including a missing method, unwind through the
	// host runtime's control flow rather than returning.
	Send(name string, args ...Object) Any

	// RespondTo reports whether the value resolves name to a method,
	// without invoking it.
	RespondTo(name string) bool

	// IsNil reports whether the value is the runtime's absence singleton.
	IsNil() bool

	// ToAny reinterprets the wrapper as the type-erased form. Same handle,
	// no cost.
	ToAny() Any

	// InstanceVariable reads a named per-object slot; absent slots read as
	// nil.
	InstanceVariable(name string) Any

	// SetInstanceVariable writes a named per-object slot and returns the
	// stored value.
	SetInstanceVariable(name string, value Object) Any

	// Equal reports runtime equality of the two wrapped values.
	Equal(other Object) bool
}

// Base carries the (runtime, handle) pair and implements Object. Typed
// wrappers embed it; they add nothing but a nominal class assertion and
// kind-specific accessors.
type Base struct {
	rt *engine.Runtime
	h  engine.Handle
}

func base(rt *engine.Runtime, h engine.Handle) Base {
	return Base{rt: rt, h: h}
}

// bind rebinds the wrapper in place. Conversion entry points use it to
// construct wrappers generically.
func (b *Base) bind(rt *engine.Runtime, h engine.Handle) {
	b.rt = rt
	b.h = h
}

func (b Base) Handle() engine.Handle     { return b.h }
func (b Base) Runtime() *engine.Runtime  { return b.rt }
func (b Base) Kind() luaobject.Kind      { return b.rt.KindOf(b.h) }
func (b Base) IsNil() bool               { return b.rt.IsNil(b.h) }
func (b Base) ToAny() Any                { return Any{base(b.rt, b.h)} }
func (b Base) Equal(other Object) bool   { return b.rt.Equal(b.h, other.Handle()) }

func (b Base) Class() Class {
	return Class{base(b.rt, b.rt.ClassOf(b.h))}
}

func (b Base) SingletonClass() Class {
	return Class{base(b.rt, b.rt.SingletonClassOf(b.h))}
}

// Define runs a registration block against the receiver. It exists for
// grouped, reopen-class style definitions; the block closes over whatever
// wrapper it is extending.
func (b Base) Define(f func()) {
	f()
}

func (b Base) DefineMethod(name string, fn Callback) {
	b.rt.DefineMethod(b.h, name, nativeCallback(fn))
}

func (b Base) DefineSingletonMethod(name string, fn Callback) {
	b.rt.DefineSingletonMethod(b.h, name, nativeCallback(fn))
}

func (b Base) Send(name string, args ...Object) Any {
	return Any{base(b.rt, b.rt.Call(b.h, name, handles(args)))}
}

func (b Base) RespondTo(name string) bool {
	return b.rt.RespondTo(b.h, name)
}

func (b Base) InstanceVariable(name string) Any {
	return Any{base(b.rt, b.rt.InstanceVariable(b.h, name))}
}

func (b Base) SetInstanceVariable(name string, value Object) Any {
	return Any{base(b.rt, b.rt.SetInstanceVariable(b.h, name, value.Handle()))}
}

func handles(args []Object) []engine.Handle {
	if len(args) == 0 {
		return nil
	}
	out := make([]engine.Handle, len(args))
	for i, a := range args {
		out[i] = a.Handle()
	}
	return out
}
