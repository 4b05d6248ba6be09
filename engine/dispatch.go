package engine

import (
	"github.com/Shopify/go-lua"
	"go.uber.org/zap"

	"github.com/lualink/lua-object/errors"
)

// Native is the fixed callback shape the dispatcher invokes: the receiver
// handle and the decoded argument handles in, one result handle out.
// Returning handle 0 yields nil to the caller.
type Native func(rt *Runtime, recv Handle, args []Handle) Handle

// wrap adapts a Native callback to the dispatcher's calling convention. The
// dispatcher passes the receiver as the first stack slot (colon call) and
// the arguments after it; the returned wrapper captures each slot as a
// handle before handing control to the callback.
func (r *Runtime) wrap(fn Native) lua.Function {
	return func(l *lua.State) int {
		n := l.Top()
		var recv Handle
		if n >= 1 {
			recv = r.captureAt(1)
		}
		var args []Handle
		for i := 2; i <= n; i++ {
			args = append(args, r.captureAt(i))
		}
		r.push(fn(r, recv, args))
		return 1
	}
}

// pushMethod resolves a method against the receiver's class chain and
// pushes it. Resolution starts at the receiver's own metatable, so
// singleton methods win, then follows metatable links through parent
// classes, raw-reading each table. Singleton tables further up the chain
// belong to other objects (a superclass, say) and are skipped. Nothing is
// pushed when the name does not resolve.
func (r *Runtime) pushMethod(recv Handle, name string) bool {
	l := r.l
	kind := r.KindOf(recv)

	r.push(recv)
	if !kind.Immediate() && l.MetaTable(-1) {
		l.Remove(-2)
	} else {
		l.Pop(1)
		r.push(r.builtin[kind])
	}

	own := true
	for {
		if own || !rawFlag(l, -1, fieldSingleton) {
			l.PushString(name)
			l.RawGet(-2)
			if !l.IsNil(-1) {
				l.Remove(-2)
				return true
			}
			l.Pop(1)
		}
		own = false
		if !l.MetaTable(-1) {
			l.Pop(1)
			return false
		}
		l.Remove(-2)
	}
}

// RespondTo reports whether the receiver resolves the name to a callable
// method, without invoking it.
func (r *Runtime) RespondTo(recv Handle, name string) bool {
	if !r.pushMethod(recv, name) {
		return false
	}
	callable := r.l.TypeOf(-1) == lua.TypeFunction
	r.l.Pop(1)
	return callable
}

// Call invokes a method by name on the receiver and returns a handle to its
// result. The call is deliberately unprotected: a missing method, or an
// error raised by the method body, unwinds through the host runtime's own
// control flow.
func (r *Runtime) Call(recv Handle, name string, args []Handle) Handle {
	l := r.l

	if !r.pushMethod(recv, name) {
		r.Raise("undefined method '%s' for %s", name, r.KindOf(recv))
	}
	if l.TypeOf(-1) != lua.TypeFunction {
		l.Pop(1)
		r.Raise("slot '%s' is not callable", name)
	}

	r.push(recv)
	for _, a := range args {
		r.push(a)
	}
	l.Call(len(args)+1, 1)
	return r.capture()
}

// CallValue invokes a function value directly, inside a protected call.
// This is an embedder entry point, not dispatcher traffic, so host errors
// come back as Go errors.
func (r *Runtime) CallValue(fn Handle, args []Handle) (Handle, error) {
	l := r.l

	top := l.Top()
	r.push(fn)
	for _, a := range args {
		r.push(a)
	}
	if err := l.ProtectedCall(len(args), 1, 0); err != nil {
		l.SetTop(top)
		return 0, errors.CallFailed(err)
	}
	return r.capture(), nil
}

// DefineMethod registers a callback under name on the target class table.
// Re-registration overwrites: last write wins. Defining on a sealed value
// kind aborts through the host runtime.
func (r *Runtime) DefineMethod(target Handle, name string, fn Native) {
	l := r.l

	r.push(target)
	if l.TypeOf(-1) != lua.TypeTable {
		l.Pop(1)
		r.Raise("can't define method '%s' on %s", name, r.KindOf(target))
	}
	l.PushString(name)
	l.PushGoFunction(r.wrap(fn))
	l.RawSet(-3)
	l.Pop(1)

	r.logger.Debug("define method",
		zap.String("name", name),
		zap.String("class", r.ClassName(target)))
}

// DefineSingletonMethod registers a callback on the receiver's singleton
// class, so only this one object dispatches it.
func (r *Runtime) DefineSingletonMethod(recv Handle, name string, fn Native) {
	r.DefineMethod(r.SingletonClassOf(recv), name, fn)
}

// InstanceVariable reads a named slot on the receiver. Missing slots read
// as nil. Only ordinary objects carry slots; immediate kinds abort through
// the host runtime.
func (r *Runtime) InstanceVariable(recv Handle, name string) Handle {
	l := r.l

	r.push(recv)
	if l.TypeOf(-1) != lua.TypeTable {
		l.Pop(1)
		r.Raise("can't access instance variable '%s' on %s", name, r.KindOf(recv))
	}
	l.PushString(name)
	l.RawGet(-2)
	h := r.capture()
	l.Pop(1)
	return h
}

// SetInstanceVariable writes a named slot on the receiver and returns the
// stored value's handle.
func (r *Runtime) SetInstanceVariable(recv Handle, name string, value Handle) Handle {
	l := r.l

	r.push(recv)
	if l.TypeOf(-1) != lua.TypeTable {
		l.Pop(1)
		r.Raise("can't set instance variable '%s' on %s", name, r.KindOf(recv))
	}
	l.PushString(name)
	r.push(value)
	l.RawSet(-3)
	l.Pop(1)
	return value
}
