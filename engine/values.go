package engine

import (
	"github.com/Shopify/go-lua"
)

// Table access primitives. All of these are raw: metamethods never fire, so
// the object layer's containers behave like plain storage regardless of
// what classes their values belong to.

// TableField reads t[name].
func (r *Runtime) TableField(t Handle, name string) Handle {
	l := r.l
	r.push(t)
	l.PushString(name)
	l.RawGet(-2)
	h := r.capture()
	l.Pop(1)
	return h
}

// SetTableField writes t[name] = value.
func (r *Runtime) SetTableField(t Handle, name string, value Handle) {
	l := r.l
	r.push(t)
	l.PushString(name)
	r.push(value)
	l.RawSet(-3)
	l.Pop(1)
}

// TableIndex reads t[i] (1-based, as the runtime counts).
func (r *Runtime) TableIndex(t Handle, i int) Handle {
	l := r.l
	r.push(t)
	l.RawGetInt(-1, i)
	h := r.capture()
	l.Pop(1)
	return h
}

// SetTableIndex writes t[i] = value.
func (r *Runtime) SetTableIndex(t Handle, i int, value Handle) {
	l := r.l
	r.push(t)
	r.push(value)
	l.RawSetInt(-2, i)
	l.Pop(1)
}

// TableLength returns the raw sequence length of t.
func (r *Runtime) TableLength(t Handle) int {
	l := r.l
	r.push(t)
	n := l.RawLength(-1)
	l.Pop(1)
	return n
}

// TableAppend writes value at the end of t's sequence part.
func (r *Runtime) TableAppend(t Handle, value Handle) {
	r.SetTableIndex(t, r.TableLength(t)+1, value)
}

// TableGet reads t[key] for an arbitrary key handle.
func (r *Runtime) TableGet(t Handle, key Handle) Handle {
	l := r.l
	r.push(t)
	r.push(key)
	l.RawGet(-2)
	h := r.capture()
	l.Pop(1)
	return h
}

// TableSet writes t[key] = value for an arbitrary key handle.
func (r *Runtime) TableSet(t Handle, key, value Handle) {
	l := r.l
	r.push(t)
	r.push(key)
	r.push(value)
	l.RawSet(-3)
	l.Pop(1)
}

// IsTable reports whether the handle refers to a table value.
func (r *Runtime) IsTable(h Handle) bool {
	r.push(h)
	ok := r.l.TypeOf(-1) == lua.TypeTable
	r.l.Pop(1)
	return ok
}
