package engine

import (
	"github.com/Shopify/go-lua"
	"go.uber.org/zap"

	luaobject "github.com/lualink/lua-object"
)

// Class tables carry a few reserved raw fields. The "__" prefix keeps them
// out of the method namespace Lua code would plausibly use.
const (
	fieldIndex     = "__index"
	fieldClass     = "__class"
	fieldSingleton = "__singleton"
	fieldName      = "__name"
	fieldHandle    = "__handle"
)

var builtinClassNames = [...]string{
	luaobject.KindNil:      "Nil",
	luaobject.KindBoolean:  "Boolean",
	luaobject.KindNumber:   "Number",
	luaobject.KindString:   "String",
	luaobject.KindTable:    "Table",
	luaobject.KindFunction: "Function",
	luaobject.KindUserData: "UserData",
	luaobject.KindThread:   "Thread",
}

// stdlib tables the builtin classes chain to, so runtime-native methods
// resolve through the same lookup as methods defined by this layer.
var builtinClassLibs = map[luaobject.Kind]string{
	luaobject.KindString: "string",
	luaobject.KindTable:  "table",
	luaobject.KindNumber: "math",
}

func (r *Runtime) initBuiltinClasses(chainStdlib bool) {
	for k := luaobject.KindNil; k <= luaobject.KindThread; k++ {
		h := r.newClassTable(builtinClassNames[k], 0)
		if chainStdlib {
			if libName, ok := builtinClassLibs[k]; ok {
				r.l.Global(libName)
				if r.l.TypeOf(-1) == lua.TypeTable {
					r.push(h)
					r.l.Insert(-2) // class below lib table
					r.l.SetMetaTable(-2)
					r.l.Pop(1)
				} else {
					r.l.Pop(1)
				}
			}
		}
		r.builtin[k] = h
	}
}

// newClassTable builds a class table: __index pointing at itself, class
// marker, name, and the parent class installed as its metatable.
func (r *Runtime) newClassTable(name string, parent Handle) Handle {
	l := r.l

	l.NewTable()
	l.PushValue(-1)
	l.SetField(-2, fieldIndex)
	l.PushBoolean(true)
	l.SetField(-2, fieldClass)
	if name != "" {
		l.PushString(name)
		l.SetField(-2, fieldName)
	}
	if parent != 0 {
		r.push(parent)
		l.SetMetaTable(-2)
	}

	h := r.classHandleAt(-1)
	l.Pop(1)
	return h
}

// classHandleAt returns a stable handle for the class table at the given
// stack index, allocating and recording one on first use. Classes stay
// pinned for the life of the runtime.
func (r *Runtime) classHandleAt(index int) Handle {
	l := r.l
	abs := l.AbsIndex(index)

	l.PushString(fieldHandle)
	l.RawGet(abs)
	if n, ok := l.ToInteger(-1); ok && r.slots.live(Handle(n)) {
		l.Pop(1)
		return Handle(n)
	}
	l.Pop(1)

	h := r.captureAt(abs)
	l.PushString(fieldHandle)
	l.PushInteger(int(h))
	l.RawSet(abs)
	return h
}

// rawFlag reads a boolean marker field from the table at index.
func rawFlag(l *lua.State, index int, field string) bool {
	abs := l.AbsIndex(index)
	l.PushString(field)
	l.RawGet(abs)
	flag := l.ToBoolean(-1)
	l.Pop(1)
	return flag
}

// NewClass creates a class, optionally inheriting from a parent class, and
// binds it to a global of the same name when the name is not empty.
func (r *Runtime) NewClass(name string, parent Handle) Handle {
	h := r.newClassTable(name, parent)
	if name != "" {
		r.push(h)
		r.l.SetGlobal(name)
	}
	r.logger.Debug("new class", zap.String("name", name))
	return h
}

// LookupClass resolves a global name to a class handle.
func (r *Runtime) LookupClass(name string) (Handle, bool) {
	l := r.l
	l.Global(name)
	if l.TypeOf(-1) != lua.TypeTable || !rawFlag(l, -1, fieldClass) {
		l.Pop(1)
		return 0, false
	}
	h := r.classHandleAt(-1)
	l.Pop(1)
	return h, true
}

// IsClass reports whether the handle refers to a class table.
func (r *Runtime) IsClass(h Handle) bool {
	l := r.l
	r.push(h)
	ok := l.TypeOf(-1) == lua.TypeTable && rawFlag(l, -1, fieldClass)
	l.Pop(1)
	return ok
}

// BuiltinClass returns the class for a coarse value kind.
func (r *Runtime) BuiltinClass(k luaobject.Kind) Handle {
	return r.builtin[k]
}

// ClassOf returns the class of the referenced value, skipping singleton
// classes. It always succeeds: values without a class-marked metatable get
// the builtin class for their kind.
func (r *Runtime) ClassOf(h Handle) Handle {
	l := r.l
	kind := r.KindOf(h)

	r.push(h)
	if !l.MetaTable(-1) {
		l.Pop(1)
		return r.builtin[kind]
	}
	l.Remove(-2) // metatable only

	for rawFlag(l, -1, fieldSingleton) {
		if !l.MetaTable(-1) {
			l.Pop(1)
			return r.builtin[kind]
		}
		l.Remove(-2)
	}

	if !rawFlag(l, -1, fieldClass) {
		l.Pop(1)
		return r.builtin[kind]
	}

	out := r.classHandleAt(-1)
	l.Pop(1)
	return out
}

// SingletonClassOf returns the per-object class of the referenced value,
// creating and splicing it in on first use. Immediate kinds have no
// per-object identity to hang a class on; the host runtime rejects them.
func (r *Runtime) SingletonClassOf(h Handle) Handle {
	l := r.l
	kind := r.KindOf(h)
	if kind.Immediate() {
		r.Raise("can't define singleton class for %s", kind)
	}

	r.push(h) // v
	if l.MetaTable(-1) {
		if rawFlag(l, -1, fieldSingleton) {
			out := r.classHandleAt(-1)
			l.Pop(2)
			return out
		}
		// existing metatable becomes the singleton's parent
	} else {
		r.push(r.builtin[kind])
	}

	// v parent
	l.NewTable() // v parent s
	l.PushValue(-1)
	l.SetField(-2, fieldIndex)
	l.PushBoolean(true)
	l.SetField(-2, fieldClass)
	l.PushBoolean(true)
	l.SetField(-2, fieldSingleton)

	l.PushValue(-2)    // v parent s parent
	l.SetMetaTable(-2) // v parent s
	l.Remove(-2)       // v s
	l.PushValue(-1)    // v s s
	l.SetMetaTable(-3) // v s

	out := r.classHandleAt(-1)
	l.Pop(2)
	return out
}

// ClassName returns the registered name of a class, or "" for anonymous
// classes and non-class handles.
func (r *Runtime) ClassName(class Handle) string {
	l := r.l
	r.push(class)
	if l.TypeOf(-1) != lua.TypeTable {
		l.Pop(1)
		return ""
	}
	l.PushString(fieldName)
	l.RawGet(-2)
	name, _ := l.ToString(-1)
	l.Pop(2)
	return name
}

// Superclass returns the parent of a class, when it has one.
func (r *Runtime) Superclass(class Handle) (Handle, bool) {
	l := r.l
	r.push(class)
	if l.TypeOf(-1) != lua.TypeTable || !l.MetaTable(-1) {
		l.Pop(1)
		return 0, false
	}
	l.Remove(-2)
	if !rawFlag(l, -1, fieldClass) {
		l.Pop(1)
		return 0, false
	}
	out := r.classHandleAt(-1)
	l.Pop(1)
	return out, true
}

// NewInstance creates an instance of a class and runs its initialize
// method, when one resolves, with the given arguments.
func (r *Runtime) NewInstance(class Handle, args []Handle) Handle {
	l := r.l

	l.NewTable()
	r.push(class)
	l.SetMetaTable(-2)
	inst := r.captureAt(-1)
	l.Pop(1)

	if r.RespondTo(inst, "initialize") {
		r.Release(r.Call(inst, "initialize", args))
	}
	return inst
}
