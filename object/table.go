package object

import (
	luaobject "github.com/lualink/lua-object"
	"github.com/lualink/lua-object/engine"
)

// Table wraps a runtime table, the host's one container kind. Access is
// raw: no metamethod ever fires, so a Table behaves like plain storage no
// matter what class the value belongs to.
type Table struct {
	Base
}

// NewTable creates an empty runtime table and wraps it.
func NewTable(rt *engine.Runtime) Table {
	return Table{base(rt, rt.NewTable())}
}

// Field reads the value stored under a string key.
func (t Table) Field(name string) Any {
	return Any{base(t.rt, t.rt.TableField(t.h, name))}
}

// SetField stores a value under a string key.
func (t Table) SetField(name string, value Object) Table {
	t.rt.SetTableField(t.h, name, value.Handle())
	return t
}

// Index reads the value at a 1-based sequence position.
func (t Table) Index(i int) Any {
	return Any{base(t.rt, t.rt.TableIndex(t.h, i))}
}

// SetIndex stores a value at a 1-based sequence position.
func (t Table) SetIndex(i int, value Object) Table {
	t.rt.SetTableIndex(t.h, i, value.Handle())
	return t
}

// Get reads the value stored under an arbitrary key.
func (t Table) Get(key Object) Any {
	return Any{base(t.rt, t.rt.TableGet(t.h, key.Handle()))}
}

// Set stores a value under an arbitrary key.
func (t Table) Set(key, value Object) Table {
	t.rt.TableSet(t.h, key.Handle(), value.Handle())
	return t
}

// Len returns the sequence length.
func (t Table) Len() int {
	return t.rt.TableLength(t.h)
}

// Append stores a value at the end of the sequence part.
func (t Table) Append(value Object) Table {
	t.rt.TableAppend(t.h, value.Handle())
	return t
}

func (Table) IsCorrectType(candidate Object) bool {
	return candidate.Kind() == luaobject.KindTable
}

func (Table) ErrorMessage() string { return "Error converting to Table" }
