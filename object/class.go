package object

import (
	"github.com/lualink/lua-object/engine"
	"github.com/lualink/lua-object/errors"
)

// Class wraps a runtime class: the registration target for methods and
// the introspection result of every "class of" query. Singleton classes
// are Classes too.
type Class struct {
	Base
}

// NewClass creates a class, optionally inheriting from a parent, and binds
// it to a global of the same name.
func NewClass(rt *engine.Runtime, name string, parent *Class) Class {
	var ph engine.Handle
	if parent != nil {
		ph = parent.h
	}
	return Class{base(rt, rt.NewClass(name, ph))}
}

// ClassFromName resolves an already-registered class by its global name.
func ClassFromName(rt *engine.Runtime, name string) (Class, error) {
	h, ok := rt.LookupClass(name)
	if !ok {
		return Class{}, errors.NotFound(errors.PhaseDefine, "class", name)
	}
	return Class{base(rt, h)}, nil
}

// Name returns the class's registered name, or "" for anonymous and
// singleton classes.
func (c Class) Name() string {
	return c.rt.ClassName(c.h)
}

// Superclass returns the parent class, when one exists.
func (c Class) Superclass() (Class, bool) {
	h, ok := c.rt.Superclass(c.h)
	if !ok {
		return Class{}, false
	}
	return Class{base(c.rt, h)}, true
}

// NewInstance creates an instance and runs its initialize method, when
// defined, with the given arguments.
func (c Class) NewInstance(args ...Object) Any {
	return Any{base(c.rt, c.rt.NewInstance(c.h, handles(args)))}
}

// Define runs a registration block with the class as argument and returns
// the class, for nested reopen-class style definitions.
func (c Class) Define(f func(c Class)) Class {
	f(c)
	return c
}

// AttrReader defines a method returning the instance variable of the same
// name. The backing slot is "@"-prefixed so the reader and the slot never
// collide in lookup.
func (c Class) AttrReader(name string) Class {
	slot := "@" + name
	c.DefineMethod(name, func(self Any, args Arguments) Object {
		return self.InstanceVariable(slot)
	})
	return c
}

// AttrWriter defines a "name=" method assigning the instance variable of
// the same name.
func (c Class) AttrWriter(name string) Class {
	slot := "@" + name
	c.DefineMethod(name+"=", func(self Any, args Arguments) Object {
		return self.SetInstanceVariable(slot, args.Get(0))
	})
	return c
}

// AttrAccessor defines both reader and writer.
func (c Class) AttrAccessor(name string) Class {
	return c.AttrReader(name).AttrWriter(name)
}

func (Class) IsCorrectType(candidate Object) bool {
	return candidate.Runtime().IsClass(candidate.Handle())
}

func (Class) ErrorMessage() string { return "Error converting to Class" }
