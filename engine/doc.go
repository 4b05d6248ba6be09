// Package engine wraps an embedded Lua state with the primitives the typed
// object layer is built on: handle management, class introspection, method
// definition, dynamic dispatch and instance-variable access.
//
// # Handles
//
// A Handle is an opaque token for a value owned by the Lua state. The engine
// pins each captured value in a registry-side table so the collector cannot
// reclaim it while the handle is live; Release un-pins a handle and recycles
// its slot. Handles have copy semantics and no ownership: any number of
// native-side views may share one handle without affecting the value.
//
// # Class Model
//
// Classes are Lua tables marked with a "__class" field, with "__index"
// pointing at themselves so instances resolve methods through the standard
// metatable chain. Inheritance is the metatable link between class tables.
// A singleton class is a per-object class (marked "__singleton") spliced
// between an object and its class, created on demand by SingletonClassOf.
//
// Every coarse value kind has a builtin class. The String, Table and Number
// classes chain to the stdlib string, table and math libraries when the
// libraries are open, so RespondTo("upper") holds for any string value.
//
// One consequence of building on metatables: ClassOf of a class table yields
// its superclass, the prototypal reading the host runtime itself uses.
//
// # Failure Model
//
// Operations the object layer owns return values or typed errors. Operations
// that re-enter the runtime's dispatcher (Call, DefineMethod on sealed kinds,
// NewInstance) signal failure through the runtime's own control flow: a Lua
// error, which unwinds to the innermost protected call. Eval and CallValue
// are protected embedder entry points and return Go errors instead.
//
// # Thread Safety
//
// Runtime is NOT safe for concurrent use. It belongs to a single goroutine;
// callbacks run synchronously on that goroutine and may re-enter the Runtime.
package engine
