// Package object implements the typed object model over an engine.Runtime.
//
// Every runtime-managed value is seen through a wrapper: a small struct
// holding exactly one handle and the runtime it belongs to. All wrappers
// embed Base, which provides the full capability surface described by the
// Object interface: class introspection, method definition, dynamic send,
// instance-variable access and conversion. Any is the type-erased wrapper
// with no class assertion at all; the remaining types (Str, Integer, Float,
// Bool, Nil, Table, Func, Class) each assert one builtin kind.
//
// A wrapper's existence asserts nothing about the value's actual runtime
// class unless the wrapper came out of TryConvert. UnsafeTo constructs a
// wrapper without any check; it exists for callers that own both sides of
// the boundary and is the library's single deliberate unsafe surface.
//
// Wrappers are ephemeral views. Constructing or dropping any number of them
// over the same handle has no effect on the referenced value.
package object
