// Package luaobject provides a typed object model over an embedded Lua runtime.
//
// The library lets Go code define classes, methods and object behavior inside
// a Lua state, call back into the runtime, and interpret runtime-managed
// values through strongly-typed handles. The Lua state owns all value memory;
// this layer only ever holds transient, reconstructible views onto it.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	luaobject/       Root package with the shared Kind vocabulary
//	├── engine/      Runtime wrapper over a Lua state: handle table, class
//	│                model, method dispatch, instance-variable access
//	├── object/      Capability surface: Object interface, typed wrappers,
//	│                verified and unchecked conversion, callback marshalling
//	├── errors/      Structured error types for debugging
//	└── cmd/repl/    Script runner and interactive inspector
//
// # Quick Start
//
// Define a class with a method and call it dynamically:
//
//	rt := engine.New(nil)
//	defer rt.Close()
//
//	hello := object.NewClass(rt, "Hello", nil)
//	hello.DefineMethod("greeting", func(self object.Any, args object.Arguments) object.Object {
//	    return object.NewString(rt, "Greeting from class")
//	})
//
//	inst := hello.NewInstance()
//	out, _ := object.TryConvert[object.Str](inst.Send("greeting"))
//	fmt.Println(out.String()) // "Greeting from class"
//
// # Conversions
//
// Two conversion paths exist and are never merged:
//
//   - object.TryConvert[T] re-checks the value's runtime class and fails with
//     a typed error on mismatch. It is the only safe general-purpose downcast.
//   - object.UnsafeTo[T] reinterprets the handle without any check. The caller
//     asserts correctness; a mismatched reinterpretation produces undefined
//     behavior at the next operation that assumes the wrong shape.
//
// # Failure Model
//
// Safe, layer-owned operations return typed errors. Dynamic sends, method
// definition on sealed kinds, and instantiation pass host-runtime errors
// through unchanged: inside a callback they unwind to the enclosing protected
// call, exactly as an error raised by Lua code would.
//
// # Thread Safety
//
// A Runtime and every wrapper bound to it belong to a single goroutine.
// Callbacks execute synchronously on the dispatching goroutine and may
// re-enter the runtime freely.
package luaobject
