package object

import (
	"testing"

	luaobject "github.com/lualink/lua-object"
	"github.com/lualink/lua-object/engine"
)

func TestObject_ClassGreeting(t *testing.T) {
	rt := engine.New(nil)
	defer rt.Close()

	hello := NewClass(rt, "Hello", nil)
	hello.DefineMethod("greeting", func(self Any, args Arguments) Object {
		return NewString(rt, "Greeting from class")
	})

	inst := hello.NewInstance()
	if !inst.RespondTo("greeting") {
		t.Fatal("Instance should respond to the class method")
	}

	out, err := TryConvert[Str](inst.Send("greeting"))
	if err != nil {
		t.Fatalf("Conversion failed: %v", err)
	}
	if out.String() != "Greeting from class" {
		t.Fatalf("Expected greeting, got %q", out.String())
	}
}

func TestObject_SendWithArguments(t *testing.T) {
	rt := engine.New(nil)
	defer rt.Close()

	calc := NewClass(rt, "Calc", nil)
	calc.DefineMethod("mul", func(self Any, args Arguments) Object {
		a := UnsafeTo[Integer](args.Get(0))
		b := UnsafeTo[Integer](args.Get(1))
		return NewInteger(rt, a.Int()*b.Int())
	})

	inst := calc.NewInstance()
	out := inst.Send("mul", NewInteger(rt, 6), NewInteger(rt, 7))
	n, err := TryConvert[Integer](out)
	if err != nil {
		t.Fatalf("Conversion failed: %v", err)
	}
	if n.Int() != 42 {
		t.Fatalf("Expected 42, got %d", n.Int())
	}
}

func TestObject_CallbackSelf(t *testing.T) {
	rt := engine.New(nil)
	defer rt.Close()

	cls := NewClass(rt, "Tagged", nil)
	cls.DefineMethod("tag", func(self Any, args Arguments) Object {
		self.SetInstanceVariable("@tag", args.Get(0))
		return self
	})

	inst := cls.NewInstance()
	out := inst.Send("tag", NewString(rt, "red"))
	if !out.Equal(inst) {
		t.Fatal("Callback returning self should hand back the receiver")
	}

	tag, err := TryConvert[Str](inst.InstanceVariable("@tag"))
	if err != nil {
		t.Fatalf("Conversion failed: %v", err)
	}
	if tag.String() != "red" {
		t.Fatalf("Expected red, got %q", tag.String())
	}
}

func TestObject_CallbackNilReturn(t *testing.T) {
	rt := engine.New(nil)
	defer rt.Close()

	cls := NewClass(rt, "Quiet", nil)
	cls.DefineMethod("noop", func(self Any, args Arguments) Object {
		return nil
	})

	out := cls.NewInstance().Send("noop")
	if !out.IsNil() {
		t.Fatal("A nil callback return should surface as nil")
	}
}

func TestObject_RedefinitionLastWriteWins(t *testing.T) {
	rt := engine.New(nil)
	defer rt.Close()

	cls := NewClass(rt, "Versioned", nil)
	inst := cls.NewInstance()

	cls.DefineMethod("version", func(self Any, args Arguments) Object {
		return NewInteger(rt, 1)
	})
	cls.DefineMethod("version", func(self Any, args Arguments) Object {
		return NewInteger(rt, 2)
	})

	n := UnsafeTo[Integer](inst.Send("version"))
	if n.Int() != 2 {
		t.Fatalf("Expected the later definition, got %d", n.Int())
	}
}

func TestObject_SingletonMethod(t *testing.T) {
	rt := engine.New(nil)
	defer rt.Close()

	cls := NewClass(rt, "Node", nil)
	a := cls.NewInstance()
	b := cls.NewInstance()

	a.DefineSingletonMethod("root", func(self Any, args Arguments) Object {
		return NewBoolean(rt, true)
	})

	if !a.RespondTo("root") {
		t.Fatal("Receiver should respond to its singleton method")
	}
	if b.RespondTo("root") {
		t.Fatal("Sibling instances must not respond")
	}
	if a.SingletonClass().Handle() == a.Class().Handle() {
		t.Fatal("Singleton class must be distinct from the class")
	}
	if a.Class().Handle() != cls.Handle() {
		t.Fatal("Class must stay visible behind the singleton")
	}
}

func TestObject_InstanceVariables(t *testing.T) {
	rt := engine.New(nil)
	defer rt.Close()

	inst := NewClass(rt, "Box", nil).NewInstance()

	if !inst.InstanceVariable("@content").IsNil() {
		t.Fatal("Unset slot should read as nil")
	}

	v := NewString(rt, "thing")
	stored := inst.SetInstanceVariable("@content", v)
	if stored.Handle() != v.Handle() {
		t.Fatal("Set should return the stored value's handle")
	}

	got := inst.InstanceVariable("@content")
	if !got.Equal(v) {
		t.Fatal("Read should return the stored value")
	}
}

func TestObject_IsNil(t *testing.T) {
	rt := engine.New(nil)
	defer rt.Close()

	if !NewNil(rt).IsNil() {
		t.Fatal("Nil wrapper should be nil")
	}
	for _, o := range []Object{
		NewBoolean(rt, false),
		NewInteger(rt, 0),
		NewString(rt, ""),
		NewTable(rt),
	} {
		if o.IsNil() {
			t.Fatalf("%s value must not be nil", o.Kind())
		}
	}
}

func TestObject_KindAndClass(t *testing.T) {
	rt := engine.New(nil)
	defer rt.Close()

	s := NewString(rt, "x")
	if s.Kind() != luaobject.KindString {
		t.Fatalf("Expected string kind, got %s", s.Kind())
	}
	if s.Class().Name() != "String" {
		t.Fatalf("Expected builtin String class, got %q", s.Class().Name())
	}

	cls := NewClass(rt, "Custom", nil)
	inst := cls.NewInstance()
	if inst.Kind() != luaobject.KindTable {
		t.Fatal("Instances are table values")
	}
	if inst.Class().Name() != "Custom" {
		t.Fatalf("Expected Custom, got %q", inst.Class().Name())
	}
}

func TestObject_Equal(t *testing.T) {
	rt := engine.New(nil)
	defer rt.Close()

	a := NewString(rt, "same")
	b := NewString(rt, "same")
	if !a.Equal(b) {
		t.Fatal("Equal strings should compare equal")
	}

	t1 := NewTable(rt)
	t2 := NewTable(rt)
	if t1.Equal(t2) {
		t.Fatal("Distinct tables must not compare equal")
	}
	if !t1.Equal(t1.ToAny()) {
		t.Fatal("A value equals itself through any wrapper")
	}
}

func TestObject_StdlibMethodsOnStrings(t *testing.T) {
	rt := engine.New(nil)
	defer rt.Close()

	s := NewString(rt, "abc")
	if !s.RespondTo("upper") {
		t.Fatal("Strings should resolve library methods")
	}
	out, err := TryConvert[Str](s.Send("upper"))
	if err != nil {
		t.Fatalf("Conversion failed: %v", err)
	}
	if out.String() != "ABC" {
		t.Fatalf("Expected ABC, got %q", out.String())
	}
}

func TestArguments_Get(t *testing.T) {
	rt := engine.New(nil)
	defer rt.Close()

	cls := NewClass(rt, "Probe", nil)
	var got int
	cls.DefineMethod("probe", func(self Any, args Arguments) Object {
		got = args.Len()
		if args.Get(0).Handle() == 0 && args.Len() > 0 {
			t.Error("In-range argument should carry a handle")
		}
		if args.Get(99).Handle() != 0 {
			t.Error("Out-of-range argument should be the zero wrapper")
		}
		return nil
	})

	cls.NewInstance().Send("probe", NewInteger(rt, 1), NewInteger(rt, 2))
	if got != 2 {
		t.Fatalf("Expected 2 arguments, got %d", got)
	}
}
