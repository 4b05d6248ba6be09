package engine

import (
	stderrors "errors"
	"testing"

	luaobject "github.com/lualink/lua-object"
	"github.com/lualink/lua-object/errors"
)

func TestRuntime_ValueRoundTrip(t *testing.T) {
	rt := New(nil)
	defer rt.Close()

	tests := []struct {
		name  string
		make  func() Handle
		kind  luaobject.Kind
		check func(h Handle) bool
	}{
		{"string", func() Handle { return rt.NewString("hello") }, luaobject.KindString,
			func(h Handle) bool { return rt.StringValue(h) == "hello" }},
		{"integer", func() Handle { return rt.NewInteger(42) }, luaobject.KindNumber,
			func(h Handle) bool { return rt.IntegerValue(h) == 42 }},
		{"number", func() Handle { return rt.NewNumber(1.5) }, luaobject.KindNumber,
			func(h Handle) bool { return rt.NumberValue(h) == 1.5 }},
		{"boolean", func() Handle { return rt.NewBoolean(true) }, luaobject.KindBoolean,
			func(h Handle) bool { return rt.BooleanValue(h) }},
		{"nil", func() Handle { return rt.NewNil() }, luaobject.KindNil,
			func(h Handle) bool { return rt.IsNil(h) }},
		{"table", func() Handle { return rt.NewTable() }, luaobject.KindTable,
			func(h Handle) bool { return rt.IsTable(h) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.make()
			if h == 0 {
				t.Fatal("Expected non-zero handle")
			}
			if got := rt.KindOf(h); got != tt.kind {
				t.Fatalf("Expected kind %s, got %s", tt.kind, got)
			}
			if !tt.check(h) {
				t.Fatal("Value did not round trip")
			}
		})
	}
}

func TestRuntime_ReleaseReusesSlot(t *testing.T) {
	rt := New(nil)
	defer rt.Close()

	before := rt.HandleCount()
	h := rt.NewString("gone")
	if rt.HandleCount() != before+1 {
		t.Fatal("Capture should add exactly one live handle")
	}
	if !rt.Live(h) {
		t.Fatal("Captured handle should be live")
	}

	rt.Release(h)
	if rt.Live(h) {
		t.Fatal("Released handle should not be live")
	}
	if rt.HandleCount() != before {
		t.Fatal("Release should return the slot")
	}

	// Released slot pushes nil, not the stale value
	if !rt.IsNil(h) {
		t.Fatal("Released handle should read as nil")
	}
}

func TestRuntime_Equal(t *testing.T) {
	rt := New(nil)
	defer rt.Close()

	a := rt.NewString("same")
	b := rt.NewString("same")
	c := rt.NewString("other")

	if !rt.Equal(a, b) {
		t.Fatal("Identical strings should compare equal")
	}
	if rt.Equal(a, c) {
		t.Fatal("Distinct strings should not compare equal")
	}

	// Two handles can pin the same table
	tbl := rt.NewTable()
	other := rt.NewTable()
	if rt.Equal(tbl, other) {
		t.Fatal("Distinct tables should not compare equal")
	}
}

func TestRuntime_Globals(t *testing.T) {
	rt := New(nil)
	defer rt.Close()

	h := rt.NewInteger(7)
	rt.SetGlobal("answer", h)

	got := rt.Global("answer")
	if rt.IntegerValue(got) != 7 {
		t.Fatalf("Expected 7, got %d", rt.IntegerValue(got))
	}

	missing := rt.Global("no_such_global")
	if !rt.IsNil(missing) {
		t.Fatal("Missing global should read as nil")
	}
}

func TestRuntime_Eval(t *testing.T) {
	rt := New(nil)
	defer rt.Close()

	h, err := rt.Eval("return 40 + 2")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if rt.IntegerValue(h) != 42 {
		t.Fatalf("Expected 42, got %d", rt.IntegerValue(h))
	}
}

func TestRuntime_EvalNoResult(t *testing.T) {
	rt := New(nil)
	defer rt.Close()

	h, err := rt.Eval("x = 10")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if !rt.IsNil(h) {
		t.Fatal("Chunk without results should yield a nil handle")
	}

	// Side effect still happened
	if rt.IntegerValue(rt.Global("x")) != 10 {
		t.Fatal("Global assignment from chunk not visible")
	}
}

func TestRuntime_EvalError(t *testing.T) {
	rt := New(nil)
	defer rt.Close()

	top := rt.State().Top()
	_, err := rt.Eval("error('boom')")
	if err == nil {
		t.Fatal("Expected eval error")
	}

	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("Expected structured error, got %T", err)
	}
	if e.Kind != errors.KindHostError {
		t.Fatalf("Expected host_error kind, got %s", e.Kind)
	}
	if rt.State().Top() != top {
		t.Fatal("Failed eval should restore the stack")
	}

	// Runtime stays usable
	h, err := rt.Eval("return 'still alive'")
	if err != nil {
		t.Fatalf("Eval after error failed: %v", err)
	}
	if rt.StringValue(h) != "still alive" {
		t.Fatal("Runtime unusable after failed eval")
	}
}

func TestRuntime_EvalSyntaxError(t *testing.T) {
	rt := New(nil)
	defer rt.Close()

	if _, err := rt.Eval("return ((("); err == nil {
		t.Fatal("Expected syntax error")
	}
}

func TestRuntime_Close(t *testing.T) {
	rt := New(nil)

	rt.NewString("pinned")
	if err := rt.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if rt.HandleCount() != 0 {
		t.Fatal("Close should drop all handles")
	}

	if _, err := rt.Eval("return 1"); err == nil {
		t.Fatal("Eval after Close should fail")
	}
	var e *errors.Error
	if err := rt.Close(); err != nil {
		t.Fatalf("Second Close failed: %v", err)
	}
	_, err := rt.Eval("return 1")
	if !stderrors.As(err, &e) || e.Kind != errors.KindClosed {
		t.Fatalf("Expected closed error, got %v", err)
	}
}

func TestRuntime_DisableStdlib(t *testing.T) {
	rt := New(&Config{DisableStdlib: true})
	defer rt.Close()

	s := rt.NewString("abc")
	if rt.RespondTo(s, "upper") {
		t.Fatal("Without stdlib, strings should not resolve library methods")
	}
}
