package engine

import (
	"testing"
)

func TestRuntime_TableFields(t *testing.T) {
	rt := New(nil)
	defer rt.Close()

	tbl := rt.NewTable()
	if !rt.IsTable(tbl) {
		t.Fatal("NewTable should produce a table")
	}

	rt.SetTableField(tbl, "name", rt.NewString("widget"))
	if got := rt.StringValue(rt.TableField(tbl, "name")); got != "widget" {
		t.Fatalf("Expected widget, got %q", got)
	}

	// Missing field reads as nil
	if !rt.IsNil(rt.TableField(tbl, "absent")) {
		t.Fatal("Missing field should read as nil")
	}

	// Lua code sees the same table contents
	rt.SetGlobal("t", tbl)
	out, err := rt.Eval("return t.name")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if rt.StringValue(out) != "widget" {
		t.Fatal("Field should be visible from Lua")
	}
}

func TestRuntime_TableSequence(t *testing.T) {
	rt := New(nil)
	defer rt.Close()

	tbl := rt.NewTable()
	if rt.TableLength(tbl) != 0 {
		t.Fatal("Fresh table should have length 0")
	}

	rt.TableAppend(tbl, rt.NewInteger(10))
	rt.TableAppend(tbl, rt.NewInteger(20))
	rt.TableAppend(tbl, rt.NewInteger(30))

	if n := rt.TableLength(tbl); n != 3 {
		t.Fatalf("Expected length 3, got %d", n)
	}
	if got := rt.IntegerValue(rt.TableIndex(tbl, 2)); got != 20 {
		t.Fatalf("Expected 20 at index 2, got %d", got)
	}

	rt.SetTableIndex(tbl, 2, rt.NewInteger(99))
	if got := rt.IntegerValue(rt.TableIndex(tbl, 2)); got != 99 {
		t.Fatalf("Expected 99 after overwrite, got %d", got)
	}
}

func TestRuntime_TableArbitraryKeys(t *testing.T) {
	rt := New(nil)
	defer rt.Close()

	tbl := rt.NewTable()
	key := rt.NewBoolean(true)
	rt.TableSet(tbl, key, rt.NewString("yes"))

	if got := rt.StringValue(rt.TableGet(tbl, key)); got != "yes" {
		t.Fatalf("Expected yes, got %q", got)
	}
	if !rt.IsNil(rt.TableGet(tbl, rt.NewBoolean(false))) {
		t.Fatal("Unset key should read as nil")
	}

	// A table can key another table
	inner := rt.NewTable()
	rt.TableSet(tbl, inner, rt.NewInteger(1))
	if rt.IntegerValue(rt.TableGet(tbl, inner)) != 1 {
		t.Fatal("Table key should round trip")
	}
}

func TestRuntime_TableAccessIsRaw(t *testing.T) {
	rt := New(nil)
	defer rt.Close()

	// An instance is a table; raw access must not trigger method dispatch
	cls := rt.NewClass("Record", 0)
	rt.DefineMethod(cls, "field", constString("method result"))
	inst := rt.NewInstance(cls, nil)

	if !rt.IsNil(rt.TableField(inst, "field")) {
		t.Fatal("Raw read should bypass the class chain")
	}
}
