package symbols_test

import (
	"testing"

	"github.com/Mechachleopteryx/saha/internal/position"
	"github.com/Mechachleopteryx/saha/internal/symbols"
	"github.com/Mechachleopteryx/saha/internal/typesystem"
)

// newListAndDict builds a fresh List<int> and Dict<str> instance through
// the normal CreateObjectInstance/core-class path (spec §8 scenario 4),
// returning the live *Instance each native accessor below operates on.
func newListAndDict(t *testing.T) (*symbols.Instance, *symbols.Instance) {
	t.Helper()
	st := symbols.NewSymbolTable()
	symbols.RegisterCoreCollections(st)

	listVal, err := st.CreateObjectInstance("List", map[string]typesystem.Value{}, []typesystem.Type{typesystem.TInt}, nil, position.Unknown)
	if err != nil {
		t.Fatalf("CreateObjectInstance(List) failed: %v", err)
	}
	list, ok := st.Instance(listVal.Obj)
	if !ok {
		t.Fatal("List instance not found in store")
	}

	dictVal, err := st.CreateObjectInstance("Dict", map[string]typesystem.Value{}, []typesystem.Type{typesystem.TStr}, nil, position.Unknown)
	if err != nil {
		t.Fatalf("CreateObjectInstance(Dict) failed: %v", err)
	}
	dict, ok := st.Instance(dictVal.Obj)
	if !ok {
		t.Fatal("Dict instance not found in store")
	}

	return list, dict
}

func TestListAppendGetLenElements(t *testing.T) {
	list, _ := newListAndDict(t)

	if got := list.ListLen(); got != 0 {
		t.Fatalf("ListLen() on a fresh list = %d, want 0", got)
	}

	for _, v := range []int64{10, 20, 30} {
		if err := list.ListAppend(typesystem.NewInt(v)); err != nil {
			t.Fatalf("ListAppend(%d) failed: %v", v, err)
		}
	}

	if got := list.ListLen(); got != 3 {
		t.Fatalf("ListLen() = %d, want 3", got)
	}

	got, err := list.ListGet(1)
	if err != nil {
		t.Fatalf("ListGet(1) failed: %v", err)
	}
	if got.Int != 20 {
		t.Fatalf("ListGet(1) = %d, want 20", got.Int)
	}

	if _, err := list.ListGet(3); err == nil {
		t.Fatal("ListGet(3) succeeded on an out-of-range index, want an error")
	}

	elements := list.ListElements()
	if len(elements) != 3 {
		t.Fatalf("ListElements() returned %d elements, want 3", len(elements))
	}
	elements[0] = typesystem.NewInt(999)
	if got, _ := list.ListGet(0); got.Int != 10 {
		t.Fatal("mutating the ListElements() snapshot affected the backing list")
	}
}

func TestListAccessorsOnNonListInstanceFail(t *testing.T) {
	_, dict := newListAndDict(t)

	if err := dict.ListAppend(typesystem.NewInt(1)); err == nil {
		t.Fatal("ListAppend on a Dict instance succeeded, want an error")
	}
	if _, err := dict.ListGet(0); err == nil {
		t.Fatal("ListGet on a Dict instance succeeded, want an error")
	}
	if got := dict.ListLen(); got != 0 {
		t.Fatalf("ListLen on a Dict instance = %d, want 0", got)
	}
	if got := dict.ListElements(); got != nil {
		t.Fatalf("ListElements on a Dict instance = %v, want nil", got)
	}
}

func TestDictSetGetEntriesPreservesInsertionOrder(t *testing.T) {
	_, dict := newListAndDict(t)

	if err := dict.DictSet("a", typesystem.NewStr("first")); err != nil {
		t.Fatalf("DictSet(a) failed: %v", err)
	}
	if err := dict.DictSet("b", typesystem.NewStr("second")); err != nil {
		t.Fatalf("DictSet(b) failed: %v", err)
	}
	// Overwriting an existing key must not duplicate it in insertion order.
	if err := dict.DictSet("a", typesystem.NewStr("updated")); err != nil {
		t.Fatalf("DictSet(a) overwrite failed: %v", err)
	}

	v, ok := dict.DictGet("a")
	if !ok || v.Str != "updated" {
		t.Fatalf("DictGet(a) = (%v, %v), want (updated, true)", v, ok)
	}
	if _, ok := dict.DictGet("missing"); ok {
		t.Fatal("DictGet(missing) unexpectedly found a value")
	}

	keys, vals := dict.DictEntries()
	if len(keys) != 2 || len(vals) != 2 {
		t.Fatalf("DictEntries() returned %d keys and %d values, want 2 and 2", len(keys), len(vals))
	}
	if keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("DictEntries() keys = %v, want [a b]", keys)
	}
	if vals[0].Str != "updated" || vals[1].Str != "second" {
		t.Fatalf("DictEntries() vals = %v, want [updated second]", vals)
	}
}

func TestDictAccessorsOnNonDictInstanceFail(t *testing.T) {
	list, _ := newListAndDict(t)

	if err := list.DictSet("k", typesystem.VoidValue); err == nil {
		t.Fatal("DictSet on a List instance succeeded, want an error")
	}
	if _, ok := list.DictGet("k"); ok {
		t.Fatal("DictGet on a List instance unexpectedly found a value")
	}
	keys, vals := list.DictEntries()
	if keys != nil || vals != nil {
		t.Fatal("DictEntries on a List instance returned non-nil slices")
	}
}
