package symbols

import (
	"github.com/Mechachleopteryx/saha/internal/config"
	"github.com/Mechachleopteryx/saha/internal/diagnostics"
	"github.com/Mechachleopteryx/saha/internal/instref"
	"github.com/Mechachleopteryx/saha/internal/position"
	"github.com/Mechachleopteryx/saha/internal/typesystem"
)

// RegisterCoreCollections installs List and Dict as core classes on t
// (spec §4.7, §8 scenario 4). Both are single-type-parameterized
// containers with no userland-visible properties; their state lives in the
// Go-native list/dict backing fields on Instance.
func RegisterCoreCollections(t *SymbolTable) {
	t.AddCoreClass(config.ListClassName, newListInstance)
	t.AddCoreClass(config.DictClassName, newDictInstance)
}

func newListInstance(ref instref.InstRef, args map[string]typesystem.Value, typeArgs []typesystem.Type, aux map[string]typesystem.Value, pos position.FilePosition) (*Instance, *diagnostics.RuntimeError) {
	elemType := typesystem.TObj
	if len(typeArgs) > 0 {
		elemType = typeArgs[0]
	}
	named := typesystem.NewName(config.ListClassName, elemType)
	inst := NewInstance(config.ListClassName, nil, named, nil)
	inst.list = &listBacking{elements: []typesystem.Value{}}
	return inst, nil
}

func newDictInstance(ref instref.InstRef, args map[string]typesystem.Value, typeArgs []typesystem.Type, aux map[string]typesystem.Value, pos position.FilePosition) (*Instance, *diagnostics.RuntimeError) {
	valType := typesystem.TObj
	if len(typeArgs) > 0 {
		valType = typeArgs[0]
	}
	named := typesystem.NewName(config.DictClassName, valType)
	inst := NewInstance(config.DictClassName, nil, named, nil)
	inst.dict = &dictBacking{entries: map[string]typesystem.Value{}}
	return inst, nil
}

// listBacking and dictBacking hold a core collection's native Go storage.
// Saha's Value has no slice/map arm (spec §3), so List and Dict keep their
// elements outside it, behind the same Instance/InstRef façade every
// userland object uses — the Go analogue of original_source's SahaObject
// trait letting core types carry arbitrary native state.
type listBacking struct {
	elements []typesystem.Value
}

type dictBacking struct {
	entries map[string]typesystem.Value
	order   []string
}

// ListAppend appends v to a List instance's backing storage.
func (i *Instance) ListAppend(v typesystem.Value) *diagnostics.RuntimeError {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.list == nil {
		return diagnostics.NewRuntimeErrorf(position.Unknown, "instance is not a List")
	}
	i.list.elements = append(i.list.elements, v)
	return nil
}

// ListGet reads the element at idx from a List instance.
func (i *Instance) ListGet(idx int) (typesystem.Value, *diagnostics.RuntimeError) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.list == nil {
		return typesystem.Value{}, diagnostics.NewRuntimeErrorf(position.Unknown, "instance is not a List")
	}
	if idx < 0 || idx >= len(i.list.elements) {
		return typesystem.Value{}, diagnostics.NewRuntimeErrorf(position.Unknown, "list index %d out of range (len %d)", idx, len(i.list.elements))
	}
	return i.list.elements[idx], nil
}

// ListLen reports the number of elements currently held by a List instance.
func (i *Instance) ListLen() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.list == nil {
		return 0
	}
	return len(i.list.elements)
}

// ListElements returns a snapshot copy of a List instance's elements, used
// by `for (k, v) in list` iteration.
func (i *Instance) ListElements() []typesystem.Value {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.list == nil {
		return nil
	}
	out := make([]typesystem.Value, len(i.list.elements))
	copy(out, i.list.elements)
	return out
}

// DictSet inserts or overwrites key in a Dict instance.
func (i *Instance) DictSet(key string, v typesystem.Value) *diagnostics.RuntimeError {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.dict == nil {
		return diagnostics.NewRuntimeErrorf(position.Unknown, "instance is not a Dict")
	}
	if _, exists := i.dict.entries[key]; !exists {
		i.dict.order = append(i.dict.order, key)
	}
	i.dict.entries[key] = v
	return nil
}

// DictGet reads key from a Dict instance.
func (i *Instance) DictGet(key string) (typesystem.Value, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.dict == nil {
		return typesystem.Value{}, false
	}
	v, ok := i.dict.entries[key]
	return v, ok
}

// DictEntries returns a snapshot of a Dict instance's entries in insertion
// order, for `for (k, v) in dict` iteration.
func (i *Instance) DictEntries() ([]string, []typesystem.Value) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.dict == nil {
		return nil, nil
	}
	keys := make([]string, len(i.dict.order))
	vals := make([]typesystem.Value, len(i.dict.order))
	for idx, k := range i.dict.order {
		keys[idx] = k
		vals[idx] = i.dict.entries[k]
	}
	return keys, vals
}
