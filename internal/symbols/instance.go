package symbols

import (
	"sync"

	"github.com/Mechachleopteryx/saha/internal/typesystem"
)

// Instance is a heap-resident Saha object (spec §3). Property storage is
// guarded by a per-instance mutex, independent from the symbol table's
// own lock that guards the surrounding container (spec §5).
type Instance struct {
	mu                 sync.Mutex
	FullyQualifiedName string
	Implements         []string
	NamedType          typesystem.Type
	properties         map[string]typesystem.Value

	// list and dict back the core List/Dict classes (internal/symbols
	// core_collections.go); nil for every userland instance.
	list *listBacking
	dict *dictBacking
}

// NewInstance constructs an Instance ready for registration in the
// symbol table's instance store.
func NewInstance(fqName string, implements []string, namedType typesystem.Type, initialProps map[string]typesystem.Value) *Instance {
	props := make(map[string]typesystem.Value, len(initialProps))
	for k, v := range initialProps {
		props[k] = v
	}
	return &Instance{
		FullyQualifiedName: fqName,
		Implements:         implements,
		NamedType:          namedType,
		properties:         props,
	}
}

// GetProperty reads a property under the instance lock.
func (i *Instance) GetProperty(name string) (typesystem.Value, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	v, ok := i.properties[name]
	return v, ok
}

// SetProperty writes a property under the instance lock.
func (i *Instance) SetProperty(name string, v typesystem.Value) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.properties[name] = v
}

// Implements, NamedType and FullyQualifiedName are read without locking
// by InstanceIdentity callers: they are set once at construction and
// never mutated afterward, unlike properties.
