package symbols

import (
	"sync"

	"github.com/Mechachleopteryx/saha/internal/diagnostics"
	"github.com/Mechachleopteryx/saha/internal/instref"
	"github.com/Mechachleopteryx/saha/internal/position"
	"github.com/Mechachleopteryx/saha/internal/typesystem"
)

// SymbolTable is the single process-wide registry of constants, functions,
// behaviors, classes, core classes, and live instances (spec §4.4). It is
// guarded by one coarse-grained lock; individual instances carry their own
// lock underneath it (spec §5).
//
// Lock ordering is mandated and one-directional: a caller that needs both
// the table and an instance takes the table lock first, resolves the
// instance pointer, and releases the table lock before touching the
// instance's own lock. The table lock is never held while blocked on an
// instance lock, and the two are never acquired in the reverse order.
type SymbolTable struct {
	mu sync.RWMutex

	constants   map[string]typesystem.Value
	functions   map[string]Callable
	behaviors   map[string]*BehaviorDefinition
	classes     map[string]*ClassDefinition
	coreClasses map[string]CoreConstructorFn
	instances   map[instref.InstRef]*Instance
}

// NewSymbolTable returns an empty, ready-to-use table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		constants:   make(map[string]typesystem.Value),
		functions:   make(map[string]Callable),
		behaviors:   make(map[string]*BehaviorDefinition),
		classes:     make(map[string]*ClassDefinition),
		coreClasses: make(map[string]CoreConstructorFn),
		instances:   make(map[instref.InstRef]*Instance),
	}
}

// SetConstants installs the global constant pool populated during root
// parsing (spec §4.4: constants are write-once at startup, read-only
// afterward).
func (t *SymbolTable) SetConstants(consts map[string]typesystem.Value) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for name, v := range consts {
		t.constants[name] = v
	}
}

// Constant looks up a global constant by name.
func (t *SymbolTable) Constant(name string) (typesystem.Value, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.constants[name]
	return v, ok
}

// AddFunction registers a free function. Re-registering an existing name
// is rejected (spec §4.4 invariant: "a symbol name, once bound at global
// scope, is never silently rebound").
func (t *SymbolTable) AddFunction(name string, fn Callable) *diagnostics.RuntimeError {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.functions[name]; exists {
		return diagnostics.NewRuntimeError(position.Unknown, diagnostics.ErrR005, name)
	}
	t.functions[name] = fn
	return nil
}

// Function resolves a free function by name.
func (t *SymbolTable) Function(name string) (Callable, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	fn, ok := t.functions[name]
	return fn, ok
}

// AddBehavior registers a behavior definition.
func (t *SymbolTable) AddBehavior(b *BehaviorDefinition) *diagnostics.RuntimeError {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.behaviors[b.Name]; exists {
		return diagnostics.NewRuntimeError(b.Position, diagnostics.ErrR005, b.Name)
	}
	t.behaviors[b.Name] = b
	return nil
}

// Behavior resolves a behavior definition by name.
func (t *SymbolTable) Behavior(name string) (*BehaviorDefinition, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	b, ok := t.behaviors[name]
	return b, ok
}

// AddClass registers a userland class definition.
func (t *SymbolTable) AddClass(c *ClassDefinition) *diagnostics.RuntimeError {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.classes[c.FullyQualifiedName]; exists {
		return diagnostics.NewRuntimeError(c.Position, diagnostics.ErrR005, c.FullyQualifiedName)
	}
	t.classes[c.FullyQualifiedName] = c
	return nil
}

// Class resolves a userland class definition by fully-qualified name.
func (t *SymbolTable) Class(fqName string) (*ClassDefinition, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c, ok := t.classes[fqName]
	return c, ok
}

// AddMethod attaches a method to an already-registered class.
func (t *SymbolTable) AddMethod(fqClassName, methodName string, fn Callable) *diagnostics.RuntimeError {
	t.mu.Lock()
	defer t.mu.Unlock()
	c, ok := t.classes[fqClassName]
	if !ok {
		return diagnostics.NewRuntimeErrorf(position.Unknown, "unknown class %q for method %q", fqClassName, methodName)
	}
	if c.Methods == nil {
		c.Methods = make(map[string]Callable)
	}
	c.Methods[methodName] = fn
	return nil
}

// AddCoreClass registers a host-native constructor under a class name that
// has no userland ClassDefinition (spec §4.7 — List, Dict, and the like).
func (t *SymbolTable) AddCoreClass(name string, ctor CoreConstructorFn) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.coreClasses[name] = ctor
}

// CreateInstRef mints a fresh, globally-unique instance handle (spec §3).
// It does not touch the table; CreateObjectInstance is the only caller that
// pairs a fresh ref with an actual instance registration.
func (t *SymbolTable) CreateInstRef() instref.InstRef {
	return instref.New()
}

// CreateObjectInstance builds a new instance of className, preferring a
// registered userland class and falling back to a core class constructor
// (spec §4.7's create_object_instance/create_core_object_instance
// algorithm). The returned Value wraps a fresh InstRef already present in
// the instance store.
func (t *SymbolTable) CreateObjectInstance(className string, args map[string]typesystem.Value, typeArgs []typesystem.Type, aux map[string]typesystem.Value, pos position.FilePosition) (typesystem.Value, *diagnostics.RuntimeError) {
	t.mu.Lock()
	class, isUserland := t.classes[className]
	ctor, isCore := t.coreClasses[className]
	t.mu.Unlock()

	ref := t.CreateInstRef()

	switch {
	case isUserland:
		props := make(map[string]typesystem.Value, len(class.Properties))
		for name, def := range class.Properties {
			if v, supplied := args[name]; supplied {
				props[name] = v
			} else {
				props[name] = def.Default
			}
		}
		inst := NewInstance(class.FullyQualifiedName, class.Implements, typesystem.NewName(className, typeArgs...), props)

		t.mu.Lock()
		t.instances[ref] = inst
		t.mu.Unlock()

		return typesystem.NewObj(ref), nil

	case isCore:
		inst, err := ctor(ref, args, typeArgs, aux, pos)
		if err != nil {
			return typesystem.Value{}, err
		}

		t.mu.Lock()
		t.instances[ref] = inst
		t.mu.Unlock()

		return typesystem.NewObj(ref), nil

	default:
		return typesystem.Value{}, diagnostics.NewRuntimeError(pos, diagnostics.ErrR004, className)
	}
}

// Instance resolves a live instance by handle.
func (t *SymbolTable) Instance(ref instref.InstRef) (*Instance, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	inst, ok := t.instances[ref]
	return inst, ok
}

// DropInstance releases an instance from the store. Saha has no garbage
// collector or reference counting (spec §9 open question, resolved):
// lifetime is explicit and caller-driven, matching how the language's core
// "drop" builtin is specified to behave.
func (t *SymbolTable) DropInstance(ref instref.InstRef) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.instances, ref)
}

// InstanceIdentity reports the implements-list, fully-qualified class name,
// and named type of a live instance, satisfying the instanceLookup
// interface callable.go's return-type enforcement depends on (spec §4.5).
func (t *SymbolTable) InstanceIdentity(ref instref.InstRef) (implements []string, fqClassName string, namedType typesystem.Type, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	inst, found := t.instances[ref]
	if !found {
		return nil, "", nil, false
	}
	return inst.Implements, inst.FullyQualifiedName, inst.NamedType, true
}
