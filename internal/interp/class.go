package interp

import (
	"github.com/cwbudde/golox/internal/interp/runtime"
)

// LoxClass is a runtime class value: callable as a constructor, and the
// method-lookup target for every instance of it.
type LoxClass struct {
	name       string
	superclass *LoxClass
	methods    map[string]*LoxFunction
}

// NewClass builds a class value with a fixed method table; the table is
// never mutated after construction, matching spec.md's class invariant.
func NewClass(name string, superclass *LoxClass, methods map[string]*LoxFunction) *LoxClass {
	return &LoxClass{name: name, superclass: superclass, methods: methods}
}

func (*LoxClass) Type() string      { return "class" }
func (c *LoxClass) String() string { return c.name + " class" }

// FindMethod looks up name in this class's own method table, then walks
// the superclass chain.
func (c *LoxClass) FindMethod(name string) (*LoxFunction, bool) {
	if m, ok := c.methods[name]; ok {
		return m, true
	}
	if c.superclass != nil {
		return c.superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of `init`, or zero if the class declares none.
func (c *LoxClass) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call instantiates the class, running its `init` method (if any) and
// always yielding the new instance regardless of what init returns.
func (c *LoxClass) Call(args []runtime.Value) (runtime.Value, error) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// LoxInstance is a runtime object: a class reference plus its own field
// table, which starts empty and grows only through property assignments
// (`object.field = value`, including `this.field = value`).
type LoxInstance struct {
	class  *LoxClass
	fields map[string]runtime.Value
}

// NewInstance constructs a fresh, field-less instance of class.
func NewInstance(class *LoxClass) *LoxInstance {
	return &LoxInstance{class: class, fields: make(map[string]runtime.Value)}
}

func (*LoxInstance) Type() string { return "instance" }
func (o *LoxInstance) String() string {
	return o.class.name + " instance"
}

// GetProperty looks up name first as a field, then as a method bound to
// this instance.
func (o *LoxInstance) GetProperty(name string) (runtime.Value, bool) {
	if v, ok := o.fields[name]; ok {
		return v, true
	}
	if m, ok := o.class.FindMethod(name); ok {
		return m.Bind(o), true
	}
	return nil, false
}

// SetProperty always succeeds: Lox instances accept any field name at
// any time, there is no predeclared field list.
func (o *LoxInstance) SetProperty(name string, v runtime.Value) bool {
	o.fields[name] = v
	return true
}
