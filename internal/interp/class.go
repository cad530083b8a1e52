package interp

// Class is a runtime class value: a name, an optional superclass, and a
// method table, per spec.md §4.6. Grounded on the teacher's
// internal/interp/class.go ClassInfo, trimmed to Lox's much smaller
// surface — no constructor overloads, class vars/methods, properties,
// operators or external/abstract flags, none of which Lox has (a single
// `init` initializer is the whole story).
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*UserFunction
}

func NewClass(name string, superclass *Class, methods map[string]*UserFunction) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

// findMethod searches this class's table, then recursively the
// superclass chain, per spec.md §4.6.
func (c *Class) findMethod(name string) (*UserFunction, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.findMethod(name)
	}
	return nil, false
}

// Arity is the arity of init if present, else 0.
func (c *Class) Arity() int {
	if init, ok := c.findMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a fresh Instance and, if an init method exists, binds
// and invokes it with args before returning the instance.
func (c *Class) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	instance := NewInstance(c)
	if init, ok := c.findMethod("init"); ok {
		if _, err := init.bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a heap object referencing its class and holding a mutable
// field map, per spec.md §3/§4.6.
type Instance struct {
	Class  *Class
	Fields map[string]interface{}
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]interface{})}
}

// BoundMethod pairs a UserFunction with the Instance it was looked up
// on — produced by Instance.Get (spec.md §4.6). The evaluator's Super
// handling returns a UserFunction already bound with bind instead.
type BoundMethod struct {
	Method   *UserFunction
	Receiver *Instance
}

func (b *BoundMethod) Arity() int { return b.Method.Arity() }

func (b *BoundMethod) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	return b.Method.bind(b.Receiver).Call(in, args)
}
