package interp

import "fmt"

// Get implements spec.md §4.6's Instance.get: fields shadow methods.
func (i *Instance) Get(name string) (interface{}, error) {
	if v, ok := i.Fields[name]; ok {
		return v, nil
	}
	if m, ok := i.Class.findMethod(name); ok {
		return &BoundMethod{Method: m, Receiver: i}, nil
	}
	return nil, &RuntimeError{Message: fmt.Sprintf("Undefined property '%s'.", name)}
}

// Set inserts or overwrites a field, per spec.md §4.6.
func (i *Instance) Set(name string, value interface{}) {
	i.Fields[name] = value
}
