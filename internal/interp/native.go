package interp

// NativeFunction wraps a host-implemented builtin. spec.md §4.6/§1 fixes
// the entire native surface at a single function, clock(), reachable
// through the global environment.
type NativeFunction struct {
	name  string
	arity int
	fn    func(in *Interpreter, args []interface{}) (interface{}, error)
}

func (n *NativeFunction) Arity() int { return n.arity }

func (n *NativeFunction) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	return n.fn(in, args)
}
