package interp

// Callable is the contract shared by every invocable runtime value, per
// spec.md §4.6: NativeFn, UserFn, Class and BoundMethod.
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []interface{}) (interface{}, error)
}
