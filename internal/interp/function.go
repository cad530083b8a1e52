package interp

import "github.com/cwbudde/lox/internal/ast"

// returnSignal is the payload of the single targeted panic used to
// unwind a function body back to its call boundary, per SPEC_FULL.md §5
// and the REDESIGN FLAG on Return-as-exception in spec.md §9. Nothing
// else in the evaluator panics with this type, so call() can recover it
// precisely without masking genuine runtime errors.
type returnSignal struct {
	value interface{}
}

// UserFunction is a Lox-level function or method: its declaration, the
// environment captured at definition time (its closure), and whether it
// is a class's init method — grounded on spec.md §4.6's UserFn contract
// and on the simpler callable shape in
// letung3105-lox/internal/lox/interpreter.go rather than the teacher's
// own much more elaborate functions_user.go machinery (overloads,
// Self-sync, typed exceptions — none of which Lox has a use for).
type UserFunction struct {
	declaration   *ast.FunctionStmt
	closure       *Environment
	isInitializer bool
}

func NewUserFunction(declaration *ast.FunctionStmt, closure *Environment, isInitializer bool) *UserFunction {
	return &UserFunction{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

func (f *UserFunction) Name() string { return f.declaration.Name.Lexeme }

func (f *UserFunction) Arity() int { return len(f.declaration.Params) }

// bind produces a copy of f whose closure has `this` bound to instance,
// one environment deeper than f.closure — used by Instance.Get and by
// super-method lookup (spec.md §4.6's BoundMethod / §4.5's Super rule).
func (f *UserFunction) bind(instance *Instance) *UserFunction {
	env := NewEnclosedEnvironment(f.closure)
	env.Define("this", instance)
	return NewUserFunction(f.declaration, env, f.isInitializer)
}

// Call executes the function body in a fresh environment parented on
// its closure, per spec.md §4.6.
func (f *UserFunction) Call(in *Interpreter, args []interface{}) (result interface{}, err error) {
	env := NewEnclosedEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(returnSignal)
			if !ok {
				panic(r)
			}
			if f.isInitializer {
				result = f.closure.GetAt(0, "this")
				return
			}
			result = sig.value
		}
	}()

	if err := in.executeBlock(f.declaration.Body, env); err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}
