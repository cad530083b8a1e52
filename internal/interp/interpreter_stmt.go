package interp

import (
	"fmt"

	"github.com/cwbudde/lox/internal/ast"
)

var _ ast.StmtVisitor = (*Interpreter)(nil)

func (in *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) error {
	_, err := in.evaluate(s.Expression)
	return err
}

func (in *Interpreter) VisitPrintStmt(s *ast.PrintStmt) error {
	value, err := in.evaluate(s.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(in.out, stringify(value))
	return nil
}

func (in *Interpreter) VisitVarStmt(s *ast.VarStmt) error {
	var value interface{}
	if s.Initializer != nil {
		v, err := in.evaluate(s.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	in.environment.Define(s.Name.Lexeme, value)
	return nil
}

func (in *Interpreter) VisitBlockStmt(s *ast.BlockStmt) error {
	return in.executeBlock(s.Statements, NewEnclosedEnvironment(in.environment))
}

func (in *Interpreter) VisitIfStmt(s *ast.IfStmt) error {
	cond, err := in.evaluate(s.Condition)
	if err != nil {
		return err
	}
	if isTruthy(cond) {
		return in.execute(s.ThenBranch)
	}
	if s.ElseBranch != nil {
		return in.execute(s.ElseBranch)
	}
	return nil
}

func (in *Interpreter) VisitWhileStmt(s *ast.WhileStmt) error {
	for {
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if !isTruthy(cond) {
			return nil
		}
		if err := in.execute(s.Body); err != nil {
			return err
		}
	}
}

func (in *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) error {
	fn := NewUserFunction(s, in.environment, false)
	in.environment.Define(s.Name.Lexeme, fn)
	return nil
}

func (in *Interpreter) VisitReturnStmt(s *ast.ReturnStmt) error {
	var value interface{}
	if s.Value != nil {
		v, err := in.evaluate(s.Value)
		if err != nil {
			return err
		}
		value = v
	}
	panic(returnSignal{value: value})
}

// VisitClassStmt implements spec.md §4.5's class-statement evaluation:
// define the name early (for self-reference within methods), validate
// and resolve the superclass, push a `super`-binding environment while
// building methods, then pop it before the final assignment.
func (in *Interpreter) VisitClassStmt(s *ast.ClassStmt) error {
	var superclass *Class
	if s.Superclass != nil {
		sc, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		var ok bool
		superclass, ok = sc.(*Class)
		if !ok {
			return newRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
	}

	in.environment.Define(s.Name.Lexeme, nil)

	env := in.environment
	if superclass != nil {
		env = NewEnclosedEnvironment(in.environment)
		env.Define("super", superclass)
	}

	methods := make(map[string]*UserFunction)
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = NewUserFunction(m, env, m.Name.Lexeme == "init")
	}

	class := NewClass(s.Name.Lexeme, superclass, methods)

	if !in.environment.Assign(s.Name.Lexeme, class) {
		in.environment.Define(s.Name.Lexeme, class)
	}
	return nil
}
