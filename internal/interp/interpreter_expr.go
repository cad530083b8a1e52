package interp

import (
	"fmt"

	"github.com/cwbudde/lox/internal/ast"
	"github.com/cwbudde/lox/internal/token"
)

var _ ast.ExprVisitor = (*Interpreter)(nil)

func (in *Interpreter) VisitLiteralExpr(e *ast.LiteralExpr) (interface{}, error) {
	return e.Value, nil
}

func (in *Interpreter) VisitGroupingExpr(e *ast.GroupingExpr) (interface{}, error) {
	return in.evaluate(e.Expression)
}

func (in *Interpreter) VisitUnaryExpr(e *ast.UnaryExpr) (interface{}, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case token.BANG:
		return !isTruthy(right), nil
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	}
	return nil, newRuntimeError(e.Operator, "Unknown unary operator.")
}

func (in *Interpreter) VisitBinaryExpr(e *ast.BinaryExpr) (interface{}, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL, token.MINUS, token.SLASH, token.STAR:
		ln, lok := left.(float64)
		rn, rok := right.(float64)
		if !lok || !rok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		switch e.Operator.Type {
		case token.GREATER:
			return ln > rn, nil
		case token.GREATER_EQUAL:
			return ln >= rn, nil
		case token.LESS:
			return ln < rn, nil
		case token.LESS_EQUAL:
			return ln <= rn, nil
		case token.MINUS:
			return ln - rn, nil
		case token.SLASH:
			return ln / rn, nil
		case token.STAR:
			return ln * rn, nil
		}
	case token.PLUS:
		if ln, lok := left.(float64); lok {
			if rn, rok := right.(float64); rok {
				return ln + rn, nil
			}
		}
		if ls, lok := left.(string); lok {
			if rs, rok := right.(string); rok {
				return ls + rs, nil
			}
		}
		return nil, newRuntimeError(e.Operator, "Operands must be two numbers or two strings.")
	case token.BANG_EQUAL:
		return !isEqual(left, right), nil
	case token.EQUAL_EQUAL:
		return isEqual(left, right), nil
	}
	return nil, newRuntimeError(e.Operator, "Unknown binary operator.")
}

func (in *Interpreter) VisitLogicalExpr(e *ast.LogicalExpr) (interface{}, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == token.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) VisitVariableExpr(e *ast.VariableExpr) (interface{}, error) {
	return in.lookupVariable(e.Name, e)
}

func (in *Interpreter) VisitAssignExpr(e *ast.AssignExpr) (interface{}, error) {
	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if depth, ok := in.locals[e]; ok {
		in.environment.AssignAt(depth, e.Name.Lexeme, value)
		return value, nil
	}
	if !in.globals.Assign(e.Name.Lexeme, value) {
		return nil, newRuntimeError(e.Name, fmt.Sprintf("Undefined variable '%s'.", e.Name.Lexeme))
	}
	return value, nil
}

func (in *Interpreter) VisitCallExpr(e *ast.CallExpr) (interface{}, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, newRuntimeError(e.Paren, fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(args)))
	}
	return callable.Call(in, args)
}

func (in *Interpreter) VisitGetExpr(e *ast.GetExpr) (interface{}, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Name, "Only instances have properties.")
	}
	v, err := instance.Get(e.Name.Lexeme)
	if err != nil {
		if rerr, ok := err.(*RuntimeError); ok && rerr.Token == (token.Token{}) {
			rerr.Token = e.Name
		}
		return nil, err
	}
	return v, nil
}

func (in *Interpreter) VisitSetExpr(e *ast.SetExpr) (interface{}, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Name, "Only instances have fields.")
	}
	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name.Lexeme, value)
	return value, nil
}

func (in *Interpreter) VisitThisExpr(e *ast.ThisExpr) (interface{}, error) {
	return in.lookupVariable(e.Keyword, e)
}

func (in *Interpreter) VisitSuperExpr(e *ast.SuperExpr) (interface{}, error) {
	depth, ok := in.locals[e]
	if !ok {
		return nil, newRuntimeError(e.Keyword, "Undefined variable 'super'.")
	}
	superclass, _ := in.environment.GetAt(depth, "super").(*Class)
	instance, _ := in.environment.GetAt(depth-1, "this").(*Instance)

	method, found := superclass.findMethod(e.Method.Lexeme)
	if !found {
		return nil, newRuntimeError(e.Method, fmt.Sprintf("Undefined property '%s'.", e.Method.Lexeme))
	}
	return method.bind(instance), nil
}
