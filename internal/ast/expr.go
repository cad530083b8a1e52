// Package ast defines the Expr and Stmt node types produced by the parser
// and walked by the resolver and evaluator.
//
// Every node's Accept method dispatches to the matching method of
// ExprVisitor / StmtVisitor, one method per variant in spec.md §3. This
// is visitor double dispatch over a flat set of node structs, not a
// closed sum type; only the debug printer (Print) matches on the node
// type with a type switch. Node pointers double as the resolution
// side-table's key (Go's native identity — no synthetic id field).
package ast

import "github.com/cwbudde/lox/internal/token"

// Expr is any expression node. Accept returns the value produced by
// visiting the node — a runtime value during evaluation, or nothing in
// particular during resolution (the resolver's ExprVisitor ignores it).
type Expr interface {
	Accept(v ExprVisitor) (interface{}, error)
}

// ExprVisitor enumerates one method per expression variant in spec.md §3.
type ExprVisitor interface {
	VisitAssignExpr(*AssignExpr) (interface{}, error)
	VisitBinaryExpr(*BinaryExpr) (interface{}, error)
	VisitCallExpr(*CallExpr) (interface{}, error)
	VisitGetExpr(*GetExpr) (interface{}, error)
	VisitGroupingExpr(*GroupingExpr) (interface{}, error)
	VisitLiteralExpr(*LiteralExpr) (interface{}, error)
	VisitLogicalExpr(*LogicalExpr) (interface{}, error)
	VisitSetExpr(*SetExpr) (interface{}, error)
	VisitSuperExpr(*SuperExpr) (interface{}, error)
	VisitThisExpr(*ThisExpr) (interface{}, error)
	VisitUnaryExpr(*UnaryExpr) (interface{}, error)
	VisitVariableExpr(*VariableExpr) (interface{}, error)
}

// AssignExpr is `name = value`.
type AssignExpr struct {
	Name  token.Token
	Value Expr
}

func NewAssignExpr(name token.Token, value Expr) *AssignExpr {
	return &AssignExpr{Name: name, Value: value}
}

func (e *AssignExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitAssignExpr(e) }

// BinaryExpr is `left op right` for arithmetic, comparison and equality.
type BinaryExpr struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewBinaryExpr(left Expr, operator token.Token, right Expr) *BinaryExpr {
	return &BinaryExpr{Left: left, Operator: operator, Right: right}
}

func (e *BinaryExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitBinaryExpr(e) }

// CallExpr is `callee(args...)`. Paren is the closing `)` token, kept for
// its line number when reporting arity/call errors.
type CallExpr struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func NewCallExpr(callee Expr, paren token.Token, args []Expr) *CallExpr {
	return &CallExpr{Callee: callee, Paren: paren, Args: args}
}

func (e *CallExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitCallExpr(e) }

// GetExpr is `obj.name`, a property read.
type GetExpr struct {
	Object Expr
	Name   token.Token
}

func NewGetExpr(object Expr, name token.Token) *GetExpr {
	return &GetExpr{Object: object, Name: name}
}

func (e *GetExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGetExpr(e) }

// GroupingExpr is a parenthesized sub-expression.
type GroupingExpr struct {
	Expression Expr
}

func NewGroupingExpr(expression Expr) *GroupingExpr { return &GroupingExpr{Expression: expression} }

func (e *GroupingExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGroupingExpr(e) }

// LiteralExpr wraps a scanned literal value (number, string, bool, nil).
type LiteralExpr struct {
	Value interface{}
}

func NewLiteralExpr(value interface{}) *LiteralExpr { return &LiteralExpr{Value: value} }

func (e *LiteralExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLiteralExpr(e) }

// LogicalExpr is `left and/or right`, kept distinct from BinaryExpr so
// the evaluator can short-circuit (spec.md §4.2).
type LogicalExpr struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewLogicalExpr(left Expr, operator token.Token, right Expr) *LogicalExpr {
	return &LogicalExpr{Left: left, Operator: operator, Right: right}
}

func (e *LogicalExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLogicalExpr(e) }

// SetExpr is `obj.name = value`, a property write.
type SetExpr struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func NewSetExpr(object Expr, name token.Token, value Expr) *SetExpr {
	return &SetExpr{Object: object, Name: name, Value: value}
}

func (e *SetExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitSetExpr(e) }

// SuperExpr is `super.method`.
type SuperExpr struct {
	Keyword token.Token
	Method  token.Token
}

func NewSuperExpr(keyword, method token.Token) *SuperExpr {
	return &SuperExpr{Keyword: keyword, Method: method}
}

func (e *SuperExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitSuperExpr(e) }

// ThisExpr is the `this` keyword used as an expression.
type ThisExpr struct {
	Keyword token.Token
}

func NewThisExpr(keyword token.Token) *ThisExpr { return &ThisExpr{Keyword: keyword} }

func (e *ThisExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitThisExpr(e) }

// UnaryExpr is `op right` for `!` and unary `-`.
type UnaryExpr struct {
	Operator token.Token
	Right    Expr
}

func NewUnaryExpr(operator token.Token, right Expr) *UnaryExpr {
	return &UnaryExpr{Operator: operator, Right: right}
}

func (e *UnaryExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitUnaryExpr(e) }

// VariableExpr is a bare identifier reference.
type VariableExpr struct {
	Name token.Token
}

func NewVariableExpr(name token.Token) *VariableExpr { return &VariableExpr{Name: name} }

func (e *VariableExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitVariableExpr(e) }
