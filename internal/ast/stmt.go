package ast

import "github.com/cwbudde/lox/internal/token"

// Stmt is any statement node. Statement evaluation has no result value
// (spec.md §4.5), so Accept returns only an error.
type Stmt interface {
	Accept(v StmtVisitor) error
}

// StmtVisitor enumerates one method per statement variant in spec.md §3.
type StmtVisitor interface {
	VisitBlockStmt(*BlockStmt) error
	VisitClassStmt(*ClassStmt) error
	VisitExpressionStmt(*ExpressionStmt) error
	VisitFunctionStmt(*FunctionStmt) error
	VisitIfStmt(*IfStmt) error
	VisitPrintStmt(*PrintStmt) error
	VisitReturnStmt(*ReturnStmt) error
	VisitVarStmt(*VarStmt) error
	VisitWhileStmt(*WhileStmt) error
}

// BlockStmt is a brace-delimited sequence of declarations.
type BlockStmt struct {
	Statements []Stmt
}

func NewBlockStmt(statements []Stmt) *BlockStmt { return &BlockStmt{Statements: statements} }

func (s *BlockStmt) Accept(v StmtVisitor) error { return v.VisitBlockStmt(s) }

// ClassStmt is a class declaration with an optional superclass and a
// list of methods, each represented as a FunctionStmt.
type ClassStmt struct {
	Name       token.Token
	Superclass *VariableExpr // nil if there is none
	Methods    []*FunctionStmt
}

func NewClassStmt(name token.Token, superclass *VariableExpr, methods []*FunctionStmt) *ClassStmt {
	return &ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

func (s *ClassStmt) Accept(v StmtVisitor) error { return v.VisitClassStmt(s) }

// ExpressionStmt evaluates an expression and discards the result.
type ExpressionStmt struct {
	Expression Expr
}

func NewExpressionStmt(expression Expr) *ExpressionStmt {
	return &ExpressionStmt{Expression: expression}
}

func (s *ExpressionStmt) Accept(v StmtVisitor) error { return v.VisitExpressionStmt(s) }

// FunctionStmt is a named function (or method) declaration.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func NewFunctionStmt(name token.Token, params []token.Token, body []Stmt) *FunctionStmt {
	return &FunctionStmt{Name: name, Params: params, Body: body}
}

func (s *FunctionStmt) Accept(v StmtVisitor) error { return v.VisitFunctionStmt(s) }

// IfStmt is `if (cond) then [else else]`.
type IfStmt struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt // nil if absent
}

func NewIfStmt(condition Expr, thenBranch, elseBranch Stmt) *IfStmt {
	return &IfStmt{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

func (s *IfStmt) Accept(v StmtVisitor) error { return v.VisitIfStmt(s) }

// PrintStmt evaluates an expression, stringifies it, and writes it.
type PrintStmt struct {
	Expression Expr
}

func NewPrintStmt(expression Expr) *PrintStmt { return &PrintStmt{Expression: expression} }

func (s *PrintStmt) Accept(v StmtVisitor) error { return v.VisitPrintStmt(s) }

// ReturnStmt is `return [value];`. Value is nil when omitted.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func NewReturnStmt(keyword token.Token, value Expr) *ReturnStmt {
	return &ReturnStmt{Keyword: keyword, Value: value}
}

func (s *ReturnStmt) Accept(v StmtVisitor) error { return v.VisitReturnStmt(s) }

// VarStmt is `var name [= initializer];`.
type VarStmt struct {
	Name        token.Token
	Initializer Expr // nil when omitted
}

func NewVarStmt(name token.Token, initializer Expr) *VarStmt {
	return &VarStmt{Name: name, Initializer: initializer}
}

func (s *VarStmt) Accept(v StmtVisitor) error { return v.VisitVarStmt(s) }

// WhileStmt is `while (cond) body`. The parser desugars `for` into this.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func NewWhileStmt(condition Expr, body Stmt) *WhileStmt {
	return &WhileStmt{Condition: condition, Body: body}
}

func (s *WhileStmt) Accept(v StmtVisitor) error { return v.VisitWhileStmt(s) }
