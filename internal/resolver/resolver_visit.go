package resolver

import (
	"github.com/cwbudde/lox/internal/ast"
	"github.com/cwbudde/lox/internal/diagnostics"
)

var (
	_ ast.StmtVisitor = (*Resolver)(nil)
	_ ast.ExprVisitor = (*Resolver)(nil)
)

// --- statements ---------------------------------------------------------

func (res *Resolver) VisitBlockStmt(s *ast.BlockStmt) error {
	res.beginScope()
	res.resolveStatements(s.Statements)
	res.endScope()
	return nil
}

func (res *Resolver) VisitVarStmt(s *ast.VarStmt) error {
	res.declare(s.Name)
	if s.Initializer != nil {
		res.resolveExpr(s.Initializer)
	}
	res.define(s.Name)
	return nil
}

func (res *Resolver) VisitFunctionStmt(s *ast.FunctionStmt) error {
	res.declare(s.Name)
	res.define(s.Name)
	res.resolveFunction(s, functionFunction)
	return nil
}

func (res *Resolver) VisitExpressionStmt(s *ast.ExpressionStmt) error {
	res.resolveExpr(s.Expression)
	return nil
}

func (res *Resolver) VisitIfStmt(s *ast.IfStmt) error {
	res.resolveExpr(s.Condition)
	res.resolveStmt(s.ThenBranch)
	if s.ElseBranch != nil {
		res.resolveStmt(s.ElseBranch)
	}
	return nil
}

func (res *Resolver) VisitPrintStmt(s *ast.PrintStmt) error {
	res.resolveExpr(s.Expression)
	return nil
}

func (res *Resolver) VisitReturnStmt(s *ast.ReturnStmt) error {
	if res.currentFunction == functionNone {
		res.reporter.ErrorAt(diagnostics.ResolutionError, s.Keyword.Line, "", "Can't return from top-level code.")
	}
	if s.Value != nil {
		if res.currentFunction == functionInitializer {
			res.reporter.ErrorAt(diagnostics.ResolutionError, s.Keyword.Line, "", "Can't return a value from an initializer.")
		}
		res.resolveExpr(s.Value)
	}
	return nil
}

func (res *Resolver) VisitWhileStmt(s *ast.WhileStmt) error {
	res.resolveExpr(s.Condition)
	res.resolveStmt(s.Body)
	return nil
}

// VisitClassStmt implements the protocol table row for class
// declarations in spec.md §4.4, including the superclass-equals-self
// check and the nested super/this scopes.
func (res *Resolver) VisitClassStmt(s *ast.ClassStmt) error {
	enclosingClass := res.currentClass
	res.currentClass = classClass

	res.declare(s.Name)
	res.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			res.reporter.ErrorAt(diagnostics.ResolutionError, s.Superclass.Name.Line, "", "A class can't inherit from itself.")
		}
		res.resolveExpr(s.Superclass)
		res.currentClass = classSubclass

		res.beginScope()
		res.scopes[len(res.scopes)-1]["super"] = true
	}

	res.beginScope()
	res.scopes[len(res.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		kind := functionMethod
		if method.Name.Lexeme == "init" {
			kind = functionInitializer
		}
		res.resolveFunction(method, kind)
	}

	res.endScope()

	if s.Superclass != nil {
		res.endScope()
	}

	res.currentClass = enclosingClass
	return nil
}

// --- expressions ---------------------------------------------------------

func (res *Resolver) VisitVariableExpr(e *ast.VariableExpr) (interface{}, error) {
	if len(res.scopes) > 0 {
		if ready, ok := res.scopes[len(res.scopes)-1][e.Name.Lexeme]; ok && !ready {
			res.reporter.ErrorAt(diagnostics.ResolutionError, e.Name.Line, "", "Can't read local variable in its own initializer.")
		}
	}
	res.resolveLocal(e, e.Name)
	return nil, nil
}

func (res *Resolver) VisitAssignExpr(e *ast.AssignExpr) (interface{}, error) {
	res.resolveExpr(e.Value)
	res.resolveLocal(e, e.Name)
	return nil, nil
}

func (res *Resolver) VisitBinaryExpr(e *ast.BinaryExpr) (interface{}, error) {
	res.resolveExpr(e.Left)
	res.resolveExpr(e.Right)
	return nil, nil
}

func (res *Resolver) VisitCallExpr(e *ast.CallExpr) (interface{}, error) {
	res.resolveExpr(e.Callee)
	for _, a := range e.Args {
		res.resolveExpr(a)
	}
	return nil, nil
}

func (res *Resolver) VisitGetExpr(e *ast.GetExpr) (interface{}, error) {
	res.resolveExpr(e.Object)
	return nil, nil
}

func (res *Resolver) VisitGroupingExpr(e *ast.GroupingExpr) (interface{}, error) {
	res.resolveExpr(e.Expression)
	return nil, nil
}

func (res *Resolver) VisitLiteralExpr(e *ast.LiteralExpr) (interface{}, error) {
	return nil, nil
}

func (res *Resolver) VisitLogicalExpr(e *ast.LogicalExpr) (interface{}, error) {
	res.resolveExpr(e.Left)
	res.resolveExpr(e.Right)
	return nil, nil
}

func (res *Resolver) VisitSetExpr(e *ast.SetExpr) (interface{}, error) {
	res.resolveExpr(e.Value)
	res.resolveExpr(e.Object)
	return nil, nil
}

func (res *Resolver) VisitSuperExpr(e *ast.SuperExpr) (interface{}, error) {
	switch res.currentClass {
	case classNone:
		res.reporter.ErrorAt(diagnostics.ResolutionError, e.Keyword.Line, "", "Can't use 'super' outside of a class.")
	case classClass:
		res.reporter.ErrorAt(diagnostics.ResolutionError, e.Keyword.Line, "", "Can't use 'super' in a class with no superclass.")
	}
	res.resolveLocal(e, e.Keyword)
	return nil, nil
}

func (res *Resolver) VisitThisExpr(e *ast.ThisExpr) (interface{}, error) {
	if res.currentClass == classNone {
		res.reporter.ErrorAt(diagnostics.ResolutionError, e.Keyword.Line, "", "Can't use 'this' outside of a class.")
		return nil, nil
	}
	res.resolveLocal(e, e.Keyword)
	return nil, nil
}

func (res *Resolver) VisitUnaryExpr(e *ast.UnaryExpr) (interface{}, error) {
	res.resolveExpr(e.Right)
	return nil, nil
}
