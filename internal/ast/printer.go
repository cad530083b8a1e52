package ast

import (
	"fmt"
	"strings"
)

// Print renders a parenthesized Lisp-ish dump of statements, in the style
// of the teacher's recursive dumpASTNode debug printer, adapted to Lox's
// smaller node set.
func Print(statements []Stmt) string {
	var b strings.Builder
	p := &printer{w: &b}
	for _, s := range statements {
		p.printStmt(s, 0)
	}
	return b.String()
}

type printer struct {
	w *strings.Builder
}

func (p *printer) indent(depth int) {
	p.w.WriteString(strings.Repeat("  ", depth))
}

func (p *printer) printStmt(s Stmt, depth int) {
	p.indent(depth)
	switch n := s.(type) {
	case *BlockStmt:
		p.w.WriteString("(block\n")
		for _, inner := range n.Statements {
			p.printStmt(inner, depth+1)
		}
		p.indent(depth)
		p.w.WriteString(")\n")
	case *ClassStmt:
		fmt.Fprintf(p.w, "(class %s\n", n.Name.Lexeme)
		for _, m := range n.Methods {
			p.printStmt(m, depth+1)
		}
		p.indent(depth)
		p.w.WriteString(")\n")
	case *ExpressionStmt:
		fmt.Fprintf(p.w, "(expr %s)\n", p.exprString(n.Expression))
	case *FunctionStmt:
		fmt.Fprintf(p.w, "(fun %s\n", n.Name.Lexeme)
		for _, inner := range n.Body {
			p.printStmt(inner, depth+1)
		}
		p.indent(depth)
		p.w.WriteString(")\n")
	case *IfStmt:
		fmt.Fprintf(p.w, "(if %s\n", p.exprString(n.Condition))
		p.printStmt(n.ThenBranch, depth+1)
		if n.ElseBranch != nil {
			p.printStmt(n.ElseBranch, depth+1)
		}
		p.indent(depth)
		p.w.WriteString(")\n")
	case *PrintStmt:
		fmt.Fprintf(p.w, "(print %s)\n", p.exprString(n.Expression))
	case *ReturnStmt:
		if n.Value != nil {
			fmt.Fprintf(p.w, "(return %s)\n", p.exprString(n.Value))
		} else {
			p.w.WriteString("(return)\n")
		}
	case *VarStmt:
		if n.Initializer != nil {
			fmt.Fprintf(p.w, "(var %s %s)\n", n.Name.Lexeme, p.exprString(n.Initializer))
		} else {
			fmt.Fprintf(p.w, "(var %s)\n", n.Name.Lexeme)
		}
	case *WhileStmt:
		fmt.Fprintf(p.w, "(while %s\n", p.exprString(n.Condition))
		p.printStmt(n.Body, depth+1)
		p.indent(depth)
		p.w.WriteString(")\n")
	default:
		fmt.Fprintf(p.w, "(unknown-stmt %T)\n", s)
	}
}

func (p *printer) exprString(e Expr) string {
	switch n := e.(type) {
	case *AssignExpr:
		return fmt.Sprintf("(= %s %s)", n.Name.Lexeme, p.exprString(n.Value))
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", n.Operator.Lexeme, p.exprString(n.Left), p.exprString(n.Right))
	case *CallExpr:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = p.exprString(a)
		}
		return fmt.Sprintf("(call %s %s)", p.exprString(n.Callee), strings.Join(args, " "))
	case *GetExpr:
		return fmt.Sprintf("(get %s %s)", p.exprString(n.Object), n.Name.Lexeme)
	case *GroupingExpr:
		return fmt.Sprintf("(group %s)", p.exprString(n.Expression))
	case *LiteralExpr:
		if n.Value == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", n.Value)
	case *LogicalExpr:
		return fmt.Sprintf("(%s %s %s)", n.Operator.Lexeme, p.exprString(n.Left), p.exprString(n.Right))
	case *SetExpr:
		return fmt.Sprintf("(set %s %s %s)", p.exprString(n.Object), n.Name.Lexeme, p.exprString(n.Value))
	case *SuperExpr:
		return fmt.Sprintf("(super %s)", n.Method.Lexeme)
	case *ThisExpr:
		return "this"
	case *UnaryExpr:
		return fmt.Sprintf("(%s %s)", n.Operator.Lexeme, p.exprString(n.Right))
	case *VariableExpr:
		return n.Name.Lexeme
	default:
		return fmt.Sprintf("(unknown-expr %T)", e)
	}
}
