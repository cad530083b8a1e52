package parser

import (
	"github.com/cwbudde/lox/internal/ast"
	"github.com/cwbudde/lox/internal/diagnostics"
	"github.com/cwbudde/lox/internal/token"
)

// expression → assignment
func (p *Parser) expression() ast.Expr { return p.assignment() }

// assignment → ( call "." )? IDENTIFIER "=" assignment | logic_or
//
// Parses the left-hand side as a full or-expression first, then, only
// if '=' follows, rewrites it into Assign or Set — this is how the
// grammar avoids a separate lvalue production (spec.md §4.2).
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch e := expr.(type) {
		case *ast.VariableExpr:
			return ast.NewAssignExpr(e.Name, value)
		case *ast.GetExpr:
			return ast.NewSetExpr(e.Object, e.Name, value)
		default:
			// Reported but not synchronized: the parser is still at a
			// known, consistent position (spec.md §4.2).
			p.reporter.ErrorAt(diagnostics.ParseError, equals.Line, "", "Invalid assignment target.")
		}
	}
	return expr
}

// logic_or → logic_and ( "or" logic_and )*
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		operator := p.previous()
		right := p.and()
		expr = ast.NewLogicalExpr(expr, operator, right)
	}
	return expr
}

// logic_and → equality ( "and" equality )*
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		operator := p.previous()
		right := p.equality()
		expr = ast.NewLogicalExpr(expr, operator, right)
	}
	return expr
}

// equality → comparison ( ( "!=" | "==" ) comparison )*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = ast.NewBinaryExpr(expr, operator, right)
	}
	return expr
}

// comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = ast.NewBinaryExpr(expr, operator, right)
	}
	return expr
}

// term → factor ( ( "-" | "+" ) factor )*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = ast.NewBinaryExpr(expr, operator, right)
	}
	return expr
}

// factor → unary ( ( "/" | "*" ) unary )*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = ast.NewBinaryExpr(expr, operator, right)
	}
	return expr
}

// unary → ( "!" | "-" ) unary | call
func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		operator := p.previous()
		right := p.unary()
		return ast.NewUnaryExpr(operator, right)
	}
	return p.call()
}

// call → primary ( "(" arguments? ")" | "." IDENTIFIER )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.consume(token.IDENTIFIER, "Expect property name after '.'.")
			expr = ast.NewGetExpr(expr, name)
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RIGHT_PAREN, "Expect ')' after arguments.")
	return ast.NewCallExpr(callee, paren, args)
}

// primary → "true" | "false" | "nil" | "this" | NUMBER | STRING | IDENTIFIER
//         | "(" expression ")" | "super" "." IDENTIFIER
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return ast.NewLiteralExpr(false)
	case p.match(token.TRUE):
		return ast.NewLiteralExpr(true)
	case p.match(token.NIL):
		return ast.NewLiteralExpr(nil)
	case p.match(token.NUMBER, token.STRING):
		return ast.NewLiteralExpr(p.previous().Literal)
	case p.match(token.SUPER):
		keyword := p.previous()
		p.consume(token.DOT, "Expect '.' after 'super'.")
		method := p.consume(token.IDENTIFIER, "Expect superclass method name.")
		return ast.NewSuperExpr(keyword, method)
	case p.match(token.THIS):
		return ast.NewThisExpr(p.previous())
	case p.match(token.IDENTIFIER):
		return ast.NewVariableExpr(p.previous())
	case p.match(token.LEFT_PAREN):
		expr := p.expression()
		p.consume(token.RIGHT_PAREN, "Expect ')' after expression.")
		return ast.NewGroupingExpr(expr)
	default:
		panic(p.errorAt(p.peek(), "Expect expression."))
	}
}
