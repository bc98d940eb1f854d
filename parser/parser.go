/*
File    : wisp/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a Pratt parser (top-down operator
// precedence parser) for wisp. It turns a token stream into a pure
// ast.Program — it never evaluates anything itself; that is eval's job.
package parser

import (
	"strconv"

	"github.com/wisp-lang/wisp/ast"
	"github.com/wisp-lang/wisp/lexer"
)

type (
	prefixParseFn func() (ast.Expression, ErrorChain)
	infixParseFn  func(ast.Expression) (ast.Expression, ErrorChain)
)

// Parser holds a two-token lookahead window over a Lexer and the
// registered prefix/infix parse functions that drive Pratt parsing.
type Parser struct {
	lex *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token

	errors []ErrorChain

	prefixParseFns map[lexer.Kind]prefixParseFn
	infixParseFns  map[lexer.Kind]infixParseFn
}

// New creates a Parser over src and primes its two-token lookahead.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}

	p.prefixParseFns = make(map[lexer.Kind]prefixParseFn)
	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.INT, p.parseIntegerLiteral)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.TRUE, p.parseBoolean)
	p.registerPrefix(lexer.FALSE, p.parseBoolean)
	p.registerPrefix(lexer.BANG, p.parsePrefixExpression)
	p.registerPrefix(lexer.MINUS, p.parsePrefixExpression)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(lexer.IF, p.parseIfExpression)
	p.registerPrefix(lexer.FUNCTION, p.parseFunctionLiteral)
	p.registerPrefix(lexer.LBRACKET, p.parseArrayLiteral)

	p.infixParseFns = make(map[lexer.Kind]infixParseFn)
	for _, k := range []lexer.Kind{
		lexer.PLUS, lexer.MINUS, lexer.STAR, lexer.SLASH, lexer.PERCENT,
		lexer.EQ, lexer.NOT_EQ, lexer.LT, lexer.LE, lexer.GT, lexer.GE,
		lexer.AND, lexer.OR, lexer.BIT_AND, lexer.BIT_OR,
	} {
		p.registerInfix(k, p.parseInfixExpression)
	}
	p.registerInfix(lexer.LPAREN, p.parseCallExpression)
	p.registerInfix(lexer.LBRACKET, p.parseIndexExpression)

	p.advance()
	p.advance()
	return p
}

func (p *Parser) registerPrefix(k lexer.Kind, fn prefixParseFn) { p.prefixParseFns[k] = fn }
func (p *Parser) registerInfix(k lexer.Kind, fn infixParseFn)   { p.infixParseFns[k] = fn }

func (p *Parser) advance() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

func (p *Parser) curIs(k lexer.Kind) bool  { return p.curToken.Kind == k }
func (p *Parser) peekIs(k lexer.Kind) bool { return p.peekToken.Kind == k }

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Kind]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Kind]; ok {
		return pr
	}
	return LOWEST
}

// expectPeek advances past the peek token if it has the expected
// kind; otherwise it reports the mismatch without advancing.
func (p *Parser) expectPeek(k lexer.Kind) (*ParseError, bool) {
	if p.peekIs(k) {
		p.advance()
		return nil, true
	}
	return newParseError(p.peekToken.Pos, "expected next token to be %s, got %s instead", k, p.peekToken.Kind), false
}

// ParseProgram parses the whole token stream. The returned errors are
// one ErrorChain per statement that failed to parse; each chain is
// ordered innermost cause first.
func (p *Parser) ParseProgram() (*ast.Program, []ErrorChain) {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.curIs(lexer.EOF) {
		stmt, chain := p.parseStatement()
		if chain != nil {
			p.errors = append(p.errors, chain)
		} else if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.advance()
	}

	return program, p.errors
}

func (p *Parser) parseStatement() (ast.Statement, ErrorChain) {
	switch p.curToken.Kind {
	case lexer.LET:
		return p.parseLetStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() (ast.Statement, ErrorChain) {
	stmt := &ast.LetStatement{Token: p.curToken}

	if err, ok := p.expectPeek(lexer.IDENT); !ok {
		return nil, ErrorChain{err}
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.peekIs(lexer.ASSIGN) {
		// no initializer: `let x;` — value stays nil, matching spec's
		// LetStatementValueIsNone eval error for this case.
		if p.peekIs(lexer.SEMICOLON) {
			p.advance()
		}
		return stmt, nil
	}
	p.advance() // consume '='
	p.advance() // move to the start of the value expression

	value, chain := p.parseExpression(LOWEST)
	if chain != nil {
		return nil, wrap(chain, newParseError(stmt.Token.Pos, "in let statement for %q", stmt.Name.Value))
	}
	stmt.Value = value

	if p.peekIs(lexer.SEMICOLON) {
		p.advance()
	}
	return stmt, nil
}

func (p *Parser) parseReturnStatement() (ast.Statement, ErrorChain) {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	if p.peekIs(lexer.SEMICOLON) {
		p.advance()
		return stmt, nil
	}

	p.advance()
	value, chain := p.parseExpression(LOWEST)
	if chain != nil {
		return nil, wrap(chain, newParseError(stmt.Token.Pos, "in return statement"))
	}
	stmt.Value = value

	if p.peekIs(lexer.SEMICOLON) {
		p.advance()
	}
	return stmt, nil
}

func (p *Parser) parseExpressionStatement() (ast.Statement, ErrorChain) {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	expr, chain := p.parseExpression(LOWEST)
	if chain != nil {
		return nil, chain
	}
	stmt.Expression = expr

	if p.peekIs(lexer.SEMICOLON) {
		p.advance()
	}
	return stmt, nil
}

func (p *Parser) parseBlockStatement() (*ast.BlockStatement, ErrorChain) {
	block := &ast.BlockStatement{Token: p.curToken, Statements: []ast.Statement{}}

	p.advance()
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		stmt, chain := p.parseStatement()
		if chain != nil {
			return nil, wrap(chain, newParseError(block.Token.Pos, "in block starting here"))
		}
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.advance()
	}
	if !p.curIs(lexer.RBRACE) {
		return nil, ErrorChain{newParseError(block.Token.Pos, "unterminated block: expected %s", lexer.RBRACE)}
	}
	return block, nil
}

func (p *Parser) parseExpression(precedence int) (ast.Expression, ErrorChain) {
	prefix, ok := p.prefixParseFns[p.curToken.Kind]
	if !ok {
		return nil, ErrorChain{newParseError(p.curToken.Pos, "no prefix parse function for %s (%q)", p.curToken.Kind, p.curToken.Literal)}
	}
	left, chain := prefix()
	if chain != nil {
		return nil, chain
	}

	for !p.peekIs(lexer.SEMICOLON) && precedence < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peekToken.Kind]
		if !ok {
			return left, nil
		}
		p.advance()
		left, chain = infix(left)
		if chain != nil {
			return nil, chain
		}
	}
	return left, nil
}

func (p *Parser) parseIdentifier() (ast.Expression, ErrorChain) {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}, nil
}

func (p *Parser) parseIntegerLiteral() (ast.Expression, ErrorChain) {
	lit := &ast.IntegerLiteral{Token: p.curToken}
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		return nil, ErrorChain{newParseError(p.curToken.Pos, "could not parse %q as integer", p.curToken.Literal)}
	}
	lit.Value = value
	return lit, nil
}

func (p *Parser) parseStringLiteral() (ast.Expression, ErrorChain) {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}, nil
}

func (p *Parser) parseBoolean() (ast.Expression, ErrorChain) {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curIs(lexer.TRUE)}, nil
}

func (p *Parser) parseGroupedExpression() (ast.Expression, ErrorChain) {
	open := p.curToken
	p.advance()

	expr, chain := p.parseExpression(LOWEST)
	if chain != nil {
		return nil, wrap(chain, newParseError(open.Pos, "in parenthesized expression"))
	}

	if err, ok := p.expectPeek(lexer.RPAREN); !ok {
		return nil, ErrorChain{err}
	}
	return expr, nil
}

func (p *Parser) parsePrefixExpression() (ast.Expression, ErrorChain) {
	expr := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Literal}
	p.advance()

	right, chain := p.parseExpression(PREFIX)
	if chain != nil {
		return nil, wrap(chain, newParseError(expr.Token.Pos, "in prefix expression %q", expr.Operator))
	}
	expr.Right = right
	return expr, nil
}

func (p *Parser) parseInfixExpression(left ast.Expression) (ast.Expression, ErrorChain) {
	expr := &ast.InfixExpression{Token: p.curToken, Operator: p.curToken.Literal, Left: left}
	precedence := p.curPrecedence()
	p.advance()

	right, chain := p.parseExpression(precedence)
	if chain != nil {
		return nil, wrap(chain, newParseError(expr.Token.Pos, "in infix expression %q", expr.Operator))
	}
	expr.Right = right
	return expr, nil
}

func (p *Parser) parseIfExpression() (ast.Expression, ErrorChain) {
	expr := &ast.IfExpression{Token: p.curToken}

	if err, ok := p.expectPeek(lexer.LPAREN); !ok {
		return nil, ErrorChain{err}
	}
	p.advance()

	cond, chain := p.parseExpression(LOWEST)
	if chain != nil {
		return nil, wrap(chain, newParseError(expr.Token.Pos, "in if condition"))
	}
	expr.Condition = cond

	if err, ok := p.expectPeek(lexer.RPAREN); !ok {
		return nil, ErrorChain{err}
	}
	if err, ok := p.expectPeek(lexer.LBRACE); !ok {
		return nil, ErrorChain{err}
	}

	cons, chain := p.parseBlockStatement()
	if chain != nil {
		return nil, wrap(chain, newParseError(expr.Token.Pos, "in if consequence"))
	}
	expr.Consequence = cons

	if p.peekIs(lexer.ELSE) {
		p.advance()
		if err, ok := p.expectPeek(lexer.LBRACE); !ok {
			return nil, ErrorChain{err}
		}
		alt, chain := p.parseBlockStatement()
		if chain != nil {
			return nil, wrap(chain, newParseError(expr.Token.Pos, "in else branch"))
		}
		expr.Alternative = alt
	}

	return expr, nil
}

func (p *Parser) parseFunctionLiteral() (ast.Expression, ErrorChain) {
	lit := &ast.FunctionLiteral{Token: p.curToken}

	// optional name: `fn name(...) { ... }` enables direct recursion
	// without relying on an enclosing let binding.
	if p.peekIs(lexer.IDENT) {
		p.advance()
		lit.Name = p.curToken.Literal
	}

	if err, ok := p.expectPeek(lexer.LPAREN); !ok {
		return nil, ErrorChain{err}
	}

	params, chain := p.parseFunctionParameters()
	if chain != nil {
		return nil, wrap(chain, newParseError(lit.Token.Pos, "in function parameter list"))
	}
	lit.Parameters = params

	if err, ok := p.expectPeek(lexer.LBRACE); !ok {
		return nil, ErrorChain{err}
	}

	body, chain := p.parseBlockStatement()
	if chain != nil {
		return nil, wrap(chain, newParseError(lit.Token.Pos, "in function body"))
	}
	lit.Body = body

	return lit, nil
}

func (p *Parser) parseFunctionParameters() ([]*ast.Identifier, ErrorChain) {
	params := []*ast.Identifier{}

	if p.peekIs(lexer.RPAREN) {
		p.advance()
		return params, nil
	}

	p.advance()
	params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekIs(lexer.COMMA) {
		p.advance()
		p.advance()
		params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if err, ok := p.expectPeek(lexer.RPAREN); !ok {
		return nil, ErrorChain{err}
	}
	return params, nil
}

func (p *Parser) parseCallExpression(fn ast.Expression) (ast.Expression, ErrorChain) {
	expr := &ast.CallExpression{Token: p.curToken, Function: fn}
	args, chain := p.parseExpressionList(lexer.RPAREN)
	if chain != nil {
		return nil, wrap(chain, newParseError(expr.Token.Pos, "in call arguments"))
	}
	expr.Arguments = args
	return expr, nil
}

func (p *Parser) parseArrayLiteral() (ast.Expression, ErrorChain) {
	lit := &ast.ArrayLiteral{Token: p.curToken}
	elems, chain := p.parseExpressionList(lexer.RBRACKET)
	if chain != nil {
		return nil, wrap(chain, newParseError(lit.Token.Pos, "in array literal"))
	}
	lit.Elements = elems
	return lit, nil
}

func (p *Parser) parseIndexExpression(left ast.Expression) (ast.Expression, ErrorChain) {
	expr := &ast.IndexExpression{Token: p.curToken, Left: left}
	p.advance()

	index, chain := p.parseExpression(LOWEST)
	if chain != nil {
		return nil, wrap(chain, newParseError(expr.Token.Pos, "in index expression"))
	}
	expr.Index = index

	if err, ok := p.expectPeek(lexer.RBRACKET); !ok {
		return nil, ErrorChain{err}
	}
	return expr, nil
}

func (p *Parser) parseExpressionList(end lexer.Kind) ([]ast.Expression, ErrorChain) {
	list := []ast.Expression{}

	if p.peekIs(end) {
		p.advance()
		return list, nil
	}

	p.advance()
	expr, chain := p.parseExpression(LOWEST)
	if chain != nil {
		return nil, chain
	}
	list = append(list, expr)

	for p.peekIs(lexer.COMMA) {
		p.advance()
		p.advance()
		expr, chain := p.parseExpression(LOWEST)
		if chain != nil {
			return nil, chain
		}
		list = append(list, expr)
	}

	if err, ok := p.expectPeek(end); !ok {
		return nil, ErrorChain{err}
	}
	return list, nil
}
