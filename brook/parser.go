package brook

import (
	"errors"
	"io"
	"os"
	"strings"
)

// anonFuncName is the reserved prototype name wrapping bare top-level
// expressions so the backend sees one Function per parsed unit.
const anonFuncName = "__anon_expr"

// Parser consumes the token stream one top-level unit at a time. It keeps a
// single current-token cursor fed by the lexer; every routine reads and
// advances that shared cursor. Failed routines record one diagnostic and
// return nil, never a partial tree.
type Parser struct {
	l *lexer

	curToken Token

	errors []error
}

// NewParser builds a parser over an unbounded character stream.
func NewParser(r io.Reader) *Parser {
	p := &Parser{l: newLexer(r)}
	p.nextToken()
	return p
}

// ParseString parses every top-level unit in src, collecting diagnostics in
// teacher-parser fashion: parsing continues past a failed unit.
func ParseString(src string) ([]*Function, []error) {
	p := NewParser(strings.NewReader(src))

	var fns []*Function
	var errs []error
	for {
		fn, err := p.Next()
		if errors.Is(err, io.EOF) {
			return fns, errs
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fns = append(fns, fn)
	}
}

// ParseFile reads the named file and parses every top-level unit in it.
// A read failure is reported through the error list like a diagnostic.
func ParseFile(path string) ([]*Function, []error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, []error{err}
	}
	return ParseString(string(src))
}

func (p *Parser) nextToken() {
	p.curToken = p.l.NextToken()
}

func (p *Parser) isRaw(ch rune) bool {
	return p.curToken.Type == tokenRaw && p.curToken.Ch == ch
}

// Next parses one top-level unit: a func definition, or a bare expression
// wrapped in an anonymous zero-parameter Function. Stray semicolons between
// units are skipped. Returns io.EOF once the stream is exhausted.
func (p *Parser) Next() (*Function, error) {
	for {
		switch {
		case p.curToken.Type == tokenEOF:
			return nil, io.EOF
		case p.isRaw(';'):
			p.nextToken()
		case p.curToken.Type == tokenFunc:
			fn := p.parseDefinition()
			if fn == nil {
				return nil, p.takeErrors()
			}
			return fn, nil
		default:
			fn := p.parseTopLevelExpr()
			if fn == nil {
				return nil, p.takeErrors()
			}
			return fn, nil
		}
	}
}

// takeErrors drains the accumulated diagnostics into one error and steps
// past the offending token so the driver can resume with the next unit.
func (p *Parser) takeErrors() error {
	err := errors.Join(p.errors...)
	p.errors = nil
	if err == nil {
		err = errors.New("parse failed")
	}
	if p.curToken.Type != tokenEOF {
		p.nextToken()
	}
	return err
}

// parseExpression parses one primary expression and folds in any following
// binary operators starting at minimum precedence 0.
func (p *Parser) parseExpression() Expr {
	lhs := p.parsePrimary()
	if lhs == nil {
		return nil
	}
	return p.parseBinaryRHS(0, lhs)
}

// parseBinaryRHS is the precedence-climbing loop. Operators below minPrec
// (including every non-operator token, which reads as precedence -1) end
// the loop and yield the accumulated lhs.
func (p *Parser) parseBinaryRHS(minPrec int, lhs Expr) Expr {
	for {
		tokPrec := precedenceOf(p.curToken)
		if tokPrec < minPrec {
			return lhs
		}

		op := p.curToken.Ch
		pos := p.curToken.Pos
		p.nextToken()

		rhs := p.parsePrimary()
		if rhs == nil {
			return nil
		}

		// If the operator after the rhs binds tighter, the rhs must absorb
		// it first so that 1 + 2 * 3 nests the product under the sum.
		if tokPrec < precedenceOf(p.curToken) {
			rhs = p.parseBinaryRHS(tokPrec+1, rhs)
			if rhs == nil {
				return nil
			}
		}

		lhs = &BinaryExpr{Op: op, Left: lhs, Right: rhs, position: pos}
	}
}

func (p *Parser) parsePrimary() Expr {
	switch {
	case p.curToken.Type == tokenNumber:
		return p.parseNumberExpr()
	case p.curToken.Type == tokenString:
		return p.parseStringExpr()
	case p.curToken.Type == tokenIdent:
		return p.parseIdentifierExpr()
	case p.isRaw('('):
		return p.parseParenExpr()
	default:
		if _, ok := typeKeyword(p.curToken.Type); ok {
			return p.parseTypeExpr()
		}
		p.addError(p.curToken, "unrecognized token while parsing primary expression")
		return nil
	}
}

func (p *Parser) parseNumberExpr() Expr {
	e := &NumberLiteral{Value: p.curToken.Value, position: p.curToken.Pos}
	p.nextToken()
	return e
}

func (p *Parser) parseStringExpr() Expr {
	e := &StringLiteral{Value: p.curToken.Literal, position: p.curToken.Pos}
	p.nextToken()
	return e
}

// parseParenExpr handles ( expr ). Parentheses group only; the inner
// expression is returned unchanged.
func (p *Parser) parseParenExpr() Expr {
	p.nextToken()

	e := p.parseExpression()
	if e == nil {
		return nil
	}

	if !p.isRaw(')') {
		p.errorExpected(p.curToken, "')'")
		return nil
	}
	p.nextToken()
	return e
}

// parseIdentifierExpr parses a bare variable reference or, when followed by
// '(', a call with comma-separated argument expressions. Argument types and
// the return type stay unpopulated until calls carry type information.
func (p *Parser) parseIdentifierExpr() Expr {
	name := p.curToken.Literal
	pos := p.curToken.Pos
	p.nextToken()

	if !p.isRaw('(') {
		return &VariableExpr{Name: name, Type: TypeNone, position: pos}
	}
	p.nextToken()

	var args []Expr
	if !p.isRaw(')') {
		for {
			arg := p.parseExpression()
			if arg == nil {
				return nil
			}
			args = append(args, arg)

			if p.isRaw(')') {
				break
			}
			if !p.isRaw(',') {
				p.addError(p.curToken, "expected ')' or ',' in argument list")
				return nil
			}
			p.nextToken()
		}
	}
	p.nextToken()

	return &CallExpr{Callee: name, Args: args, position: pos}
}

// parseTypeExpr handles a leading primitive-type keyword. The path is
// partial on purpose: it records the declared type on a VariableExpr and an
// optional name, and leaves type-directed parsing for a later front end.
func (p *Parser) parseTypeExpr() Expr {
	ty, _ := typeKeyword(p.curToken.Type)
	pos := p.curToken.Pos
	p.nextToken()

	var name string
	if p.curToken.Type == tokenIdent {
		name = p.curToken.Literal
		p.nextToken()
	}

	return &VariableExpr{Name: name, Type: ty, position: pos}
}

// parsePrototype parses `name ( param* )`. Parameters are whitespace
// delimited identifiers; declared types default to none in the minimal form.
func (p *Parser) parsePrototype() *Prototype {
	if p.curToken.Type != tokenIdent {
		p.errorExpected(p.curToken, "function name in prototype")
		return nil
	}
	name := p.curToken.Literal
	pos := p.curToken.Pos
	p.nextToken()

	if !p.isRaw('(') {
		p.errorExpected(p.curToken, "'(' in prototype")
		return nil
	}
	p.nextToken()

	var params []string
	for p.curToken.Type == tokenIdent {
		params = append(params, p.curToken.Literal)
		p.nextToken()
	}

	if !p.isRaw(')') {
		p.errorExpected(p.curToken, "')' in prototype")
		return nil
	}
	p.nextToken()

	return &Prototype{
		Name:       name,
		Params:     params,
		ParamTypes: make([]Type, len(params)),
		position:   pos,
	}
}

// parseDefinition parses `func prototype body-expression`.
func (p *Parser) parseDefinition() *Function {
	pos := p.curToken.Pos
	p.nextToken()

	proto := p.parsePrototype()
	if proto == nil {
		return nil
	}

	body := p.parseExpression()
	if body == nil {
		return nil
	}

	return &Function{Proto: proto, Body: body, position: pos}
}

// parseTopLevelExpr wraps a bare expression in an anonymous zero-parameter
// prototype so the backend handles every unit uniformly.
func (p *Parser) parseTopLevelExpr() *Function {
	pos := p.curToken.Pos

	body := p.parseExpression()
	if body == nil {
		return nil
	}

	proto := &Prototype{Name: anonFuncName, position: pos}
	return &Function{Proto: proto, Body: body, position: pos}
}
