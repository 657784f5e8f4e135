package brook

import (
	"errors"
	"fmt"
)

type parseError struct {
	pos   Position
	msg   string
	atEOF bool
}

func (e *parseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.pos.Line, e.pos.Column, e.msg)
}

// IsIncomplete reports whether err was raised at end of input, meaning the
// source so far is a prefix of something parseable. Interactive drivers use
// it to prompt for a continuation line instead of reporting the error.
func IsIncomplete(err error) bool {
	var pe *parseError
	return errors.As(err, &pe) && pe.atEOF
}

func (p *Parser) addError(tok Token, msg string) {
	p.errors = append(p.errors, &parseError{pos: tok.Pos, msg: msg, atEOF: tok.Type == tokenEOF})
}

func (p *Parser) errorExpected(tok Token, expected string) {
	p.addError(tok, fmt.Sprintf("expected %s, got %s", expected, tokenLabel(tok)))
}

func tokenLabel(tok Token) string {
	switch tok.Type {
	case tokenEOF:
		return "end of input"
	case tokenIdent:
		return fmt.Sprintf("identifier %q", tok.Literal)
	case tokenNumber:
		return fmt.Sprintf("number %s", tok.Literal)
	case tokenString:
		return "string literal"
	case tokenRaw:
		return fmt.Sprintf("%q", string(tok.Ch))
	default:
		return fmt.Sprintf("keyword %q", tok.Literal)
	}
}
