package brook

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// lexer turns a character stream into tokens. It keeps exactly one rune of
// lookahead in ch: every recognizer leaves the first rune it did not consume
// buffered for the next call, mirroring a getchar-style pushback buffer.
type lexer struct {
	r *bufio.Reader

	ch  rune
	eof bool

	line   int
	column int
}

func newLexer(r io.Reader) *lexer {
	l := &lexer{r: bufio.NewReader(r), line: 1, column: 0}
	l.readRune()
	return l
}

func (l *lexer) readRune() {
	r, _, err := l.r.ReadRune()
	if err != nil {
		l.eof = true
		l.ch = 0
		return
	}

	if r == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}

	l.ch = r
}

func (l *lexer) pos() Position {
	return Position{Line: l.line, Column: l.column}
}

// NextToken returns the next token from the stream. It never fails:
// unrecognized characters come back as raw tokens and the parser decides
// whether they mean anything.
func (l *lexer) NextToken() Token {
	for !l.eof && unicode.IsSpace(l.ch) {
		l.readRune()
	}

	switch {
	case l.eof:
		return Token{Type: tokenEOF, Pos: l.pos()}
	case unicode.IsLetter(l.ch):
		return l.lexIdentifier()
	case unicode.IsDigit(l.ch) || l.ch == '.':
		return l.lexNumber()
	case l.ch == '#':
		l.skipComment()
		return l.NextToken()
	case l.ch == '"':
		return l.lexString()
	default:
		tok := Token{Type: tokenRaw, Literal: string(l.ch), Ch: l.ch, Pos: l.pos()}
		l.readRune()
		return tok
	}
}

func (l *lexer) lexIdentifier() Token {
	pos := l.pos()

	var sb strings.Builder
	sb.WriteRune(l.ch)
	l.readRune()
	for !l.eof && (unicode.IsLetter(l.ch) || unicode.IsDigit(l.ch)) {
		sb.WriteRune(l.ch)
		l.readRune()
	}

	literal := sb.String()
	return Token{Type: lookupIdent(literal), Literal: literal, Pos: pos}
}

func (l *lexer) lexNumber() Token {
	pos := l.pos()

	var sb strings.Builder
	for !l.eof && (unicode.IsDigit(l.ch) || l.ch == '.') {
		sb.WriteRune(l.ch)
		l.readRune()
	}

	literal := sb.String()
	return Token{Type: tokenNumber, Literal: literal, Value: decodeNumeral(literal), Pos: pos}
}

// decodeNumeral decodes the longest valid prefix of the numeral, strtod
// style. Malformed numerals like 1.2.3 are accepted permissively (value 1.2);
// rejecting them is deferred to a later typed front end.
func decodeNumeral(literal string) float64 {
	for i := len(literal); i > 0; i-- {
		if v, err := strconv.ParseFloat(literal[:i], 64); err == nil {
			return v
		}
	}
	return 0
}

// skipComment discards a # comment through end of line.
func (l *lexer) skipComment() {
	for !l.eof && l.ch != '\n' {
		l.readRune()
	}
}

func (l *lexer) lexString() Token {
	pos := l.pos()

	var sb strings.Builder
	for {
		l.readRune()
		switch l.ch {
		case 0:
			if l.eof {
				// Unterminated string: keep what was read rather than fail;
				// the parser will see EOF next and report from there.
				return Token{Type: tokenString, Literal: sb.String(), Pos: pos}
			}
			sb.WriteRune(l.ch)
		case '"':
			l.readRune()
			return Token{Type: tokenString, Literal: sb.String(), Pos: pos}
		case '\\':
			l.readRune()
			if l.eof {
				return Token{Type: tokenString, Literal: sb.String(), Pos: pos}
			}
			switch l.ch {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteRune(l.ch)
			}
		default:
			sb.WriteRune(l.ch)
		}
	}
}
