package brook

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenEOF TokenType = "EOF"

	// Keywords.
	tokenFunc  TokenType = "FUNC"
	tokenI32   TokenType = "I32"
	tokenU32   TokenType = "U32"
	tokenChar  TokenType = "CHAR"
	tokenUChar TokenType = "UCHAR"
	tokenStr   TokenType = "STR"
	tokenF32   TokenType = "F32"
	tokenUF32  TokenType = "UF32"

	tokenIdent  TokenType = "IDENT"
	tokenNumber TokenType = "NUMBER"
	tokenString TokenType = "STRING"

	// Any single character not recognized above: operators, punctuation.
	// The lexer never rejects input; validity is the parser's call.
	tokenRaw TokenType = "RAW"
)

// Token captures lexical information for the parser. Ident tokens carry
// their text in Literal, number tokens their decoded value in Value, and
// raw tokens the character in Ch.
type Token struct {
	Type    TokenType
	Literal string
	Value   float64
	Ch      rune
	Pos     Position
}

// Position identifies a line and column in the source stream.
type Position struct {
	Line   int
	Column int
}

func lookupIdent(ident string) TokenType {
	switch ident {
	case "func":
		return tokenFunc
	case "i32":
		return tokenI32
	case "u32":
		return tokenU32
	case "char":
		return tokenChar
	case "uchar":
		return tokenUChar
	case "str":
		return tokenStr
	case "f32":
		return tokenF32
	case "uf32":
		return tokenUF32
	}
	return tokenIdent
}

// typeKeyword reports the primitive type named by a keyword token, or
// TypeNone when the token is not a type keyword.
func typeKeyword(tt TokenType) (Type, bool) {
	switch tt {
	case tokenI32:
		return TypeI32, true
	case tokenU32:
		return TypeU32, true
	case tokenChar:
		return TypeChar, true
	case tokenUChar:
		return TypeUChar, true
	case tokenStr:
		return TypeStr, true
	case tokenF32:
		return TypeF32, true
	case tokenUF32:
		return TypeUF32, true
	}
	return TypeNone, false
}
