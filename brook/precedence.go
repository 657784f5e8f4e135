package brook

import "unicode"

// binOpPrecedence maps a binary-operator character to its binding strength.
// Higher binds tighter; values must stay positive, since precedenceOf uses
// -1 as the "not a binary operator" sentinel that ends precedence climbing.
var binOpPrecedence = map[rune]int{
	'<': 10,
	'+': 20,
	'-': 20,
	'*': 40,
	'/': 40,
}

func precedenceOf(tok Token) int {
	if tok.Type != tokenRaw || tok.Ch > unicode.MaxASCII {
		return -1
	}

	prec, ok := binOpPrecedence[tok.Ch]
	if !ok || prec <= 0 {
		return -1
	}
	return prec
}
