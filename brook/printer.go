package brook

import (
	"fmt"
	"strconv"
	"strings"
)

/* ---------- source-shaped printing ---------- */

// Print renders a node back as source-shaped text. Re-lexing the output of a
// literal or variable node reproduces an equivalent node. Binary expressions
// are parenthesized so the printed nesting matches the tree.
func Print(n Node) string {
	var b strings.Builder
	printNode(&b, n)
	return b.String()
}

func printNode(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *NumberLiteral:
		// 'f' keeps the text inside the lexer's numeral grammar; 'g' would
		// emit exponent notation the lexer cannot re-read.
		b.WriteString(strconv.FormatFloat(n.Value, 'f', -1, 64))
	case *StringLiteral:
		b.WriteString(quoteString(n.Value))
	case *VariableExpr:
		if n.Type != TypeNone {
			b.WriteString(n.Type.String())
			if n.Name != "" {
				b.WriteByte(' ')
			}
		}
		b.WriteString(n.Name)
	case *BinaryExpr:
		b.WriteByte('(')
		printNode(b, n.Left)
		fmt.Fprintf(b, " %c ", n.Op)
		printNode(b, n.Right)
		b.WriteByte(')')
	case *CallExpr:
		b.WriteString(n.Callee)
		b.WriteByte('(')
		for i, arg := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			printNode(b, arg)
		}
		b.WriteByte(')')
	case *Prototype:
		b.WriteString(n.Name)
		b.WriteByte('(')
		b.WriteString(strings.Join(n.Params, " "))
		b.WriteByte(')')
	case *Function:
		if n.Proto.Name == anonFuncName {
			printNode(b, n.Body)
			return
		}
		b.WriteString("func ")
		printNode(b, n.Proto)
		b.WriteByte(' ')
		printNode(b, n.Body)
	}
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

/* ---------- tree dump ---------- */

const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorBlue  = "\033[34m"
)

// Dump renders an indented tree view of a node, optionally with ANSI color
// for interactive use.
func Dump(n Node, color bool) string {
	o := &out{color: color}
	o.node(n)
	return o.b.String()
}

type out struct {
	b     strings.Builder
	depth int
	color bool
}

func (o *out) line(s string) {
	for i := 0; i < o.depth; i++ {
		o.b.WriteString("  ")
	}
	o.b.WriteString(s)
	o.b.WriteByte('\n')
}

func (o *out) withIndent(fn func()) {
	o.depth++
	fn()
	o.depth--
}

func (o *out) colorize(s, c string) string {
	if !o.color {
		return s
	}
	return c + s + colorReset
}

func (o *out) blue(s string) string  { return o.colorize(s, colorBlue) }
func (o *out) green(s string) string { return o.colorize(s, colorGreen) }

func (o *out) node(n Node) {
	switch n := n.(type) {
	case *NumberLiteral:
		o.line(o.blue("number ") + o.green(strconv.FormatFloat(n.Value, 'f', -1, 64)))
	case *StringLiteral:
		o.line(o.blue("string ") + o.green(quoteString(n.Value)))
	case *VariableExpr:
		label := o.blue("variable ") + n.Name
		if n.Type != TypeNone {
			label += ": " + n.Type.String()
		}
		o.line(label)
	case *BinaryExpr:
		o.line(o.blue("binary ") + string(n.Op))
		o.withIndent(func() {
			o.node(n.Left)
			o.node(n.Right)
		})
	case *CallExpr:
		o.line(o.blue("call ") + n.Callee)
		o.withIndent(func() {
			for _, arg := range n.Args {
				o.node(arg)
			}
		})
	case *Prototype:
		o.line(o.blue("prototype ") + Print(n))
	case *Function:
		o.line(o.blue("func ") + n.Proto.Name)
		o.withIndent(func() {
			o.node(n.Proto)
			o.node(n.Body)
		})
	}
}
