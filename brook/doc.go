// Package brook implements the front end of the Brook language: a streaming
// lexer with one character of pushback and a recursive-descent parser with
// precedence climbing for binary expressions. The parser produces one
// Function node per top-level unit:
//   - Function definitions via `func name(a b) expr` with a single
//     expression body.
//   - Bare expressions, wrapped in an anonymous zero-parameter prototype.
//   - Literals for numbers and strings, variable references, calls with
//     comma-separated arguments, and the binary operators <, +, -, *, /.
//   - Primitive type keywords (i32, u32, char, uchar, str, f32, uf32) are
//     lexed and attached to nodes as declared types but not yet enforced.
//
// Comments beginning with `#` run to end of line. The lexer never fails:
// unrecognized characters become raw tokens and the parser decides whether
// they belong. A failed parse yields no node and one diagnostic; no semantic
// analysis or code generation happens at this layer.
package brook
