package brook

// Type is the declared primitive type attached to AST nodes. Types are
// advisory at this layer: the parser records them but enforces nothing.
type Type int

const (
	TypeNone Type = iota
	TypeI32
	TypeU32
	TypeChar
	TypeUChar
	TypeStr
	TypeF32
	TypeUF32
)

func (t Type) String() string {
	switch t {
	case TypeI32:
		return "i32"
	case TypeU32:
		return "u32"
	case TypeChar:
		return "char"
	case TypeUChar:
		return "uchar"
	case TypeStr:
		return "str"
	case TypeF32:
		return "f32"
	case TypeUF32:
		return "uf32"
	default:
		return "none"
	}
}

// Node is any AST node. The node set is closed: consumers dispatch by
// exhaustive type switch (see Walk) rather than through node methods, which
// keeps the tree free of any backend dependency.
type Node interface {
	Pos() Position
}

// Expr is an expression node. Every composite expression exclusively owns
// its children; the tree is strict, with no sharing and no cycles, and no
// node is mutated after construction.
type Expr interface {
	Node
	exprNode()
}

// NumberLiteral is a numeric literal such as 1 or 1.23.
type NumberLiteral struct {
	Value    float64
	position Position
}

func (e *NumberLiteral) exprNode()     {}
func (e *NumberLiteral) Pos() Position { return e.position }

// StringLiteral is a string literal such as "hello".
type StringLiteral struct {
	Value    string
	position Position
}

func (e *StringLiteral) exprNode()     {}
func (e *StringLiteral) Pos() Position { return e.position }

// VariableExpr references a variable, optionally carrying a declared type
// when introduced through a type keyword.
type VariableExpr struct {
	Name     string
	Type     Type
	position Position
}

func (e *VariableExpr) exprNode()     {}
func (e *VariableExpr) Pos() Position { return e.position }

// BinaryExpr applies a single-character binary operator to two operands.
type BinaryExpr struct {
	Op    rune
	Left  Expr
	Right Expr

	position Position
}

func (e *BinaryExpr) exprNode()     {}
func (e *BinaryExpr) Pos() Position { return e.position }

// CallExpr calls a named function. ArgTypes, when non-empty, parallels Args;
// the minimal parser leaves it and ReturnType unpopulated.
type CallExpr struct {
	Callee     string
	Args       []Expr
	ArgTypes   []Type
	ReturnType Type

	position Position
}

func (e *CallExpr) exprNode()     {}
func (e *CallExpr) Pos() Position { return e.position }

// Prototype is a function signature: name, parameter names, and the
// parallel declared parameter types. It never owns executable content.
type Prototype struct {
	Name       string
	Params     []string
	ParamTypes []Type
	ReturnType Type

	position Position
}

func (p *Prototype) Pos() Position { return p.position }

// Function owns one prototype and the single expression that is its body.
type Function struct {
	Proto *Prototype
	Body  Expr

	position Position
}

func (f *Function) Pos() Position { return f.position }
