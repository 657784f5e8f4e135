package brook

// Visitor is the consumer contract for a backend: one method per node
// variant. Walk drives the traversal so a backend only lowers nodes.
type Visitor interface {
	VisitNumberLiteral(*NumberLiteral)
	VisitStringLiteral(*StringLiteral)
	VisitVariableExpr(*VariableExpr)
	VisitBinaryExpr(*BinaryExpr)
	VisitCallExpr(*CallExpr)
	VisitPrototype(*Prototype)
	VisitFunction(*Function)
}

// Walk visits n and then its children, depth first, left to right. The
// switch is exhaustive over the closed node set.
func Walk(n Node, v Visitor) {
	switch n := n.(type) {
	case *NumberLiteral:
		v.VisitNumberLiteral(n)
	case *StringLiteral:
		v.VisitStringLiteral(n)
	case *VariableExpr:
		v.VisitVariableExpr(n)
	case *BinaryExpr:
		v.VisitBinaryExpr(n)
		Walk(n.Left, v)
		Walk(n.Right, v)
	case *CallExpr:
		v.VisitCallExpr(n)
		for _, arg := range n.Args {
			Walk(arg, v)
		}
	case *Prototype:
		v.VisitPrototype(n)
	case *Function:
		v.VisitFunction(n)
		Walk(n.Proto, v)
		Walk(n.Body, v)
	}
}

// BaseVisitor provides no-op implementations for every method so concrete
// visitors can override only what they need.
type BaseVisitor struct{}

func (BaseVisitor) VisitNumberLiteral(*NumberLiteral) {}
func (BaseVisitor) VisitStringLiteral(*StringLiteral) {}
func (BaseVisitor) VisitVariableExpr(*VariableExpr)   {}
func (BaseVisitor) VisitBinaryExpr(*BinaryExpr)       {}
func (BaseVisitor) VisitCallExpr(*CallExpr)           {}
func (BaseVisitor) VisitPrototype(*Prototype)         {}
func (BaseVisitor) VisitFunction(*Function)           {}
