package brook

import (
	"reflect"
	"testing"
)

type collectingVisitor struct {
	BaseVisitor
	kinds []string
}

func (v *collectingVisitor) VisitNumberLiteral(*NumberLiteral) { v.kinds = append(v.kinds, "number") }
func (v *collectingVisitor) VisitVariableExpr(e *VariableExpr) {
	v.kinds = append(v.kinds, "variable "+e.Name)
}
func (v *collectingVisitor) VisitBinaryExpr(*BinaryExpr) { v.kinds = append(v.kinds, "binary") }
func (v *collectingVisitor) VisitCallExpr(e *CallExpr)   { v.kinds = append(v.kinds, "call "+e.Callee) }
func (v *collectingVisitor) VisitPrototype(*Prototype)   { v.kinds = append(v.kinds, "prototype") }
func (v *collectingVisitor) VisitFunction(*Function)     { v.kinds = append(v.kinds, "function") }

func TestWalkVisitsDepthFirst(t *testing.T) {
	fn := parseOne(t, "func add(a b) a + b")

	v := &collectingVisitor{}
	Walk(fn, v)

	want := []string{"function", "prototype", "binary", "variable a", "variable b"}
	if !reflect.DeepEqual(v.kinds, want) {
		t.Fatalf("expected visit order %v, got %v", want, v.kinds)
	}
}

func TestWalkVisitsCallArgumentsInOrder(t *testing.T) {
	fn := parseOne(t, "foo(1, bar(2))")

	v := &collectingVisitor{}
	Walk(fn.Body, v)

	want := []string{"call foo", "number", "call bar", "number"}
	if !reflect.DeepEqual(v.kinds, want) {
		t.Fatalf("expected visit order %v, got %v", want, v.kinds)
	}
}

func TestBaseVisitorIsNoOp(t *testing.T) {
	fn := parseOne(t, "1 + 2")
	// Must not panic with every method defaulted.
	Walk(fn, &struct{ BaseVisitor }{})
}
