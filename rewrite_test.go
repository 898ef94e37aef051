package boolidx

import "testing"

const fixtureTotalDocs = 5

func TestFlattenAssociativeChain(t *testing.T) {
	// bill AND gates AND steve should flatten into one 3-ary AND.
	rpn, err := Parse("bill AND gates AND steve")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	tree, err := Build(rpn, fixtureResolve)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	tree = Rewrite(tree, fixtureTotalDocs)

	if tree.Op != OpAnd || len(tree.Children) != 3 {
		t.Fatalf("tree = %+v, want flat 3-ary AND", tree)
	}
}

func TestDoubleNotElimination(t *testing.T) {
	rpn, err := Parse("NOT NOT bill")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	tree, err := Build(rpn, fixtureResolve)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	tree = Rewrite(tree, fixtureTotalDocs)

	if tree.Op != OpLeaf || tree.Term != "bill" {
		t.Fatalf("tree = %+v, want LEAF(bill)", tree)
	}
}

func TestDeMorganContraction(t *testing.T) {
	// NOT bill AND NOT gates -> NOT (bill OR gates)
	rpn, err := Parse("NOT bill AND NOT gates")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	tree, err := Build(rpn, fixtureResolve)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	tree = Rewrite(tree, fixtureTotalDocs)

	if tree.Op != OpNot {
		t.Fatalf("tree.Op = %v, want NOT", tree.Op)
	}
	inner := tree.Children[0]
	if inner.Op != OpOr || len(inner.Children) != 2 {
		t.Fatalf("inner = %+v, want OR with 2 children", inner)
	}
}

func TestAndNotFusion(t *testing.T) {
	// bill AND NOT gates -> AND_NOT(bill, gates)
	rpn, err := Parse("bill AND NOT gates")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	tree, err := Build(rpn, fixtureResolve)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	tree = Rewrite(tree, fixtureTotalDocs)

	if tree.Op != OpAndNot {
		t.Fatalf("tree.Op = %v, want AND_NOT", tree.Op)
	}
	if tree.Children[0].Term != "bill" || tree.Children[1].Term != "gates" {
		t.Fatalf("tree.Children = %+v, want [bill, gates]", tree.Children)
	}
}

func TestExpectedCountBottomUp(t *testing.T) {
	rpn, err := Parse("bill OR gates")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	tree, err := Build(rpn, fixtureResolve)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	tree = Rewrite(tree, fixtureTotalDocs)

	// bill has 3 postings, gates has 2: OR's estimate is their sum.
	if tree.ExpectedCount != 5 {
		t.Errorf("ExpectedCount = %d, want 5", tree.ExpectedCount)
	}
}
