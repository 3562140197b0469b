package render_test

import (
	"context"
	"os"

	"github.com/matzehuels/treeprinter/pkg/render"
	"github.com/matzehuels/treeprinter/pkg/render/layout"
	"github.com/matzehuels/treeprinter/pkg/tree"
)

func ExamplePrinter_Print() {
	root := tree.New("root").Add(
		tree.New("a").Add(tree.New("x"), tree.New("y")),
		tree.New("bc"),
	)

	if err := render.New().Print(context.Background(), root, os.Stdout); err != nil {
		panic(err)
	}
	// Output:
	//  root
	//  ┌─┴─┐
	//  │   │
	//  a  bc
	// ┌┴┐
	// │ │
	// x y
}

func ExampleWithAligner() {
	a, err := layout.New(layout.DefaultOptions().WithGap(3))
	if err != nil {
		panic(err)
	}

	root := tree.New("R").Add(tree.New("A"), tree.New("BB"))
	out, err := render.New(render.WithAligner(a)).Sprint(context.Background(), root)
	if err != nil {
		panic(err)
	}
	os.Stdout.WriteString(out)
	// Output:
	//   R
	// ┌─┴──┐
	// │    │
	// A   BB
}
