package tree_test

import (
	"fmt"

	"github.com/matzehuels/treeprinter/pkg/tree"
)

func ExampleDecorate() {
	root := tree.New("root").Add(tree.New("a"), tree.NewPlaceholder())
	decorated := tree.Decorate(root, tree.Brackets{Open: "[", Close: "]"})

	fmt.Println(decorated.Content())
	for _, c := range decorated.Children() {
		fmt.Println(c.Content())
	}
	// Output:
	// [root]
	// [a]
	// PLACEHOLDER
}

func ExampleWalk() {
	root := tree.New("app").Add(
		tree.New("auth").Add(tree.New("crypto")),
		tree.New("cache"),
	)

	tree.Walk(root, func(n tree.Node, depth int) bool {
		fmt.Printf("%d %s\n", depth, n.Content())
		return true
	})
	// Output:
	// 0 app
	// 1 auth
	// 2 crypto
	// 1 cache
}
