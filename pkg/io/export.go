package io

import (
	"encoding/json"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/treeprinter/pkg/errors"
	"github.com/matzehuels/treeprinter/pkg/tree"
)

// Resolve converts a tree to its document form with decoration applied to
// the content.
func Resolve(n tree.Node) Document {
	if n.Placeholder() {
		return Document{Placeholder: true}
	}
	doc := Document{Content: n.Content()}
	if in := n.Insets(); in != tree.EmptyInset {
		v := Inset(in)
		doc.Inset = &v
	}
	for _, c := range n.Children() {
		doc.Children = append(doc.Children, Resolve(c))
	}
	return doc
}

// WriteJSON encodes the resolved document of root as indented JSON.
func WriteJSON(root tree.Node, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Resolve(root)); err != nil {
		return errors.Wrap(errors.ErrCodeSinkWrite, err, "encode json")
	}
	return nil
}

// WriteTOML encodes the resolved document of root as TOML.
func WriteTOML(root tree.Node, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(Resolve(root)); err != nil {
		return errors.Wrap(errors.ErrCodeSinkWrite, err, "encode toml")
	}
	return nil
}
