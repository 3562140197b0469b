package io

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/treeprinter/pkg/errors"
	"github.com/matzehuels/treeprinter/pkg/observability"
	"github.com/matzehuels/treeprinter/pkg/tree"
)

// MaxDepth bounds how deeply documents may nest.
const MaxDepth = 1000

var strategies = map[string]tree.Strategy{
	"box":       tree.Box{},
	"box-ascii": tree.Box{ASCII: true},
	"brackets":  tree.Brackets{Open: "[", Close: "]"},
}

// Document is the serialized form of one node and its subtree.
type Document struct {
	Content     string     `json:"content,omitempty" toml:"content,omitempty"`
	Placeholder bool       `json:"placeholder,omitempty" toml:"placeholder,omitempty"`
	Inset       *Inset     `json:"inset,omitempty" toml:"inset,omitempty"`
	Decorate    string     `json:"decorate,omitempty" toml:"decorate,omitempty"`
	Inherit     *bool      `json:"inherit,omitempty" toml:"inherit,omitempty"`
	Children    []Document `json:"children,omitempty" toml:"children,omitempty"`
}

// Inset is the serialized form of [tree.Inset].
type Inset struct {
	Top    int `json:"top,omitempty" toml:"top,omitempty"`
	Right  int `json:"right,omitempty" toml:"right,omitempty"`
	Bottom int `json:"bottom,omitempty" toml:"bottom,omitempty"`
	Left   int `json:"left,omitempty" toml:"left,omitempty"`
}

// ReadJSON decodes a JSON document from r and builds the tree.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (tree.Node, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode")
	}
	return Build(doc)
}

// ReadTOML decodes a TOML document from r and builds the tree.
// ReadTOML does not close r.
func ReadTOML(r io.Reader) (tree.Node, error) {
	var doc Document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown key %s", undecoded[0])
	}
	return Build(doc)
}

// Import reads the document at path, choosing the format by extension
// (".json" or ".toml").
func Import(ctx context.Context, path string) (n tree.Node, err error) {
	start := time.Now()
	hooks := observability.Document()
	hooks.OnLoadStart(ctx, path)
	defer func() {
		count := 0
		if n != nil {
			count = tree.Count(n)
		}
		hooks.OnLoadComplete(ctx, path, count, time.Since(start), err)
	}()

	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}

	var read func(io.Reader) (tree.Node, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		read = ReadJSON
	case ".toml":
		read = ReadTOML
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported document type %q (want .json or .toml)", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	n, err = read(f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return n, nil
}

// Build turns a decoded document into a tree.
func Build(doc Document) (tree.Node, error) {
	return build(doc, "root", 0)
}

func build(doc Document, where string, depth int) (tree.Node, error) {
	if depth > MaxDepth {
		return nil, errors.New(errors.ErrCodeInvalidTree, "%s: nesting deeper than %d", where, MaxDepth)
	}

	if doc.Placeholder {
		if doc.Content != "" || len(doc.Children) > 0 || doc.Decorate != "" {
			return nil, errors.New(errors.ErrCodeInvalidTree, "%s: placeholder must not have content, children or decoration", where)
		}
		return tree.NewPlaceholder(), nil
	}

	if err := errors.ValidateContent(doc.Content); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTree, err, "%s", where)
	}

	inset := tree.EmptyInset
	if doc.Inset != nil {
		if doc.Inset.Top < 0 || doc.Inset.Right < 0 || doc.Inset.Bottom < 0 || doc.Inset.Left < 0 {
			return nil, errors.New(errors.ErrCodeInvalidTree, "%s: negative inset", where)
		}
		inset = tree.Inset(*doc.Inset)
	}

	n := tree.NewWithInset(doc.Content, inset)
	for i, child := range doc.Children {
		c, err := build(child, fmt.Sprintf("%s.children[%d]", where, i), depth+1)
		if err != nil {
			return nil, err
		}
		n.Add(c)
	}

	if doc.Decorate == "" {
		return n, nil
	}
	s, ok := strategies[doc.Decorate]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidTree, "%s: unknown decoration %q (must be one of: box, box-ascii, brackets)", where, doc.Decorate)
	}
	inherit := true
	if doc.Inherit != nil {
		inherit = *doc.Inherit
	}
	return tree.Decorate(n, s, tree.WithInherit(inherit)), nil
}
