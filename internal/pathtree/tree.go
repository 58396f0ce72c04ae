// Package pathtree groups slash separated paths into a nested tree for
// display.
package pathtree

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Tree maps a path segment to the tree of its children. A leaf maps to an
// empty Tree.
type Tree map[string]Tree

// Build groups paths by their first segment and recurses on the rest.
// Empty paths and empty segments are dropped, and a path that is a prefix
// of another adds nothing beyond what the longer path already implies.
func Build(paths []string) Tree {
	split := make([][]string, 0, len(paths))
	for _, p := range paths {
		if segs := segments(p); len(segs) > 0 {
			split = append(split, segs)
		}
	}
	return build(split)
}

func build(paths [][]string) Tree {
	tree := make(Tree)
	var order []string
	groups := make(map[string][][]string)
	for _, segs := range paths {
		head := segs[0]
		if _, seen := groups[head]; !seen {
			order = append(order, head)
			groups[head] = nil
		}
		if rest := segs[1:]; len(rest) > 0 {
			groups[head] = append(groups[head], rest)
		}
	}
	for _, head := range order {
		tree[head] = build(groups[head])
	}
	return tree
}

func segments(p string) []string {
	p = filepath.ToSlash(p)
	var segs []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// Paths returns every leaf of t as a slash separated path, sorted.
func (t Tree) Paths() []string {
	var out []string
	t.walk("", func(p string, leaf bool) {
		if leaf {
			out = append(out, p)
		}
	})
	return out
}

func (t Tree) walk(prefix string, fn func(p string, leaf bool)) {
	for _, k := range t.keys() {
		p := k
		if prefix != "" {
			p = prefix + "/" + k
		}
		child := t[k]
		fn(p, len(child) == 0)
		child.walk(p, fn)
	}
}

func (t Tree) keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// YAML renders t as an indented YAML mapping with sorted keys. Leaves
// render as {}.
func (t Tree) YAML() (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return "", errors.Wrap(err, "encoding tree")
	}
	if err := enc.Close(); err != nil {
		return "", errors.Wrap(err, "encoding tree")
	}
	return buf.String(), nil
}

// String renders t as YAML.
func (t Tree) String() string {
	s, err := t.YAML()
	if err != nil {
		return fmt.Sprintf("pathtree: %v", err)
	}
	return s
}

// Render writes t to w as an indented listing using box drawing
// characters, the way tree(1) prints directories.
func (t Tree) Render(w io.Writer) error {
	return t.render(w, "")
}

func (t Tree) render(w io.Writer, indent string) error {
	keys := t.keys()
	for i, k := range keys {
		branch, next := "├── ", "│   "
		if i == len(keys)-1 {
			branch, next = "└── ", "    "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", indent, branch, k); err != nil {
			return errors.Wrap(err, "writing tree")
		}
		if err := t[k].render(w, indent+next); err != nil {
			return err
		}
	}
	return nil
}
