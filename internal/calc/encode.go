// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// WriteText prints each result as "name = value". Containers use their
// listing, which already ends in a newline.
func WriteText(w io.Writer, results []Result) error {
	for _, r := range results {
		format := "%s = %s\n"
		if r.Value.Kind() != KindScalar {
			format = "%s = %s"
		}
		if _, err := fmt.Fprintf(w, format, r.Name, r.Value); err != nil {
			return fmt.Errorf("write result %s: %w", r.Name, err)
		}
	}

	return nil
}

// WriteYAML encodes the results as a YAML sequence. Key order in every
// entries mapping follows the container's key order.
func WriteYAML(w io.Writer, results []Result) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, r := range results {
		seq.Content = append(seq.Content, resultNode(r))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(seq); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	return enc.Close()
}

func resultNode(r Result) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	put(n, "name", scalarNode(r.Name))
	put(n, "op", scalarNode(r.Op))
	put(n, "kind", scalarNode(r.Value.Kind().String()))
	put(n, "type", scalarNode(r.Value.TypeName()))

	v := r.Value
	switch v.Kind() {
	case KindScalar:
		put(n, "value", scalarNode(v.String()))
	case KindVector:
		put(n, "entries", vectorNode(v))
	case KindMatrix:
		put(n, "entries", matrixNode(v))
	}

	return n
}

func vectorNode(v Value) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	if v.complex {
		for k, x := range v.cv.All() {
			put(n, k, scalarNode(formatComplex(x)))
		}

		return n
	}
	for k, x := range v.rv.All() {
		put(n, k, scalarNode(formatReal(x)))
	}

	return n
}

// matrixNode writes every cell of rows × cols, unstored cells as zero.
func matrixNode(v Value) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	if v.complex {
		for _, r := range v.cm.RowKeys() {
			row := &yaml.Node{Kind: yaml.MappingNode}
			for _, c := range v.cm.ColKeys() {
				put(row, c, scalarNode(formatComplex(v.cm.Get(r, c))))
			}
			put(n, r, row)
		}

		return n
	}
	for _, r := range v.rm.RowKeys() {
		row := &yaml.Node{Kind: yaml.MappingNode}
		for _, c := range v.rm.ColKeys() {
			put(row, c, scalarNode(formatReal(v.rm.Get(r, c))))
		}
		put(n, r, row)
	}

	return n
}

func scalarNode(s string) *yaml.Node { return &yaml.Node{Kind: yaml.ScalarNode, Value: s} }

func put(m *yaml.Node, key string, val *yaml.Node) {
	m.Content = append(m.Content, scalarNode(key), val)
}
