// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"iter"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Supported container value types and fills.
const (
	TypeFloat64    = "float64"
	TypeComplex128 = "complex128"

	FillZero     = "zero"
	FillOne      = "one"
	FillIdentity = "identity" // matrices only; uses rows as the domain
)

// Entry is one keyed value as written in the document.
type Entry struct {
	Key   string
	Value string
}

// MatrixEntry is one (row, col) value as written in the document.
type MatrixEntry struct {
	Row, Col string
	Value    string
}

// VectorDef declares a named input vector.
type VectorDef struct {
	Name    string
	Type    string
	Domain  []string
	Fill    string
	Entries []Entry
}

// MatrixDef declares a named input matrix.
type MatrixDef struct {
	Name string
	Type string
	Rows []string
	Cols []string
	Fill string
	// EntryRows lists every row key under entries in document order,
	// including rows declared with an empty mapping.
	EntryRows []string
	Entries   []MatrixEntry
}

// Op is one step of the evaluation. Its result is bound to Name and can be
// used as an argument by later steps.
type Op struct {
	Name   string   `yaml:"name"`
	Op     string   `yaml:"op"`
	Args   []string `yaml:"args"`
	Scalar string   `yaml:"scalar,omitempty"` // factor for "scale"
}

// Document is a decoded calc document. Declaration order is kept.
type Document struct {
	Vectors  []VectorDef
	Matrices []MatrixDef
	Ops      []Op
}

type rawDocument struct {
	Vectors  yaml.Node `yaml:"vectors"`
	Matrices yaml.Node `yaml:"matrices"`
	Ops      []Op      `yaml:"ops"`
}

type rawVector struct {
	Type    string    `yaml:"type"`
	Domain  []string  `yaml:"domain"`
	Fill    string    `yaml:"fill"`
	Entries yaml.Node `yaml:"entries"`
}

type rawMatrix struct {
	Type    string    `yaml:"type"`
	Rows    []string  `yaml:"rows"`
	Cols    []string  `yaml:"cols"`
	Fill    string    `yaml:"fill"`
	Entries yaml.Node `yaml:"entries"`
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a document.
// Errors: ErrLayout, ErrValueType, ErrDuplicateName, ErrUnknownOp, ErrArity,
// or a yaml syntax error.
func Parse(data []byte) (*Document, error) {
	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}

	doc := &Document{Ops: raw.Ops}
	vectors, err := mapping(&raw.Vectors, "vectors")
	if err != nil {
		return nil, err
	}
	for name, node := range vectors {
		def, err := decodeVector(name.Value, node)
		if err != nil {
			return nil, err
		}
		doc.Vectors = append(doc.Vectors, def)
	}

	matrices, err := mapping(&raw.Matrices, "matrices")
	if err != nil {
		return nil, err
	}
	for name, node := range matrices {
		def, err := decodeMatrix(name.Value, node)
		if err != nil {
			return nil, err
		}
		doc.Matrices = append(doc.Matrices, def)
	}

	if err := doc.validate(); err != nil {
		return nil, err
	}

	return doc, nil
}

func decodeVector(name string, node *yaml.Node) (VectorDef, error) {
	tag := "vector " + name
	var rv rawVector
	if err := node.Decode(&rv); err != nil {
		return VectorDef{}, calcErrorf(tag, fmt.Errorf("%w: %v", ErrLayout, err))
	}
	def := VectorDef{Name: name, Type: rv.Type, Domain: rv.Domain, Fill: rv.Fill}
	entries, err := mapping(&rv.Entries, tag)
	if err != nil {
		return VectorDef{}, err
	}
	for k, v := range entries {
		if v.Kind != yaml.ScalarNode {
			return VectorDef{}, calcErrorf(tag+": entry "+k.Value, ErrLayout)
		}
		def.Entries = append(def.Entries, Entry{Key: k.Value, Value: v.Value})
	}

	return def, nil
}

func decodeMatrix(name string, node *yaml.Node) (MatrixDef, error) {
	tag := "matrix " + name
	var rm rawMatrix
	if err := node.Decode(&rm); err != nil {
		return MatrixDef{}, calcErrorf(tag, fmt.Errorf("%w: %v", ErrLayout, err))
	}
	def := MatrixDef{Name: name, Type: rm.Type, Rows: rm.Rows, Cols: rm.Cols, Fill: rm.Fill}
	rows, err := mapping(&rm.Entries, tag)
	if err != nil {
		return MatrixDef{}, err
	}
	for r, rowNode := range rows {
		cells, err := mapping(rowNode, tag+": row "+r.Value)
		if err != nil {
			return MatrixDef{}, err
		}
		def.EntryRows = append(def.EntryRows, r.Value)
		for c, v := range cells {
			if v.Kind != yaml.ScalarNode {
				return MatrixDef{}, calcErrorf(tag+": cell "+r.Value+","+c.Value, ErrLayout)
			}
			def.Entries = append(def.Entries, MatrixEntry{Row: r.Value, Col: c.Value, Value: v.Value})
		}
	}

	return def, nil
}

// mapping yields the key/value pairs of a mapping node in document order.
// An absent or null node yields nothing.
func mapping(n *yaml.Node, tag string) (iter.Seq2[*yaml.Node, *yaml.Node], error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.Tag == "!!null") {
		return func(func(*yaml.Node, *yaml.Node) bool) {}, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, calcErrorf(tag, ErrLayout)
	}

	return func(yield func(*yaml.Node, *yaml.Node) bool) {
		for i := 0; i+1 < len(n.Content); i += 2 {
			if !yield(n.Content[i], n.Content[i+1]) {
				return
			}
		}
	}, nil
}

// validate checks names, types, fills and op shapes before any arithmetic runs.
func (d *Document) validate() error {
	seen := make(map[string]struct{})
	define := func(name string) error {
		if name == "" {
			return calcErrorf("empty name", ErrLayout)
		}
		if _, dup := seen[name]; dup {
			return calcErrorf(name, ErrDuplicateName)
		}
		seen[name] = struct{}{}

		return nil
	}

	for _, v := range d.Vectors {
		if err := define(v.Name); err != nil {
			return err
		}
		if err := checkType(v.Type, v.Name); err != nil {
			return err
		}
		if v.Fill != "" && v.Fill != FillZero && v.Fill != FillOne {
			return calcErrorf(fmt.Sprintf("vector %s: fill %q", v.Name, v.Fill), ErrLayout)
		}
	}
	for _, m := range d.Matrices {
		if err := define(m.Name); err != nil {
			return err
		}
		if err := checkType(m.Type, m.Name); err != nil {
			return err
		}
		switch m.Fill {
		case "", FillZero, FillOne:
		case FillIdentity:
			// identity is square over rows; cols may only repeat them
			if len(m.Cols) > 0 && !slices.Equal(m.Cols, m.Rows) {
				return calcErrorf(fmt.Sprintf("matrix %s: identity cols %v differ from rows %v", m.Name, m.Cols, m.Rows), ErrLayout)
			}
		default:
			return calcErrorf(fmt.Sprintf("matrix %s: fill %q", m.Name, m.Fill), ErrLayout)
		}
	}
	for _, op := range d.Ops {
		spec, ok := operations[op.Op]
		if !ok {
			return calcErrorf(fmt.Sprintf("op %s: %q", op.Name, op.Op), ErrUnknownOp)
		}
		if len(op.Args) != spec.arity {
			return calcErrorf(fmt.Sprintf("op %s: %s takes %d, got %d", op.Name, op.Op, spec.arity, len(op.Args)), ErrArity)
		}
		if op.Op == "scale" && op.Scalar == "" {
			return calcErrorf(fmt.Sprintf("op %s: scale needs a scalar", op.Name), ErrLayout)
		}
		if err := define(op.Name); err != nil {
			return err
		}
	}

	return nil
}

func checkType(t, name string) error {
	switch t {
	case "", TypeFloat64, TypeComplex128:
		return nil
	default:
		return calcErrorf(fmt.Sprintf("%s: type %q", name, t), ErrValueType)
	}
}
