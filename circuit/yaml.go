// SPDX-License-Identifier: MIT

package circuit

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// gateKeys are the fields a mapping-form gate may use.
var gateKeys = map[string]bool{"kind": true, "qubits": true, "params": true}

// ParseGate reads the compact form "kind[(p1,p2,...)] q0 [q1]".
func ParseGate(s string) (Gate, error) {
	s = strings.TrimSpace(s)
	head, rest := s, ""
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		head, rest = s[:i], s[i:]
	}

	var g Gate
	if open := strings.IndexByte(head, '('); open >= 0 {
		end := strings.IndexByte(s, ')')
		if end < open {
			return Gate{}, errors.Wrapf(ErrSyntax, "gate %q: unclosed parameter list", s)
		}
		g.Kind = s[:open]
		if list := strings.TrimSpace(s[open+1 : end]); list != "" {
			for _, f := range strings.Split(list, ",") {
				p, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
				if err != nil {
					return Gate{}, errors.Wrapf(ErrSyntax, "gate %q: parameter %q", s, f)
				}
				g.Params = append(g.Params, p)
			}
		}
		rest = s[end+1:]
	} else {
		g.Kind = head
	}
	if g.Kind == "" {
		return Gate{}, errors.Wrapf(ErrSyntax, "gate %q: missing kind", s)
	}
	for _, f := range strings.Fields(rest) {
		q, err := strconv.Atoi(f)
		if err != nil {
			return Gate{}, errors.Wrapf(ErrSyntax, "gate %q: qubit %q", s, f)
		}
		g.Qubits = append(g.Qubits, q)
	}

	return g, nil
}

// UnmarshalYAML accepts a compact scalar or a mapping with known keys only.
func (g *Gate) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseGate(node.Value)
		if err != nil {
			return errors.Wrapf(err, "line %d", node.Line)
		}
		*g = parsed

		return nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			if key := node.Content[i].Value; !gateKeys[key] {
				return errors.Wrapf(ErrSyntax, "line %d: unknown gate field %q", node.Content[i].Line, key)
			}
		}
		type plain Gate
		var tmp plain
		if err := node.Decode(&tmp); err != nil {
			return err
		}
		*g = Gate(tmp)

		return nil
	default:
		return errors.Wrapf(ErrSyntax, "line %d: gate must be a scalar or mapping", node.Line)
	}
}

// MarshalYAML writes the compact scalar form.
func (g Gate) MarshalYAML() (any, error) { return g.String(), nil }

// Decode reads one YAML circuit document from r and validates it.
// Unknown top-level fields are rejected.
func Decode(r io.Reader) (*Circuit, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Circuit
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Wrap(err, "decode circuit")
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate circuit")
	}

	return &c, nil
}

// Load reads and validates the circuit file at path. A missing name defaults
// to the file's base name without extension.
func Load(path string) (*Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load circuit")
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load circuit %s", path)
	}
	if c.Name == "" {
		base := filepath.Base(path)
		c.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return c, nil
}

// Encode writes c as YAML with compact gates.
func Encode(w io.Writer, c *Circuit) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(err, "encode circuit")
	}

	return errors.Wrap(enc.Close(), "encode circuit")
}
