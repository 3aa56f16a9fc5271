// Package options implements the three configuration trees (server, session
// and window scope) the client hands to the server side. Each tree is
// populated from a static schema and owns its values independently.
package options

import (
	"fmt"
	"strconv"
	"strings"
)

// Type describes how an option value is stored and parsed.
type Type int

const (
	TypeString Type = iota
	TypeNumber
	TypeFlag
	TypeChoice
)

// Option is one schema entry.
type Option struct {
	Name    string
	Type    Type
	Default any      // string, int or bool matching Type
	Choices []string // TypeChoice only
}

// Tree maps option names to typed values within one scope.
type Tree struct {
	schema map[string]Option
	values map[string]any
}

// NewTree builds a tree pre-populated with the schema defaults.
func NewTree(table []Option) *Tree {
	t := &Tree{
		schema: make(map[string]Option, len(table)),
		values: make(map[string]any, len(table)),
	}
	for _, opt := range table {
		t.schema[opt.Name] = opt
		t.values[opt.Name] = opt.Default
	}
	return t
}

// Has reports whether name is declared in this tree's schema.
func (t *Tree) Has(name string) bool {
	_, ok := t.schema[name]
	return ok
}

// Set parses raw according to the declared type and stores it. Unknown
// names and unparseable or out-of-choice values are errors.
func (t *Tree) Set(name, raw string) error {
	opt, ok := t.schema[name]
	if !ok {
		return fmt.Errorf("unknown option: %s", name)
	}
	switch opt.Type {
	case TypeString:
		t.values[name] = raw
	case TypeNumber:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("option %s: bad number %q", name, raw)
		}
		t.values[name] = n
	case TypeFlag:
		switch strings.ToLower(raw) {
		case "on", "1", "true", "yes":
			t.values[name] = true
		case "off", "0", "false", "no":
			t.values[name] = false
		default:
			return fmt.Errorf("option %s: bad flag value %q", name, raw)
		}
	case TypeChoice:
		for _, c := range opt.Choices {
			if raw == c {
				t.values[name] = raw
				return nil
			}
		}
		return fmt.Errorf("option %s: %q not in %v", name, raw, opt.Choices)
	}
	return nil
}

// String returns the value of a string or choice option.
func (t *Tree) String(name string) string {
	if v, ok := t.values[name].(string); ok {
		return v
	}
	return ""
}

// Number returns the value of a number option.
func (t *Tree) Number(name string) int {
	if v, ok := t.values[name].(int); ok {
		return v
	}
	return 0
}

// Flag returns the value of a flag option.
func (t *Tree) Flag(name string) bool {
	if v, ok := t.values[name].(bool); ok {
		return v
	}
	return false
}
