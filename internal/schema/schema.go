// Package schema implements the small JSON Schema subset used to validate
// the tmpl-sync configuration document. It supports exactly the operators
// the bundled config schema needs: type, minLength, minItems, required,
// properties, items, and additionalProperties. It is not a general-purpose
// JSON Schema implementation.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

// Node is a declarative description of the allowed shape of a JSON value.
// All fields are optional; a Node with no recognized operators matches
// anything.
type Node struct {
	// Types holds the acceptable kind names. Empty means any kind.
	Types []string

	MinLength *int
	MinItems  *int

	// Required lists property names that must be present on object values,
	// in schema declaration order.
	Required []string

	Properties map[string]*Node

	// Items applies to every element of array values.
	Items *Node

	// AdditionalDisallowed rejects object keys not listed in Properties.
	// Additional, when non-nil, instead validates such keys against it.
	// Both unset means extra keys are unchecked.
	AdditionalDisallowed bool
	Additional           *Node
}

var kindNames = map[string]bool{
	"null":    true,
	"boolean": true,
	"number":  true,
	"string":  true,
	"object":  true,
	"array":   true,
}

// ParseNode builds a Node from a parsed JSON schema document. Keys outside
// the supported operator set are ignored.
func ParseNode(doc any) (*Node, error) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("schema node must be an object, got %s", KindOf(doc))
	}

	node := &Node{}

	if raw, present := obj["type"]; present {
		types, err := parseTypes(raw)
		if err != nil {
			return nil, err
		}
		node.Types = types
	}

	if raw, present := obj["minLength"]; present {
		n, err := parseNonNegativeInt("minLength", raw)
		if err != nil {
			return nil, err
		}
		node.MinLength = &n
	}

	if raw, present := obj["minItems"]; present {
		n, err := parseNonNegativeInt("minItems", raw)
		if err != nil {
			return nil, err
		}
		node.MinItems = &n
	}

	if raw, present := obj["required"]; present {
		arr, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("'required' must be an array of strings")
		}
		for _, el := range arr {
			name, ok := el.(string)
			if !ok {
				return nil, fmt.Errorf("'required' must be an array of strings")
			}
			node.Required = append(node.Required, name)
		}
	}

	if raw, present := obj["properties"]; present {
		props, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("'properties' must be an object")
		}
		node.Properties = make(map[string]*Node, len(props))
		for name, sub := range props {
			child, err := ParseNode(sub)
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", name, err)
			}
			node.Properties[name] = child
		}
	}

	if raw, present := obj["items"]; present {
		child, err := ParseNode(raw)
		if err != nil {
			return nil, fmt.Errorf("'items': %w", err)
		}
		node.Items = child
	}

	if raw, present := obj["additionalProperties"]; present {
		switch v := raw.(type) {
		case bool:
			node.AdditionalDisallowed = !v
		case map[string]any:
			child, err := ParseNode(v)
			if err != nil {
				return nil, fmt.Errorf("'additionalProperties': %w", err)
			}
			node.Additional = child
		default:
			return nil, fmt.Errorf("'additionalProperties' must be a boolean or a schema")
		}
	}

	return node, nil
}

func parseTypes(raw any) ([]string, error) {
	switch v := raw.(type) {
	case string:
		if !kindNames[v] {
			return nil, fmt.Errorf("unknown type name %q", v)
		}
		return []string{v}, nil
	case []any:
		var types []string
		for _, el := range v {
			name, ok := el.(string)
			if !ok || !kindNames[name] {
				return nil, fmt.Errorf("'type' set must contain kind names")
			}
			types = append(types, name)
		}
		if len(types) == 0 {
			return nil, fmt.Errorf("'type' set must not be empty")
		}
		return types, nil
	default:
		return nil, fmt.Errorf("'type' must be a kind name or an array of kind names")
	}
}

func parseNonNegativeInt(key string, raw any) (int, error) {
	f, ok := raw.(float64)
	if !ok || f != float64(int(f)) || f < 0 {
		return 0, fmt.Errorf("'%s' must be a non-negative integer", key)
	}
	return int(f), nil
}

//go:embed config.schema.json
var bundledConfigSchema []byte

var (
	bundledOnce sync.Once
	bundledNode *Node
	bundledErr  error
)

// Bundled returns the parsed bundled configuration schema. The document is
// build-time data, so it is parsed once and cached for the process lifetime.
func Bundled() (*Node, error) {
	bundledOnce.Do(func() {
		var doc any
		if err := json.Unmarshal(bundledConfigSchema, &doc); err != nil {
			bundledErr = fmt.Errorf("parsing bundled schema: %w", err)
			return
		}
		bundledNode, bundledErr = ParseNode(doc)
	})
	return bundledNode, bundledErr
}
