package schema

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Validate checks value against node and returns all problems found as
// human-readable strings of the form "<path>: <problem>". The path locator
// uses "$" for the document root, "." for property access, and "[i]" for
// array indices. An empty slice means the value matches.
//
// The checks run in a fixed order at every node. A type mismatch stops
// recursion into the node, since children cannot be meaningfully checked
// against the wrong shape; every other violation is accumulated.
func Validate(node *Node, value any, path string) []string {
	if node == nil {
		return nil
	}

	var errs []string

	if len(node.Types) > 0 && !matchesAnyKind(node.Types, value) {
		return []string{fmt.Sprintf("%s: expected %s, got %s",
			path, strings.Join(node.Types, " or "), KindOf(value))}
	}

	if node.MinLength != nil {
		if s, ok := value.(string); ok && utf8.RuneCountInString(s) < *node.MinLength {
			errs = append(errs, fmt.Sprintf("%s: string is shorter than minimum length %d", path, *node.MinLength))
		}
	}

	if node.MinItems != nil {
		if arr, ok := value.([]any); ok && len(arr) < *node.MinItems {
			errs = append(errs, fmt.Sprintf("%s: array has fewer than %d items", path, *node.MinItems))
		}
	}

	if obj, ok := value.(map[string]any); ok {
		for _, name := range node.Required {
			if _, present := obj[name]; !present {
				errs = append(errs, fmt.Sprintf("%s: missing required property '%s'", path, name))
			}
		}
	}

	if obj, ok := value.(map[string]any); ok && node.Properties != nil {
		for _, name := range sortedKeys(obj) {
			child, declared := node.Properties[name]
			if !declared {
				continue
			}
			errs = append(errs, Validate(child, obj[name], path+"."+name)...)
		}
	}

	if arr, ok := value.([]any); ok && node.Items != nil {
		for i, el := range arr {
			errs = append(errs, Validate(node.Items, el, fmt.Sprintf("%s[%d]", path, i))...)
		}
	}

	if obj, ok := value.(map[string]any); ok && (node.AdditionalDisallowed || node.Additional != nil) {
		for _, name := range sortedKeys(obj) {
			if _, declared := node.Properties[name]; declared {
				continue
			}
			if node.Additional != nil {
				errs = append(errs, Validate(node.Additional, obj[name], path+"."+name)...)
			} else {
				errs = append(errs, fmt.Sprintf("%s: unexpected property '%s'", path, name))
			}
		}
	}

	return errs
}

// KindOf names the JSON kind of a decoded value.
func KindOf(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", value)
	}
}

func matchesAnyKind(types []string, value any) bool {
	kind := KindOf(value)
	for _, t := range types {
		if t == kind {
			return true
		}
	}
	return false
}

// sortedKeys keeps error output deterministic regardless of map order.
func sortedKeys(obj map[string]any) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
