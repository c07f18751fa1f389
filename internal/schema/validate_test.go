package schema

import (
	"strings"
	"testing"
)

func intp(n int) *int { return &n }

func TestEmptyNodeMatchesAnything(t *testing.T) {
	node := &Node{}
	for _, value := range []any{nil, true, 3.14, "x", map[string]any{}, []any{1.0}} {
		if errs := Validate(node, value, "$"); len(errs) != 0 {
			t.Errorf("empty node rejected %v: %v", value, errs)
		}
	}
}

func TestTypeMismatchShortCircuits(t *testing.T) {
	node := &Node{
		Types:    []string{"object"},
		Required: []string{"a", "b"},
	}
	errs := Validate(node, "not an object", "$")
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if !strings.Contains(errs[0], "expected object, got string") {
		t.Errorf("unexpected error: %s", errs[0])
	}
}

func TestTypeSetAcceptsAnyMember(t *testing.T) {
	node := &Node{Types: []string{"string", "number", "boolean", "null"}}
	for _, value := range []any{"x", 1.0, false, nil} {
		if errs := Validate(node, value, "$"); len(errs) != 0 {
			t.Errorf("type set rejected %v: %v", value, errs)
		}
	}
	errs := Validate(node, map[string]any{}, "$")
	if len(errs) != 1 || !strings.Contains(errs[0], "got object") {
		t.Errorf("expected type set rejection for object, got %v", errs)
	}
}

func TestMinLengthOnlyAppliesToStrings(t *testing.T) {
	node := &Node{MinLength: intp(3)}
	if errs := Validate(node, "ab", "$"); len(errs) != 1 {
		t.Errorf("expected minLength violation, got %v", errs)
	}
	if errs := Validate(node, 1.0, "$"); len(errs) != 0 {
		t.Errorf("minLength should not apply to numbers: %v", errs)
	}
	if errs := Validate(node, "abc", "$"); len(errs) != 0 {
		t.Errorf("minLength should accept exact length: %v", errs)
	}
}

func TestMinItemsOnlyAppliesToArrays(t *testing.T) {
	node := &Node{MinItems: intp(1)}
	if errs := Validate(node, []any{}, "$"); len(errs) != 1 {
		t.Errorf("expected minItems violation, got %v", errs)
	}
	if errs := Validate(node, "x", "$"); len(errs) != 0 {
		t.Errorf("minItems should not apply to strings: %v", errs)
	}
}

func TestRequiredReportsEachMissingProperty(t *testing.T) {
	node := &Node{Required: []string{"a", "b", "c"}}
	errs := Validate(node, map[string]any{"b": 1.0}, "$")
	if len(errs) != 2 {
		t.Fatalf("expected two errors, got %v", errs)
	}
	if !strings.Contains(errs[0], "missing required property 'a'") {
		t.Errorf("unexpected first error: %s", errs[0])
	}
	if !strings.Contains(errs[1], "missing required property 'c'") {
		t.Errorf("unexpected second error: %s", errs[1])
	}
}

func TestPropertiesRecurseWithExtendedPath(t *testing.T) {
	node := &Node{
		Properties: map[string]*Node{
			"targets": {Items: &Node{
				Properties: map[string]*Node{
					"agent": {Types: []string{"string"}},
				},
			}},
		},
	}
	value := map[string]any{
		"targets": []any{
			map[string]any{"agent": "claude"},
			map[string]any{"agent": "x"},
			map[string]any{"agent": 7.0},
		},
	}
	errs := Validate(node, value, "$")
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	if !strings.HasPrefix(errs[0], "$.targets[2].agent: ") {
		t.Errorf("unexpected path locator: %s", errs[0])
	}
}

func TestAbsentPropertyIsSkipped(t *testing.T) {
	node := &Node{
		Properties: map[string]*Node{
			"name": {Types: []string{"string"}},
		},
	}
	if errs := Validate(node, map[string]any{}, "$"); len(errs) != 0 {
		t.Errorf("absence should be governed solely by required: %v", errs)
	}
}

func TestAdditionalPropertiesDisallow(t *testing.T) {
	node := &Node{
		Properties:           map[string]*Node{"known": {}},
		AdditionalDisallowed: true,
	}
	errs := Validate(node, map[string]any{"known": 1.0, "extra": 2.0}, "$")
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	if !strings.Contains(errs[0], "unexpected property 'extra'") {
		t.Errorf("unexpected error: %s", errs[0])
	}
}

func TestAdditionalPropertiesSchemaValidatesExtraKeys(t *testing.T) {
	node := &Node{
		Properties: map[string]*Node{"known": {}},
		Additional: &Node{Types: []string{"string"}},
	}
	errs := Validate(node, map[string]any{"known": 1.0, "extra": 2.0}, "$")
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	if !strings.HasPrefix(errs[0], "$.extra: ") {
		t.Errorf("unexpected error: %s", errs[0])
	}
	if errs := Validate(node, map[string]any{"extra": "fine"}, "$"); len(errs) != 0 {
		t.Errorf("schema-form additionalProperties should accept valid extras: %v", errs)
	}
}

func TestMissingAndUnexpectedTogether(t *testing.T) {
	node := &Node{
		Types:    []string{"object"},
		Required: []string{"a"},
		Properties: map[string]*Node{
			"a": {Types: []string{"string"}, MinLength: intp(1)},
		},
		AdditionalDisallowed: true,
	}
	errs := Validate(node, map[string]any{"b": 1.0}, "$")
	if len(errs) < 2 {
		t.Fatalf("expected at least two errors, got %v", errs)
	}
	joined := strings.Join(errs, "\n")
	if !strings.Contains(joined, "missing required property 'a'") {
		t.Errorf("missing-required not reported: %v", errs)
	}
	if !strings.Contains(joined, "unexpected property 'b'") {
		t.Errorf("unexpected-property not reported: %v", errs)
	}
}

func TestNilNodeMatchesAnything(t *testing.T) {
	if errs := Validate(nil, map[string]any{"x": 1.0}, "$"); errs != nil {
		t.Errorf("nil node should match anything: %v", errs)
	}
}

func TestKindOf(t *testing.T) {
	cases := map[string]any{
		"null":    nil,
		"boolean": true,
		"number":  1.5,
		"string":  "s",
		"object":  map[string]any{},
		"array":   []any{},
	}
	for want, value := range cases {
		if got := KindOf(value); got != want {
			t.Errorf("KindOf(%v) = %s, want %s", value, got, want)
		}
	}
}
