// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"fmt"

	"github.com/pdiddy/rc2-toml-yaml/pkg/types"
)

// section returns a required table from the document.
func section(doc types.SourceDocument, name string) (map[string]any, error) {
	v, ok := doc[name]
	if !ok {
		return nil, &types.MissingSectionError{Section: name}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &types.InvalidFieldError{Section: name, Field: "*", Reason: fmt.Sprintf("expected table, got %T", v)}
	}
	return m, nil
}

// passthrough copies a decoded TOML value for verbatim output. Floats become
// types.Float so their float form survives encoding.
func passthrough(v any) any {
	switch v := v.(type) {
	case float64:
		return types.Float(v)
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = passthrough(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = passthrough(e)
		}
		return out
	default:
		return v
	}
}

func field(sec map[string]any, secName, key string) (any, error) {
	v, ok := sec[key]
	if !ok {
		return nil, &types.MissingFieldError{Section: secName, Field: key}
	}
	return v, nil
}

func stringField(sec map[string]any, secName, key string) (string, error) {
	v, err := field(sec, secName, key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", typeMismatch(secName, key, "string", v)
	}
	return s, nil
}

func boolField(sec map[string]any, secName, key string) (bool, error) {
	v, err := field(sec, secName, key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, typeMismatch(secName, key, "boolean", v)
	}
	return b, nil
}

// intField accepts any TOML integer. go-toml decodes integers as int64.
func intField(sec map[string]any, secName, key string) (int, error) {
	v, err := field(sec, secName, key)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case int64:
		return int(n), nil
	case int:
		return n, nil
	default:
		return 0, typeMismatch(secName, key, "integer", v)
	}
}

func arrayField(sec map[string]any, secName, key string) ([]any, error) {
	v, err := field(sec, secName, key)
	if err != nil {
		return nil, err
	}
	a, ok := v.([]any)
	if !ok {
		return nil, typeMismatch(secName, key, "array", v)
	}
	return a, nil
}

// pair splits a two-element [first, second] array entry. Extra elements are
// ignored. The second element is returned unconverted.
func pair(entry any, secName, key string, idx int) (string, any, error) {
	a, ok := entry.([]any)
	if !ok || len(a) < 2 {
		return "", nil, &types.InvalidFieldError{
			Section: secName,
			Field:   fmt.Sprintf("%s[%d]", key, idx),
			Reason:  "expected a two-element array",
		}
	}
	first, ok := a[0].(string)
	if !ok {
		return "", nil, typeMismatch(secName, fmt.Sprintf("%s[%d][0]", key, idx), "string", a[0])
	}
	return first, a[1], nil
}

// isFalsy reports whether a TOML value counts as "not set" for optional
// bindings: an empty string, false or zero.
func isFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case int64:
		return x == 0
	case float64:
		return x == 0
	default:
		return false
	}
}

func typeMismatch(secName, key, want string, got any) error {
	return &types.InvalidFieldError{
		Section: secName,
		Field:   key,
		Reason:  fmt.Sprintf("expected %s, got %T", want, got),
	}
}
