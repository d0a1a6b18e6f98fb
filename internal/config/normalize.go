// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"strings"
)

// forceNoCheckKey is the reserved key that marks a caller-supplied mapping
// as already canonical. When its value is exactly "1" the normalizer is
// bypassed and the structure is assembled as-is.
const forceNoCheckKey = "force-no-check"

// FromAny builds a Config from an arbitrary value. Anything other than a
// string-keyed mapping is an invalid shape.
func FromAny(v any) (*Config, error) {
	raw, ok := v.(map[string]any)
	if !ok {
		return nil, &InvalidShapeError{Reason: fmt.Sprintf("top-level value is %T, not a mapping", v)}
	}
	return FromRaw(raw)
}

// FromRaw builds a Config from a raw mapping, honoring the force-no-check
// escape hatch.
func FromRaw(raw Raw) (*Config, error) {
	if v, ok := raw[forceNoCheckKey]; ok && fmt.Sprint(v) == "1" {
		return assemble(raw), nil
	}
	return Normalize(raw)
}

// Normalize validates the raw mapping and transforms it into a Config.
// Required keys are "paths", "tools", and for every tool id t the keys
// t-dir and t-name (exactly one value each) and t-commands (non-empty
// list). Tool ids are lowercased (viper folds TOML keys to lower case, so
// the derived t-* lookups must fold too) and de-duplicated preserving
// first-seen order.
func Normalize(raw Raw) (*Config, error) {
	paths, err := listValue(raw, "paths")
	if err != nil {
		return nil, err
	}

	ids, err := listValue(raw, "tools")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(ids))
	tools := make([]ToolSpec, 0, len(ids))
	for _, id := range ids {
		id = strings.ToLower(id)
		if seen[id] {
			continue
		}
		seen[id] = true

		marker, err := singleValue(raw, id+"-dir")
		if err != nil {
			return nil, err
		}
		name, err := singleValue(raw, id+"-name")
		if err != nil {
			return nil, err
		}
		commands, err := listValue(raw, id+"-commands")
		if err != nil {
			return nil, err
		}
		if len(commands) == 0 {
			return nil, &InvalidShapeError{Key: id + "-commands", Reason: "command list is empty"}
		}

		tools = append(tools, ToolSpec{
			ID:              id,
			DirectoryMarker: marker,
			DisplayName:     name,
			Commands:        commands,
		})
	}

	return &Config{Tools: tools, RootPaths: paths}, nil
}

// listValue extracts a list-typed value. A single string is split on
// whitespace with quote awareness; a list is kept element-per-element with
// per-element unquoting and continuation handling.
func listValue(raw Raw, key string) ([]string, error) {
	v, ok := raw[key]
	if !ok {
		return nil, &MissingKeyError{Key: key}
	}

	elems, isList, err := stringElements(key, v)
	if err != nil {
		return nil, err
	}

	if isList {
		out, err := unquoteElements(elems)
		if err != nil {
			return nil, &InvalidShapeError{Key: key, Reason: err.Error()}
		}
		return out, nil
	}

	s, ok := v.(string)
	if !ok {
		return nil, &InvalidShapeError{Key: key, Reason: fmt.Sprintf("unsupported value type %T", v)}
	}
	out, err := splitQuoted(s)
	if err != nil {
		return nil, &InvalidShapeError{Key: key, Reason: err.Error()}
	}
	return out, nil
}

// singleValue extracts a value that must be exactly one string. A
// one-element list is accepted; anything longer is an invalid shape.
func singleValue(raw Raw, key string) (string, error) {
	v, ok := raw[key]
	if !ok {
		return "", &MissingKeyError{Key: key}
	}

	elems, isList, err := stringElements(key, v)
	if err != nil {
		return "", err
	}
	if !isList {
		s, ok := v.(string)
		if !ok {
			return "", &InvalidShapeError{Key: key, Reason: fmt.Sprintf("unsupported value type %T", v)}
		}
		elems = []string{s}
	}

	if len(elems) != 1 {
		return "", &InvalidShapeError{Key: key, Reason: fmt.Sprintf("expected exactly one value, got %d", len(elems))}
	}

	out, err := unquoteElements(elems)
	if err != nil || len(out) != 1 {
		return "", &InvalidShapeError{Key: key, Reason: "malformed quoted value"}
	}
	return out[0], nil
}

// stringElements converts list-shaped values ([]string or []any of
// strings) into a []string. isList is false for non-list values so the
// caller can fall back to single-string handling.
func stringElements(key string, v any) (elems []string, isList bool, err error) {
	switch val := v.(type) {
	case []string:
		return val, true, nil
	case []any:
		elems := make([]string, 0, len(val))
		for _, e := range val {
			s, ok := e.(string)
			if !ok {
				return nil, true, &InvalidShapeError{Key: key, Reason: fmt.Sprintf("list contains %T, expected string", e)}
			}
			elems = append(elems, s)
		}
		return elems, true, nil
	default:
		return nil, false, nil
	}
}

// assemble builds a Config trusting the caller's shapes; used only for
// force-no-check input.
func assemble(raw Raw) *Config {
	cfg := &Config{RootPaths: trustedStrings(raw["paths"])}
	for _, id := range trustedStrings(raw["tools"]) {
		cfg.Tools = append(cfg.Tools, ToolSpec{
			ID:              id,
			DirectoryMarker: trustedString(raw[id+"-dir"]),
			DisplayName:     trustedString(raw[id+"-name"]),
			Commands:        trustedStrings(raw[id+"-commands"]),
		})
	}
	return cfg
}

func trustedStrings(v any) []string {
	switch val := v.(type) {
	case string:
		return []string{val}
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	case []any:
		out := make([]string, 0, len(val))
		for _, e := range val {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func trustedString(v any) string {
	if elems := trustedStrings(v); len(elems) > 0 {
		return elems[0]
	}
	return ""
}
