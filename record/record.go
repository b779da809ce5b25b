// Package record reads fields out of loosely typed dataset rows.
//
// A [Record] is one decoded row: a map[string]any whose values may
// themselves be nested maps. Fields are addressed with dot-separated paths,
// so "owner.address.city" walks two levels down:
//
//	r := record.Record{"owner": map[string]any{"name": "Alice"}}
//	r.Get("owner.name") // "Alice", true
//
// Numeric accessors accept every number type the supported decoders
// produce, plus numeric strings.
package record

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrMissingField is returned when a path does not resolve to a value.
var ErrMissingField = errors.New("record: missing field")

// ErrNotNumeric is returned when a field cannot be read as a number.
var ErrNotNumeric = errors.New("record: field is not numeric")

// Record is one dataset row.
type Record map[string]any

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation access
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value at the dot-separated path and whether it exists.
func (r Record) Get(path string) (any, bool) {
	segments := strings.Split(path, ".")
	current := map[string]any(r)
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		nested, ok := asMap(val)
		if !ok {
			return nil, false
		}
		current = nested
	}
	return nil, false
}

// Has reports whether path resolves to a value.
func (r Record) Has(path string) bool {
	_, ok := r.Get(path)
	return ok
}

// Set writes value at path, creating intermediate maps as needed.
func (r Record) Set(path string, value any) {
	set(r, path, value)
}

func set(m map[string]any, path string, value any) {
	seg, rest, nested := strings.Cut(path, ".")
	if !nested {
		m[path] = value
		return
	}
	child, ok := asMap(m[seg])
	if !ok {
		child = make(map[string]any)
		m[seg] = child
	}
	set(child, rest, value)
}

// Dot flattens the record into a single-level map keyed by dot paths.
func (r Record) Dot() map[string]any {
	out := make(map[string]any)
	flatten("", r, out)
	return out
}

func flatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := asMap(v); ok {
			flatten(key, nested, out)
		} else {
			out[key] = v
		}
	}
}

// Paths returns the flattened field paths in sorted order.
func (r Record) Paths() []string {
	flat := r.Dot()
	paths := make([]string, 0, len(flat))
	for path := range flat {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Only returns a new record holding just the given paths. Paths may be
// nested; missing ones are skipped.
func (r Record) Only(paths ...string) Record {
	out := make(Record, len(paths))
	for _, path := range paths {
		if v, ok := r.Get(path); ok {
			out.Set(path, v)
		}
	}
	return out
}

// Except returns a shallow copy of r without the given top-level keys.
func (r Record) Except(keys ...string) Record {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(Record, len(r))
	for k, v := range r {
		if _, skip := drop[k]; !skip {
			out[k] = v
		}
	}
	return out
}

// asMap accepts both map shapes the decoders produce for nested objects.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Record:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Typed accessors
// ─────────────────────────────────────────────────────────────────────────────

// String returns the field formatted with %v, or "" when it is missing.
func (r Record) String(path string) string {
	v, ok := r.Get(path)
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Float returns the field as a float64.
func (r Record) Float(path string) (float64, error) {
	v, ok := r.Get(path)
	if !ok {
		return 0, errors.Wrapf(ErrMissingField, "path %q", path)
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, errors.Wrapf(ErrNotNumeric, "path %q holds %T", path, v)
	}
	return f, nil
}

// FloatOr returns the field as a float64, or def when it is missing or not
// numeric.
func (r Record) FloatOr(path string, def float64) float64 {
	f, err := r.Float(path)
	if err != nil {
		return def
	}
	return f
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}
