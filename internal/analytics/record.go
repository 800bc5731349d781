package analytics

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Record is a read-only snapshot of one backend analysis payload. The shape
// varies by spreadsheet domain and any field may be missing, so all access
// goes through the path helpers below; they return defaults instead of
// panicking on absent or wrongly-typed data.
type Record map[string]any

// ParseRecord decodes raw JSON into a Record. A null, empty, or non-object
// payload yields an empty Record rather than an error.
func ParseRecord(raw json.RawMessage) Record {
	if len(raw) == 0 {
		return Record{}
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil || rec == nil {
		return Record{}
	}
	return rec
}

// Get walks the record one key at a time and reports whether a value exists
// at the full path. Any absent, null, or non-map intermediate step
// short-circuits to (nil, false).
func (r Record) Get(path ...string) (any, bool) {
	if r == nil || len(path) == 0 {
		return nil, false
	}
	var current any = map[string]any(r)
	for _, key := range path {
		m, ok := asMap(current)
		if !ok {
			return nil, false
		}
		next, ok := m[key]
		if !ok || next == nil {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Map returns the nested map at path, or an empty Record.
func (r Record) Map(path ...string) Record {
	val, ok := r.Get(path...)
	if !ok {
		return Record{}
	}
	if m, ok := asMap(val); ok {
		return Record(m)
	}
	return Record{}
}

// Number returns the numeric value at path. Numeric strings are coerced;
// anything else reports ok=false.
func (r Record) Number(path ...string) (float64, bool) {
	val, ok := r.Get(path...)
	if !ok {
		return 0, false
	}
	return asNumber(val)
}

// NumberOr returns the numeric value at path or def when absent/malformed.
func (r Record) NumberOr(def float64, path ...string) float64 {
	if n, ok := r.Number(path...); ok {
		return n
	}
	return def
}

// String returns the string value at path, or "".
func (r Record) String(path ...string) string {
	val, ok := r.Get(path...)
	if !ok {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}

// Array returns the list value at path, or an empty slice.
func (r Record) Array(path ...string) []any {
	val, ok := r.Get(path...)
	if !ok {
		return []any{}
	}
	if list, ok := val.([]any); ok {
		return list
	}
	return []any{}
}

// Maps returns the list at path filtered to its map-shaped elements.
func (r Record) Maps(path ...string) []Record {
	list := r.Array(path...)
	out := make([]Record, 0, len(list))
	for _, item := range list {
		if m, ok := asMap(item); ok {
			out = append(out, Record(m))
		}
	}
	return out
}

// Strings returns the list at path filtered to its string elements.
func (r Record) Strings(path ...string) []string {
	list := r.Array(path...)
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// HasContent reports whether the value under key is worth displaying:
// maps need at least one key, lists at least one element, and any non-null
// scalar counts.
func (r Record) HasContent(key string) bool {
	val, ok := r.Get(key)
	if !ok {
		return false
	}
	switch typed := val.(type) {
	case map[string]any:
		return len(typed) > 0
	case []any:
		return len(typed) > 0
	default:
		return true
	}
}

func asMap(val any) (map[string]any, bool) {
	switch typed := val.(type) {
	case map[string]any:
		return typed, true
	case Record:
		return map[string]any(typed), true
	default:
		return nil, false
	}
}

func asNumber(val any) (float64, bool) {
	switch typed := val.(type) {
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case json.Number:
		parsed, err := typed.Float64()
		return parsed, err == nil
	case string:
		trimmed := strings.TrimSpace(typed)
		if trimmed == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}
