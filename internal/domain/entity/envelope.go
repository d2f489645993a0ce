package entity

import "strconv"

// The provider wraps entity lists in envelopes whose shape varies by
// endpoint and API revision. Probing is strictly ordered: the first
// location holding an array wins, and a missing list degrades to empty
// rather than failing the request.

// arrayAt returns the array at key if one is present.
func arrayAt(body map[string]any, key string) ([]any, bool) {
	arr, ok := body[key].([]any)
	return arr, ok
}

// nestedArrayAt returns the array at outer.inner if one is present.
func nestedArrayAt(body map[string]any, outer, inner string) ([]any, bool) {
	m, ok := body[outer].(map[string]any)
	if !ok {
		return nil, false
	}
	return arrayAt(m, inner)
}

// objectsIn filters an envelope array down to its object entries.
func objectsIn(arr []any) []map[string]any {
	out := make([]map[string]any, 0, len(arr))
	for _, v := range arr {
		if m, ok := v.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// stringField reads a string-ish field, tolerating absent or non-string values.
func stringField(m map[string]any, key string) (string, bool) {
	switch v := m[key].(type) {
	case string:
		return v, true
	default:
		return "", false
	}
}

// firstStringField resolves the first present string among candidate field names.
func firstStringField(m map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		if s, ok := stringField(m, key); ok {
			return s, true
		}
	}
	return "", false
}

// intField reads a numeric field, tolerating JSON numbers (float64) and
// numeric strings. Absent or malformed values degrade to zero.
func intField(m map[string]any, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
