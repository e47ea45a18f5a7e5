package kanboard

import "strconv"

// Kanboard serializes almost every scalar as a string ("id":"42",
// "is_active":"1"), so payload access goes through coercing accessors instead
// of type assertions.

// String returns m[key] as a string, rendering numbers without a decimal
// point when they are integral.
func String(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

// Int returns m[key] as an int, accepting JSON numbers and numeric strings.
func Int(m map[string]any, key string) int {
	return int(Int64(m, key))
}

func Int64(m map[string]any, key string) int64 {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	case bool:
		if v {
			return 1
		}
	}
	return 0
}

// ToInt coerces a bare decoded JSON value (e.g. the result of createTask,
// which is just the new id) into an int.
func ToInt(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		if n, err := strconv.Atoi(t); err == nil {
			return n
		}
	}
	return 0
}

// Items coerces a decoded JSON value into a slice of objects, dropping
// non-object entries.
func Items(v any) []map[string]any {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(arr))
	for _, it := range arr {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// Object coerces a decoded JSON value into a single object.
func Object(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}
