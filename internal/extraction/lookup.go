package extraction

import (
	"encoding/json"
	"strconv"
)

// section returns the nested mapping under key, or nil when absent or not a mapping.
func section(record map[string]any, key string) map[string]any {
	if record == nil {
		return nil
	}
	nested, _ := record[key].(map[string]any)
	return nested
}

// text renders a scalar value as display text. Nulls, nested structures and
// missing keys render as "".
func text(record map[string]any, key string) string {
	if record == nil {
		return ""
	}
	switch v := record[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// firstText returns the first non-empty value among the alternative keys.
func firstText(record map[string]any, keys ...string) string {
	for _, key := range keys {
		if v := text(record, key); v != "" {
			return v
		}
	}
	return ""
}
