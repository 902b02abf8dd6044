package backend

// GetString safely extracts a string value from a decoded JSON object
func GetString(m map[string]interface{}, key string) string {
	if val, exists := m[key]; exists {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

// GetMap safely extracts a nested object
func GetMap(m map[string]interface{}, key string) map[string]interface{} {
	if val, exists := m[key]; exists {
		if nested, ok := val.(map[string]interface{}); ok {
			return nested
		}
	}
	return nil
}

// GetStringSlice extracts an array of strings, skipping non-string items
func GetStringSlice(m map[string]interface{}, key string) []string {
	val, exists := m[key]
	if !exists {
		return nil
	}
	items, ok := val.([]interface{})
	if !ok {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if str, ok := item.(string); ok && str != "" {
			out = append(out, str)
		}
	}
	return out
}

// FirstString returns the first non-empty string among keys, looking at the top
// level first and then inside a "data" envelope
func FirstString(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if str := GetString(m, key); str != "" {
			return str
		}
	}
	if data := GetMap(m, "data"); data != nil {
		for _, key := range keys {
			if str := GetString(data, key); str != "" {
				return str
			}
		}
	}
	return ""
}
