package nested

// DefaultSeparator joins the key segments of a flattened path.
const DefaultSeparator = "."

// Flatten flattens m into a single level using DefaultSeparator.
func Flatten(m map[string]any) map[string]any {
	return FlattenWith(m, DefaultSeparator)
}

// FlattenWith recursively flattens m, joining nested key segments with sep.
// Non-map leaf values (lists included) are copied as-is. An empty nested map
// contributes no key for its branch.
func FlattenWith(m map[string]any, sep string) map[string]any {
	flat := make(map[string]any)

	var walk func(cur map[string]any, prefix string)
	walk = func(cur map[string]any, prefix string) {
		for k, v := range cur {
			key := k
			if prefix != "" {
				key = prefix + sep + k
			}
			if child, ok := v.(map[string]any); ok {
				walk(child, key)
				continue
			}
			flat[key] = v
		}
	}
	walk(m, "")
	return flat
}
