package normalize

// ArrayField declares a string-array field of an exact length.
type ArrayField struct {
	Length int
	Filler string
	// RepeatLast pads by repeating the last element instead of Filler.
	RepeatLast bool
}

// KeyedShape describes an object with fixed-length array fields and
// defaulted scalar or object fields.
type KeyedShape struct {
	Arrays map[string]ArrayField
	// Scalars maps field names to the value used when the field is missing,
	// null, or of a different kind. Object defaults also fill missing keys.
	Scalars map[string]any
	// Default is substituted in full when the output is not a JSON object.
	Default map[string]any
}

// Normalize parses raw as a JSON object, falling back to a copy of Default,
// then repairs every declared field. Undeclared fields are left as parsed.
func (s KeyedShape) Normalize(raw string) map[string]any {
	cleaned := StripFences(raw)

	var obj map[string]any
	if !decodeEmbedded(cleaned, '{', '}', &obj) || obj == nil {
		obj = cloneMap(s.Default)
		if obj == nil {
			obj = map[string]any{}
		}
	}

	for name, field := range s.Arrays {
		items := toStrings(obj[name], field.Filler)
		if field.RepeatLast {
			obj[name] = FitRepeat(items, field.Length, field.Filler)
		} else {
			obj[name] = Fit(items, field.Length, field.Filler)
		}
	}

	for name, def := range s.Scalars {
		obj[name] = repairScalar(obj[name], def)
	}

	return obj
}

// toStrings converts a decoded JSON array to strings. Non-array values yield
// nil; null elements become nullAs.
func toStrings(v any, nullAs string) []string {
	switch val := v.(type) {
	case []string:
		return append([]string(nil), val...)
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, stringify(item, nullAs))
		}
		return out
	default:
		return nil
	}
}

func repairScalar(v, def any) any {
	if v == nil {
		return cloneValue(def)
	}
	defMap, defIsMap := def.(map[string]any)
	valMap, valIsMap := v.(map[string]any)
	switch {
	case defIsMap && valIsMap:
		for key, dv := range defMap {
			valMap[key] = repairScalar(valMap[key], dv)
		}
		return valMap
	case defIsMap != valIsMap:
		return cloneValue(def)
	}
	if _, defIsString := def.(string); defIsString {
		if _, ok := v.(string); !ok {
			return stringify(v, def.(string))
		}
	}
	return v
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return append([]string(nil), val...)
	default:
		return val
	}
}
