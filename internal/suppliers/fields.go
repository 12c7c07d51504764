package suppliers

import (
	"strconv"
	"strings"

	"hotel_merge/internal/domain"
)

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupMap returns the object at path, or nil.
func lookupMap(m map[string]any, path string) map[string]any {
	obj, _ := lookupAny(m, path).(map[string]any)
	return obj
}

// lookupID renders a string or integral number as an id; "" when absent.
func lookupID(m map[string]any, path string) string {
	switch v := lookupAny(m, path).(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	}
	return ""
}

// lookupStr returns string at path or "".
func lookupStr(m map[string]any, path string) string {
	if s, ok := lookupAny(m, path).(string); ok {
		return s
	}
	return ""
}

func ptrStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// getFloatFlexible: number from float64/int or a numeric string; nil for "" or junk.
func getFloatFlexible(m map[string]any, path string) *float64 {
	switch v := lookupAny(m, path).(type) {
	case float64:
		f := v
		return &f
	case int:
		f := float64(v)
		return &f
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return &f
		}
	}
	return nil
}

// sliceStrings: accept []any with either strings or {link/url/src}.
func sliceStrings(m map[string]any, path string) []string {
	raw, ok := lookupAny(m, path).([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, it := range raw {
		switch t := it.(type) {
		case string:
			if t != "" {
				out = append(out, t)
			}
		case map[string]any:
			for _, k := range []string{"link", "url", "src"} {
				if u, ok := t[k].(string); ok && u != "" {
					out = append(out, u)
					break
				}
			}
		}
	}
	return out
}

// images reads a {rooms: [...], amenities: [...]} object; nil when absent.
func images(m map[string]any, path string) *domain.Images {
	obj := lookupMap(m, path)
	if obj == nil {
		return nil
	}
	return &domain.Images{
		Rooms:     nonNil(sliceStrings(obj, "rooms")),
		Amenities: nonNil(sliceStrings(obj, "amenities")),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func requireID(supplier, key string, raw map[string]any) (string, error) {
	id := lookupID(raw, key)
	if id == "" {
		return "", &domain.FieldError{Supplier: supplier, Field: key}
	}
	return id, nil
}
