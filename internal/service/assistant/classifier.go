package assistant

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrClassificationFormat means the backend reply could not be read as a
// category object.
var ErrClassificationFormat = errors.New("unexpected classification format")

// ParseClassification reads a backend reply as a JSON object keyed by
// category names. Keys with falsy values are skipped. Names listed under a
// wrapper key, a JSON array of names, and prose or code fences around the
// JSON are tolerated. A non-empty reply that names no category at all is a
// format error.
func ParseClassification(reply string) (Categories, error) {
	v, err := decodeJSON(reply)
	if err != nil {
		return 0, err
	}

	switch v := v.(type) {
	case map[string]any:
		set, known := categoriesIn(v)
		if !known && len(v) > 0 {
			return 0, fmt.Errorf("%w: no category in %q", ErrClassificationFormat, truncate(reply, 200))
		}
		return set, nil
	case []any:
		set, known := namesIn(v)
		if !known && len(v) > 0 {
			return 0, fmt.Errorf("%w: no category in %q", ErrClassificationFormat, truncate(reply, 200))
		}
		return set, nil
	default:
		return 0, fmt.Errorf("%w: got %T", ErrClassificationFormat, v)
	}
}

// decodeJSON parses the first object or array found in s. Brackets in the
// surrounding prose are skipped when they do not decode.
func decodeJSON(s string) (any, error) {
	var lastErr error
	for _, raw := range jsonCandidates(s) {
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			lastErr = err
			continue
		}
		return v, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrClassificationFormat, lastErr)
	}
	return nil, fmt.Errorf("%w: no JSON in %q", ErrClassificationFormat, truncate(s, 200))
}

// jsonCandidates slices the outermost object and array out of s, in order
// of appearance.
func jsonCandidates(s string) []string {
	var res []string
	for _, pair := range [][2]string{{"{", "}"}, {"[", "]"}} {
		start := strings.Index(s, pair[0])
		end := strings.LastIndex(s, pair[1])
		if start >= 0 && end > start {
			res = append(res, s[start:end+1])
		}
	}
	if len(res) == 2 && strings.Index(s, "[") < strings.Index(s, "{") {
		res[0], res[1] = res[1], res[0]
	}
	return res
}

// categoriesIn reads an object keyed by categories. Other keys may wrap
// names or a nested object. known reports whether any category was named,
// even with a falsy value.
func categoriesIn(m map[string]any) (set Categories, known bool) {
	for key, val := range m {
		if c, ok := ParseCategory(key); ok {
			known = true
			if truthy(val) {
				set = set.Add(c)
			}
			continue
		}
		// {"категории": ["Расписание", ...]}
		nested, ok := namesIn(val)
		set |= nested
		known = known || ok
	}
	return set, known
}

func namesIn(v any) (set Categories, known bool) {
	switch v := v.(type) {
	case string:
		// "Расписание, Контакты"
		for _, name := range strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ';' }) {
			if c, ok := ParseCategory(name); ok {
				set = set.Add(c)
				known = true
			}
		}
	case []any:
		for _, item := range v {
			nested, ok := namesIn(item)
			set |= nested
			known = known || ok
		}
	case map[string]any:
		return categoriesIn(v)
	}
	return set, known
}

func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		switch normalizeLabel(v) {
		case "", "false", "no", "нет", "0":
			return false
		}
		return true
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	}
	return true
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
