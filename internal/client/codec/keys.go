package codec

import (
	"strings"
	"unicode"
)

// SnakeCase converts a camelCase logical name to its wire form.
// Acronym runs are kept together: "photoURL" becomes "photo_url".
func SnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		if i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// CamelCase converts a snake_case wire name back to its logical form.
// Leading and trailing underscores are preserved; a name without
// underscores is returned unchanged.
func CamelCase(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}

	core := strings.Trim(s, "_")
	if core == "" {
		return s
	}
	lead := strings.Index(s, core)
	trail := s[lead+len(core):]

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:lead])

	first := true
	for _, part := range strings.Split(core, "_") {
		if part == "" {
			continue
		}
		if first {
			b.WriteString(part)
			first = false
			continue
		}
		r := []rune(strings.ToLower(part))
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	b.WriteString(trail)
	return b.String()
}

// rewriteKeys returns node with every object key passed through fn,
// including keys of objects that came from maps. String values are never
// touched.
func rewriteKeys(node any, fn func(string) string) any {
	switch n := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(n))
		for k, v := range n {
			out[fn(k)] = rewriteKeys(v, fn)
		}
		return out
	case []any:
		for i, v := range n {
			n[i] = rewriteKeys(v, fn)
		}
		return n
	default:
		return node
	}
}
