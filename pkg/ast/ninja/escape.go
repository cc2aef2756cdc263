package ninja

import "strings"

// Escape prefixes every space, colon, dollar sign, and newline in s with a
// `$`. All other characters pass through unchanged. It is exposed because the
// document never escapes caller-supplied values itself: callers pre-escape
// paths once, which keeps already-escaped input from being escaped twice.
func Escape(s string) string {
	if !strings.ContainsAny(s, " :$\n") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', ':', '$', '\n':
			b.WriteByte('$')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// FileList renders a multi-valued path field. An empty slice renders as the
// empty string regardless of separator. Otherwise the values are joined by
// single spaces; a non-empty separator token (such as `|` or `||`) prefixes
// the group with a space, the token, and a space.
func FileList(values []string, sep string) string {
	if len(values) == 0 {
		return ""
	}
	joined := strings.Join(values, " ")
	if sep == "" {
		return joined
	}
	return " " + sep + " " + joined
}
