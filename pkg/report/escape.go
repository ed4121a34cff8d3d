package report

import "strings"

var linkEscaper = strings.NewReplacer(
	`\`, `\\`,
	`[`, `\[`,
	`]`, `\]`,
	`|`, `\|`,
)

// EscapeLink backslash-escapes the characters that are reserved inside
// an org link target. The visible label is never escaped.
func EscapeLink(s string) string {
	return linkEscaper.Replace(s)
}

// UnescapeLink reverses EscapeLink.
func UnescapeLink(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '\\', '[', ']', '|':
				b.WriteByte(s[i+1])
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
