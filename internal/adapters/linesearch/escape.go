/*
Package linesearch matches aliases by running regular expressions over their
rendered listing lines (name='command'), the way a grep over the shell's alias
output would. Two interchangeable regex backends are supported.
*/
package linesearch

import "strings"

// metaChars are the characters with a meaning in the pattern language.
const metaChars = `.\|$(){}?+*^[]`

/*
Escape returns s with every pattern metacharacter preceded by a backslash so
it can be embedded literally in a larger pattern. It works in one pass, so a
backslash in s is escaped exactly once.
*/
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		if strings.ContainsRune(metaChars, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
