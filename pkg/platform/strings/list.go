// Package strings provides string list helpers shared by the HTTP layer.
package strings

import (
	"strings"
)

// SplitList splits every value on sep and returns the trimmed, non-empty elements in
// first-seen order with duplicates removed. Repeated header values that each hold a
// list (Accept) flatten into one list this way.
//
//	SplitList([]string{"text/html, */*", "text/html"}, ",")
//	// []string{"text/html", "*/*"}
func SplitList(values []string, sep string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, v := range values {
		for _, part := range strings.Split(v, sep) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, dup := seen[part]; dup {
				continue
			}
			seen[part] = struct{}{}
			out = append(out, part)
		}
	}
	return out
}
