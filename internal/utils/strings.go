package utils

import (
	"strings"
)

// SplitList splits a comma separated list into trimmed, non-empty items.
func SplitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
