package query

import (
	"sort"
	"strings"

	"ecommerce/internal/domain"
)

// Sorts maps API sort keys to columns. The key "id" is always accepted.
type Sorts struct {
	columns map[string]string
}

func NewSorts(columns map[string]string) Sorts {
	m := make(map[string]string, len(columns)+1)
	for k, v := range columns {
		m[k] = v
	}
	if _, ok := m["id"]; !ok {
		m["id"] = "id"
	}
	return Sorts{columns: m}
}

// Keys lists the accepted sort keys in lexical order.
func (s Sorts) Keys() []string {
	keys := make([]string, 0, len(s.columns))
	for k := range s.columns {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s Sorts) Allowed(key string) bool {
	_, ok := s.columns[key]
	return ok
}

// OrderBy renders an ORDER BY list. Unknown or empty keys fall back to id;
// id is always the final tie-breaker so equal sort values page deterministically.
func (s Sorts) OrderBy(key string, order domain.SortOrder) string {
	dir := "ASC"
	if order == domain.SortDesc {
		dir = "DESC"
	}
	col, ok := s.columns[key]
	if !ok || key == "" {
		col = "id"
	}
	if col == "id" {
		return "id " + dir
	}
	return strings.Join([]string{col + " " + dir, "id ASC"}, ", ")
}
