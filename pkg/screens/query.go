package screens

import (
	"strings"

	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// Query narrows and orders the records of a list screen.
type Query struct {
	Name  string `form:"name"`  // Glob pattern, matched as a substring if it has no wildcard
	Type  string `form:"type"`  // Exact type, ignoring case
	Sort  string `form:"sort"`  // Sort key, see the fields of each screen
	Order string `form:"order"` // "asc" or "desc"
}

// Fields tells Apply how to read the records of one kind.
type Fields[T any] struct {
	Name func(T) string
	Type func(T) string

	// Sort maps sort keys to comparison functions. The first key in
	// DefaultSort is used when the query names none or an unknown one.
	Sort        map[string]func(a, b T) int
	DefaultSort string
}

// Apply filters and sorts records. The input is not modified.
func Apply[T any](records []T, q Query, f Fields[T]) []T {
	pattern := strings.ToLower(strings.TrimSpace(q.Name))
	if pattern != "" && !strings.Contains(pattern, "*") {
		pattern = "*" + pattern + "*"
	}

	result := make([]T, 0, len(records))
	for _, record := range records {
		if pattern != "" && f.Name != nil && !glob.Glob(pattern, strings.ToLower(f.Name(record))) {
			continue
		}

		if q.Type != "" && f.Type != nil && !strings.EqualFold(q.Type, f.Type(record)) {
			continue
		}

		result = append(result, record)
	}

	cmp, ok := f.Sort[q.Sort]
	if !ok {
		cmp = f.Sort[f.DefaultSort]
	}

	if cmp != nil {
		if strings.EqualFold(q.Order, "desc") {
			asc := cmp
			cmp = func(a, b T) int { return asc(b, a) }
		}
		slices.SortStableFunc(result, cmp)
	}

	return result
}
