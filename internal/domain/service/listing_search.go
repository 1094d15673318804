package service

import (
	"strings"

	"golang.org/x/text/cases"
)

// Searchable is a record that exposes named fields to free-text search.
type Searchable interface {
	FieldValue(field string) string
}

// fieldSeparator keeps a query from matching across two adjacent fields.
const fieldSeparator = "\x1f"

// SearchListings returns the records whose named fields, joined together,
// contain query as a case-insensitive substring. An empty query returns
// records unchanged. Matching records keep their original order.
func SearchListings[T Searchable](query string, records []T, fields []string) []T {
	if query == "" {
		return records
	}

	folder := cases.Fold()
	needle := folder.String(query)

	out := make([]T, 0, len(records))
	for _, rec := range records {
		values := make([]string, 0, len(fields))
		for _, f := range fields {
			values = append(values, rec.FieldValue(f))
		}
		haystack := folder.String(strings.Join(values, fieldSeparator))
		if strings.Contains(haystack, needle) {
			out = append(out, rec)
		}
	}
	return out
}
