package query

import "strings"

// SortField names a projected field and its direction.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// ParseSortFields parses "name,-created_at" into sort fields.
// A leading "-" marks a descending field. Field names are matched
// case-insensitively against snake_case columns by the caller's projection.
func ParseSortFields(s string) []SortField {
	if s == "" {
		return nil
	}

	var fields []SortField
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" || part == "-" {
			continue
		}

		desc := strings.HasPrefix(part, "-")
		fields = append(fields, SortField{
			Field:      snakeToPascal(strings.TrimPrefix(part, "-")),
			Descending: desc,
		})
	}

	return fields
}

// snakeToPascal converts created_at to CreatedAt and id to ID.
func snakeToPascal(s string) string {
	var b strings.Builder
	for word := range strings.SplitSeq(s, "_") {
		if word == "" {
			continue
		}
		if strings.EqualFold(word, "id") {
			b.WriteString("ID")
			continue
		}
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(word[1:])
	}
	return b.String()
}
