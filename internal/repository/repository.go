package repository

import "strings"

// orderClause resolves a caller-supplied sort field against a whitelist of
// sortable columns. Unknown fields fall back to created_at, anything but
// "asc" sorts descending.
func orderClause(columns map[string]string, sortBy, sortOrder string) string {
	column, ok := columns[sortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}
	return column + " " + direction
}
