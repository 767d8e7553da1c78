package sqlbuild

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/GoSim-25-26J-441/jobly-backend/internal/apperr"
)

// Field is one named value of a partial update.
type Field struct {
	Name  string
	Value any
}

// Fields is an ordered set of updates; the SET clause follows its order.
type Fields []Field

// ColumnMap translates external field names to storage column names.
//
// A field missing from the map is used as the column name unchanged. Only
// pass Fields whose names come from a fixed model, never from request keys.
type ColumnMap map[string]string

// Column resolves field to its storage column.
func (m ColumnMap) Column(field string) string {
	if col, ok := m[field]; ok {
		return col
	}
	return field
}

// SetClause is a rendered `"col"=$1, "col2"=$2` fragment and its values.
type SetClause struct {
	SQL  string
	Args []any
}

// NextPlaceholder is the parameter the caller should use for its own first
// trailing argument, e.g. the key in the WHERE clause.
func (s SetClause) NextPlaceholder() string {
	return Placeholder(len(s.Args) + 1)
}

// PartialUpdate renders fields as a SET clause using cols for name translation.
func PartialUpdate(fields Fields, cols ColumnMap) (SetClause, error) {
	if len(fields) == 0 {
		return SetClause{}, apperr.InvalidRequest("No data")
	}

	parts := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields))
	for i, f := range fields {
		parts = append(parts, fmt.Sprintf("%s=%s", pq.QuoteIdentifier(cols.Column(f.Name)), Placeholder(i+1)))
		args = append(args, f.Value)
	}

	return SetClause{SQL: strings.Join(parts, ", "), Args: args}, nil
}
