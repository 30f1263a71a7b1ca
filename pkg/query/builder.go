package query

import (
	"fmt"
	"strings"
)

// SortField orders results by a projected view field.
type SortField struct {
	Field      string
	Descending bool
	NullsLast  bool
}

// Builder constructs SELECT statements over a projection.
type Builder struct {
	projection *ProjectionMap
	sort       []SortField
}

// NewBuilder creates a Builder for the given projection with optional default sort fields.
func NewBuilder(projection *ProjectionMap, sort ...SortField) *Builder {
	return &Builder{
		projection: projection,
		sort:       sort,
	}
}

// BuildSelect returns a SELECT over every row with ordering applied.
func (b *Builder) BuildSelect() (string, []any) {
	sql := fmt.Sprintf(
		"SELECT %s FROM %s%s",
		b.projection.Columns(),
		b.projection.Table(),
		b.buildOrderBy(),
	)
	return sql, nil
}

// BuildSingle returns a SELECT query for a single record by key.
func (b *Builder) BuildSingle(keyField string, key any) (string, []any) {
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		b.projection.Columns(),
		b.projection.Table(),
		b.projection.Column(keyField),
	)
	return sql, []any{key}
}

func (b *Builder) buildOrderBy() string {
	if len(b.sort) == 0 {
		return ""
	}

	parts := make([]string, len(b.sort))
	for i, s := range b.sort {
		dir := "ASC"
		if s.Descending {
			dir = "DESC"
		}
		part := fmt.Sprintf("%s %s", b.projection.Column(s.Field), dir)
		if s.NullsLast {
			part += " NULLS LAST"
		}
		parts[i] = part
	}

	return " ORDER BY " + strings.Join(parts, ", ")
}
