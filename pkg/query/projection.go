// Package query builds parameterized SELECT statements from a projection of
// view field names onto table columns.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps view field names to qualified table columns, preserving
// declaration order for SELECT lists.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []string
	byView  map[string]string
}

// NewProjectionMap creates a projection over schema.table with the given alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		byView: make(map[string]string),
	}
}

// Project registers column under viewName.
func (p *ProjectionMap) Project(column, viewName string) *ProjectionMap {
	qualified := fmt.Sprintf("%s.%s", p.alias, column)
	p.columns = append(p.columns, qualified)
	p.byView[viewName] = qualified
	return p
}

// Table returns the aliased table reference for FROM clauses.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Column returns the qualified column for viewName, or viewName unchanged if unknown.
func (p *ProjectionMap) Column(viewName string) string {
	if col, ok := p.byView[viewName]; ok {
		return col
	}
	return viewName
}

// Columns returns the comma-separated SELECT list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columns, ", ")
}

