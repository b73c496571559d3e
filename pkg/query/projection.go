// Package query builds parameterized PostgreSQL queries from projection maps
// that translate Go field names to qualified column names.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps view (Go field) names to table columns under an alias.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []string
	byView  map[string]string
}

// NewProjectionMap creates a projection over schema.table aliased as alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		byView: make(map[string]string),
	}
}

// Project maps column to viewName. Columns are selected in registration order.
func (p *ProjectionMap) Project(column, viewName string) *ProjectionMap {
	qualified := fmt.Sprintf("%s.%s", p.alias, column)
	p.columns = append(p.columns, qualified)
	p.byView[viewName] = qualified
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the aliased table reference, e.g. "public.words w".
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Column returns the qualified column for viewName, or viewName if it is unknown.
func (p *ProjectionMap) Column(viewName string) string {
	if col, ok := p.byView[viewName]; ok {
		return col
	}
	return viewName
}

// Has reports whether viewName is projected.
func (p *ProjectionMap) Has(viewName string) bool {
	_, ok := p.byView[viewName]
	return ok
}

// Columns returns the comma-separated select list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columns, ", ")
}

// ColumnList returns the select list as a slice.
func (p *ProjectionMap) ColumnList() []string {
	out := make([]string, len(p.columns))
	copy(out, p.columns)
	return out
}
