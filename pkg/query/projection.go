// Package query provides a small fluent SQL builder for the read paths of
// domain repositories. Projections map view field names to qualified table
// columns so callers never hand-assemble column references.
package query

import "strings"

// ProjectionMap maps view field names to qualified database columns
// for a single table.
type ProjectionMap struct {
	schema string
	table  string
	alias  string
	fields []string
	cols   map[string]string
}

// NewProjectionMap creates a projection for the given schema-qualified table
// and alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		cols:   make(map[string]string),
	}
}

// Project registers a column under a view field name. Registration order
// determines column order in Columns and ColumnList.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	p.fields = append(p.fields, field)
	p.cols[field] = p.alias + "." + column
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the aliased table reference for FROM clauses.
func (p *ProjectionMap) Table() string {
	return p.schema + "." + p.table + " " + p.alias
}

// Column resolves a view field name to its qualified column. Unknown field
// names are returned unchanged.
func (p *ProjectionMap) Column(field string) string {
	if col, ok := p.cols[field]; ok {
		return col
	}
	return field
}

// Columns returns the projected columns as a comma-separated SELECT list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.ColumnList(), ", ")
}

// ColumnList returns the projected columns in registration order.
func (p *ProjectionMap) ColumnList() []string {
	list := make([]string, len(p.fields))
	for i, field := range p.fields {
		list[i] = p.cols[field]
	}
	return list
}
