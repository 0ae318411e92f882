// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

package store

// TableSpec describes one hosted table. Every table shares the same three
// column schema (id, sort_key, doc); each entry names the document field whose
// value is mirrored into sort_key on each write so listings can be ordered
// without parsing documents.
type TableSpec struct {
	// Name is the table name as it appears in requests and SQL.
	Name string

	// SortField is the JSON field copied into the sort_key column, or ""
	// for unordered tables.
	SortField string
}

// tableRegistry lists every table the backend serves. Requests naming any
// other table are refused with [ErrTableUnknown].
var tableRegistry = map[string]TableSpec{
	"applications": {Name: "applications", SortField: "submission_date"},
	"records":      {Name: "records", SortField: "id"},
	"info_entries": {Name: "info_entries", SortField: "date"},
	"logs":         {Name: "logs", SortField: "timestamp"},
	"devices":      {Name: "devices", SortField: "last_active"},
	"rules":        {Name: "rules", SortField: ""},
	"settings":     {Name: "settings", SortField: ""},
}

// LookupTable resolves a table name against the registry.
func LookupTable(name string) (TableSpec, bool) {
	spec, ok := tableRegistry[name]
	return spec, ok
}

// Tables returns the names of every registered table.
func Tables() []string {
	names := make([]string, 0, len(tableRegistry))
	for name := range tableRegistry {
		names = append(names, name)
	}
	return names
}
