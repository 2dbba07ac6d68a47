// Package store defines the narrow capability surface this application
// needs from the hosted data service: equality-filtered reads, ordered
// reads with an optional row limit, and single-row inserts that return the
// stored row. Loaders and the order wizard depend only on this interface,
// never on a concrete query builder.
package store

// Filter is an equality condition on one column.
type Filter struct {
	Column string
	Value  string
}

type Query struct {
	Filters    []Filter
	OrderBy    string
	Descending bool
	Limit      int
}

type Store interface {
	// Select runs q against the named table and decodes the rows into dest,
	// which must be a pointer to a slice of row structs.
	Select(table string, q Query, dest any) error

	// InsertOne inserts row into the named table and decodes the stored row,
	// including store-assigned id and defaults, into dest.
	InsertOne(table string, row any, dest any) error
}
