package storage

import (
	"github.com/poiesic/strand/core"
	"github.com/poiesic/strand/filter"
)

// Query is the store-side form of a filter: the descriptor handed to
// FindRecords. It wraps the filter spec itself, and backends evaluate
// it with the same predicate used for in-memory matching, so the two
// evaluation paths agree by construction.
type Query struct {
	Spec filter.Spec

	// Limit caps the number of returned records. Zero means no limit.
	Limit int
}

// Matches reports whether a property set satisfies the query's filter.
func (q Query) Matches(props core.Properties) bool {
	return filter.Matches(q.Spec, props)
}
