package storage

import (
	"strings"

	"expenses/internal/core"
)

// Filter narrows which expense rows a query considers. Zero-valued fields are
// no-ops, so an empty Filter means a full scan.
type Filter struct {
	Start    core.Date
	End      core.Date
	Category string
}

// where builds the shared WHERE clause used by the list query and both
// aggregations. Only the ordering and grouping stages differ between them,
// so the predicate lives in exactly one place.
func (f Filter) where() (string, []any) {
	var (
		conds []string
		args  []any
	)
	if !f.Start.IsZero() {
		conds = append(conds, "date >= ?")
		args = append(args, f.Start.String())
	}
	if !f.End.IsZero() {
		conds = append(conds, "date <= ?")
		args = append(args, f.End.String())
	}
	if f.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, f.Category)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
