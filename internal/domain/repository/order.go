package repository

// OrderBy names the column a list is sorted on.
type OrderBy struct {
	Column    string
	Ascending bool
}

// Direction returns the column direction as "asc" or "desc".
func (o OrderBy) Direction() string {
	if o.Ascending {
		return "asc"
	}

	return "desc"
}

// Common orderings.
var (
	OrderByCreatedAtDesc = OrderBy{Column: "created_at", Ascending: false}
	OrderByNameAsc       = OrderBy{Column: "name", Ascending: true}
)
