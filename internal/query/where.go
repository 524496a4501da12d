package query

import "strings"

// Where renders conditions into an AND-joined WHERE clause with
// positional placeholders numbered from startIndex. It returns an
// empty clause when there are no conditions, so callers can always
// append the result to a base query.
func Where(startIndex int, conds ...Condition) (clause string, args []any) {
	if len(conds) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(conds))
	idx := startIndex
	for _, cond := range conds {
		fragment, condArgs := cond.SQL(idx)
		parts = append(parts, fragment)
		args = append(args, condArgs...)
		idx += len(condArgs)
	}
	return " WHERE " + strings.Join(parts, " AND "), args
}
