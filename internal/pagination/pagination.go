package pagination

import (
	"errors"
	"strconv"
)

// ErrBadParam is returned when a page or limit query value is not a
// positive integer.
var ErrBadParam = errors.New("page and limit must be positive integers")

// Window is the slice of an ordered result set a query should return.
type Window struct {
	Offset int
	Limit  int
}

// Result is the outcome of applying a page request to a known total.
type Result struct {
	Window
	MaxPage int
	// InRange is false when the requested page lies beyond the last
	// page of a non-empty result set. Paginating an empty set is always
	// in range: the caller returns an empty page, not an error.
	InRange bool
}

// Paginate turns (page, limit, total) into a bounded window.
// page and limit must already be validated as >= 1.
func Paginate(page, limit, total int) Result {
	maxPage := 0
	if total > 0 {
		maxPage = (total + limit - 1) / limit
	}
	return Result{
		Window:  Window{Offset: (page - 1) * limit, Limit: limit},
		MaxPage: maxPage,
		InRange: total == 0 || page <= maxPage,
	}
}

// FromQuery parses raw page/limit query values. Absent values fall back
// to page 1 and the per-endpoint default limit; malformed or
// non-positive values are a client error.
func FromQuery(pageStr, limitStr string, defaultLimit int) (page, limit int, err error) {
	page, limit = 1, defaultLimit
	if pageStr != "" {
		v, convErr := strconv.Atoi(pageStr)
		if convErr != nil || v < 1 {
			return 0, 0, ErrBadParam
		}
		page = v
	}
	if limitStr != "" {
		v, convErr := strconv.Atoi(limitStr)
		if convErr != nil || v < 1 {
			return 0, 0, ErrBadParam
		}
		limit = v
	}
	return page, limit, nil
}
