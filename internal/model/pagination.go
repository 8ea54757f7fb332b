package model

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ListQuery is the query string of the list endpoints.
// Zero values mean "not supplied".
type ListQuery struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Validate accepts every integer pair; Window does the clamping.
func (q *ListQuery) Validate() error {
	return nil
}

// Window resolves the query into a LIMIT/OFFSET pair.
//
// page below 1 is clamped to 1 and limit below 1 falls back to
// DefaultLimit, so the offset is never negative. There is no upper
// bound on limit; an offset past math.MaxInt saturates there.
func (q *ListQuery) Window() (limit, offset int) {
	page := q.Page
	if page < 1 {
		page = DefaultPage
	}
	limit = q.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if page-1 > math.MaxInt/limit {
		return limit, math.MaxInt
	}
	return limit, (page - 1) * limit
}

// IDParam binds the :id path parameter of point lookups and deletes.
type IDParam struct {
	ID string `param:"id" validate:"required,uuid_any"`
}

func (p *IDParam) Validate() error {
	return validate.Struct(p)
}
