package pagination

import (
	"fmt"

	"gorm.io/gorm"
)

// DefaultPage and DefaultLimit apply when a list endpoint receives no
// usable page/limit query parameters.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Pagination is the metadata block returned with every list response
type Pagination struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`

	skip int
}

// Result is the envelope every list endpoint returns in its data field
type Result struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// ErrInvalidParams marks rejected page/limit input. Handlers translate it to a
// 400; it must fire before any query is issued.
type ErrInvalidParams struct {
	msg string
}

func (e ErrInvalidParams) Error() string { return e.msg }

// New computes pagination metadata for the given page, limit and total item
// count. It is a pure function: page < 1 and limit < 1 are rejected rather than
// clamped, so client bugs are not silently masked.
func New(page, limit int, totalItems int64) (Pagination, error) {
	if page < 1 {
		return Pagination{}, ErrInvalidParams{fmt.Sprintf("page must be >= 1, got %d", page)}
	}
	if limit < 1 {
		return Pagination{}, ErrInvalidParams{fmt.Sprintf("limit must be >= 1, got %d", limit)}
	}
	if totalItems < 0 {
		return Pagination{}, ErrInvalidParams{fmt.Sprintf("totalItems must be >= 0, got %d", totalItems)}
	}

	totalPages := int((totalItems + int64(limit) - 1) / int64(limit))

	return Pagination{
		Page:        page,
		Limit:       limit,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
		skip:        (page - 1) * limit,
	}, nil
}

// Skip is the offset into the ordered result set at which this page starts
func (p Pagination) Skip() int { return p.skip }

// List runs the listing protocol against an already-filtered query: count the
// matching rows, then scan the requested page with the same filter and the
// given order, and wrap both in the response envelope. The count and the scan
// are two separate statements; rows inserted or removed between them can skew
// the metadata by a write or two, which is accepted.
func List(query *gorm.DB, order string, page, limit int, dest interface{}) (*Result, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	pg, err := New(page, limit, total)
	if err != nil {
		return nil, err
	}

	if err := query.Order(order).Offset(pg.Skip()).Limit(pg.Limit).Find(dest).Error; err != nil {
		return nil, err
	}

	return &Result{Data: dest, Pagination: pg}, nil
}
