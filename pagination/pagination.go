package pagination

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// MessageInvalidParams is returned for a page or limit that is not a
// positive integer within bounds.
const MessageInvalidParams = "Page and limit must be positive numbers"

var ErrInvalidParams = errors.New(MessageInvalidParams)

// Params is a validated page request.
type Params struct {
	Page  int
	Limit int
}

// Meta describes a page of results to the client.
type Meta struct {
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	TotalCount      int64 `json:"totalCount"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// Parser turns raw query values into Params.
type Parser struct {
	DefaultLimit int
	MaxLimit     int
}

// Parse reads page and limit. Empty values fall back to page 1 and the
// default limit; anything else must be an integer >= 1, limit may not
// exceed MaxLimit and the resulting offset must not overflow.
func (p Parser) Parse(page, limit string) (Params, error) {
	params := Params{Page: 1, Limit: p.DefaultLimit}

	if s := strings.TrimSpace(page); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return Params{}, ErrInvalidParams
		}
		params.Page = n
	}

	if s := strings.TrimSpace(limit); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return Params{}, ErrInvalidParams
		}
		if p.MaxLimit > 0 && n > p.MaxLimit {
			return Params{}, ErrInvalidParams
		}
		params.Limit = n
	}

	// The offset must fit in an int.
	if params.Page-1 > math.MaxInt/params.Limit {
		return Params{}, ErrInvalidParams
	}

	return params, nil
}

// Offset is the number of rows skipped before this page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// NewMeta computes the page counters for total matching rows.
func NewMeta(p Params, total int64) Meta {
	totalPages := int(math.Ceil(float64(total) / float64(p.Limit)))

	return Meta{
		Page:            p.Page,
		Limit:           p.Limit,
		TotalCount:      total,
		TotalPages:      totalPages,
		HasNextPage:     p.Page < totalPages,
		HasPreviousPage: p.Page > 1,
	}
}

// Paginate is a gorm scope applying the offset and limit of p.
func Paginate(p Params) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.Limit)
	}
}

// NewestFirst is a gorm scope ordering rows by creation time, newest first.
// The id breaks ties so pages never overlap.
func NewestFirst(table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".created_at DESC").Order(table + ".id DESC")
	}
}
