package params

import (
	"fmt"

	"github.com/andyle182810/gappwrite/pagination"
	"github.com/andyle182810/gappwrite/validator"
)

var optionsValidator = validator.New() //nolint:gochecknoglobals

type OrderType string

const (
	OrderAsc  OrderType = "ASC"
	OrderDesc OrderType = "DESC"
)

func (o OrderType) String() string {
	return string(o)
}

type CursorDirection string

const (
	CursorAfter  CursorDirection = "after"
	CursorBefore CursorDirection = "before"
)

func (c CursorDirection) String() string {
	return string(c)
}

// ListOptions are the search and paging arguments shared by list endpoints.
// Zero fields are not sent.
type ListOptions struct {
	Search          string          `json:"search"`
	Limit           int             `json:"limit"           validate:"gte=0,lte=100"`
	Offset          int             `json:"offset"          validate:"gte=0"`
	Cursor          string          `json:"cursor"`
	CursorDirection CursorDirection `json:"cursorDirection" validate:"omitempty,oneof=after before"`
	OrderType       OrderType       `json:"orderType"       validate:"omitempty,oneof=ASC DESC"`
}

// ForPage sets Limit and Offset for a 1-based page number.
func (o *ListOptions) ForPage(page, pageSize int) *ListOptions {
	window := pagination.Normalize(page, pageSize)
	o.Limit = window.Limit
	o.Offset = window.Offset

	return o
}

func (o *ListOptions) Params() (*Params, error) {
	p := New()
	if o == nil {
		return p, nil
	}

	if err := Validate(o); err != nil {
		return nil, err
	}

	p.Set("search", NonEmpty(o.Search)).
		Set("limit", NonZero(o.Limit)).
		Set("offset", NonZero(o.Offset)).
		Set("cursor", NonEmpty(o.Cursor)).
		Set("cursorDirection", NonEmpty(string(o.CursorDirection))).
		Set("orderType", NonEmpty(string(o.OrderType)))

	return p, nil
}

// Validate checks an options struct and reports failures as ErrInvalidParam.
func Validate(options any) error {
	if err := optionsValidator.Validate(options); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParam, err)
	}

	return nil
}
