package queries

import (
	"errors"

	"flowerorder/internal/core/domain/model/order"
	"flowerorder/internal/pkg/guard"
	"flowerorder/internal/pkg/paging"
)

var ErrSearchOrdersQueryIsNotConstructed = errors.New(
	"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
)

// SearchOrdersQuery is a validated filter plus a normalized page request.
//
//	q, err := NewSearchOrdersQuery(order.Filter{
//	    MemberIDs: []kernel.UUID{memberID},
//	    Start:     &from,
//	    End:       &to,
//	}, paging.NewPageRequest(0, 20, "createdAt", "desc"))
type SearchOrdersQuery struct {
	filter order.Filter
	page   paging.PageRequest

	guard guard.ConstructorGuard
}

// NewSearchOrdersQuery rejects inverted date ranges and unknown search fields.
func NewSearchOrdersQuery(filter order.Filter, page paging.PageRequest) (SearchOrdersQuery, error) {
	if err := filter.Validate(); err != nil {
		return SearchOrdersQuery{}, err
	}

	return SearchOrdersQuery{
		filter: filter,
		page:   paging.NewPageRequest(page.Page, page.Size, page.Sort, string(page.Direction)),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

func (q SearchOrdersQuery) Filter() order.Filter     { return q.filter }
func (q SearchOrdersQuery) Page() paging.PageRequest { return q.page }
