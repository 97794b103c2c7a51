package queries

import (
	"errors"
	"strings"

	"shipadmin/internal/core/domain/model/kernel"
	"shipadmin/internal/pkg/errs"
	"shipadmin/internal/pkg/guard"
)

var ErrSearchOrdersQueryIsNotConstructed = errors.New(
	"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
)

// SearchOrdersQuery retrieves orders matching a required search term,
// case-insensitively, as an unanchored substring over the customer's name,
// primary phone, and email. Unlike the listing, results keep storage order.
type SearchOrdersQuery struct {
	search string

	guard guard.ConstructorGuard
}

// NewSearchOrdersQuery creates a query to search orders. search is required.
func NewSearchOrdersQuery(search string, caller kernel.Caller) (SearchOrdersQuery, error) {
	if err := caller.Validate(); err != nil {
		return SearchOrdersQuery{}, err
	}
	if err := caller.Authorize("search orders", kernel.RoleAdmin, kernel.RoleEmployee); err != nil {
		return SearchOrdersQuery{}, err
	}

	if strings.TrimSpace(search) == "" {
		return SearchOrdersQuery{}, errs.NewValueIsRequiredError("q")
	}

	return SearchOrdersQuery{
		search: search,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

// Search returns the required search term.
func (q SearchOrdersQuery) Search() string {
	return q.search
}
