package queries

import (
	"errors"
	"strings"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetCurrentOrderQueryIsNotConstructed = errors.New(
		"GetCurrentOrderQuery must be created via NewGetCurrentOrderQuery constructor",
	)
)

// GetCurrentOrderQuery retrieves a customer's most recent order by their phone
// number. Used by the customer-facing tracking screen, where the phone number
// is the only identifier the caller has.
type GetCurrentOrderQuery struct { //nolint:recvcheck //using for validation
	phone string

	guard guard.ConstructorGuard
}

// NewGetCurrentOrderQuery creates a query for a customer's latest order.
// The phone number is required; surrounding whitespace is trimmed.
func NewGetCurrentOrderQuery(phone string) (GetCurrentOrderQuery, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return GetCurrentOrderQuery{}, errs.NewValueIsRequiredError("phone")
	}

	return GetCurrentOrderQuery{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCurrentOrderQueryIsNotConstructed if validation fails.
func (q GetCurrentOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentOrderQueryIsNotConstructed)
}

// Phone returns the phone number to look up.
func (q GetCurrentOrderQuery) Phone() string {
	return q.phone
}

// GetCurrentOrderQueryResponse represents a customer's latest order.
// Found is false when the phone number matches no customer or the customer has
// no orders; that is an empty result, not an error.
type GetCurrentOrderQueryResponse struct {
	Found bool
	Order GetOrderByIDQueryResponse
}
