package queries

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrGetOrderAuditTrailQueryIsNotConstructed = errors.New(
	"GetOrderAuditTrailQuery must be created via NewGetOrderAuditTrailQuery constructor",
)

// GetOrderAuditTrailQuery retrieves the audit entries recorded for an order,
// oldest first.
type GetOrderAuditTrailQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderAuditTrailQuery creates a query for the audit trail of the
// order with the given id. Returns an error if the id is not positive.
func NewGetOrderAuditTrailQuery(orderID int64) (GetOrderAuditTrailQuery, error) {
	query := GetOrderAuditTrailQuery{
		guard: guard.NewConstructorGuard(),
	}

	if orderID <= 0 {
		return GetOrderAuditTrailQuery{}, errs.NewValueIsInvalidErrorWithCause("orderId is invalid",
			fmt.Errorf("%d is not greater than 0", orderID))
	}
	query.orderID = orderID

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderAuditTrailQueryIsNotConstructed if validation fails.
func (q GetOrderAuditTrailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderAuditTrailQueryIsNotConstructed)
}

// OrderID returns the id of the order whose trail to fetch.
func (q GetOrderAuditTrailQuery) OrderID() int64 {
	return q.orderID
}

// AuditEntryResponse is one audit journal line of the read model.
type AuditEntryResponse struct {
	ID         uuid.UUID `json:"id"`
	Action     string    `json:"action"`
	Details    string    `json:"details"`
	OccurredAt time.Time `json:"occurredAt"`
}
