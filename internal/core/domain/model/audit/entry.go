package audit

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

// Action classifies what an audit entry records.
type Action string

const (
	// ActionOrderCreated records a successfully placed order.
	ActionOrderCreated Action = "order_created"

	// ActionOrderCancelled records an order cancellation, whether requested
	// by the customer or performed by the stale-order job.
	ActionOrderCancelled Action = "order_cancelled"

	// ActionStockRestocked records an inventory restock.
	ActionStockRestocked Action = "stock_restocked"
)

// getValidActions returns the set of known actions.
func getValidActions() map[Action]struct{} {
	return map[Action]struct{}{
		ActionOrderCreated:   {},
		ActionOrderCancelled: {},
		ActionStockRestocked: {},
	}
}

// Validate checks that the Action is one of the known values.
func (a Action) Validate() error {
	if _, ok := getValidActions()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action is invalid",
			fmt.Errorf("%q is not a known action", string(a)))
	}
	return nil
}

func (a Action) String() string {
	return string(a)
}

// ErrEntryIsNotConstructed is returned when an Entry instance was not created
// through the NewEntry factory method.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Entry is a single immutable record in the audit journal. Entries are only
// ever written; reads go through the query layer's read models, so there is
// no restore path.
type Entry struct {
	id            uuid.UUID
	action        Action
	entityID      int64
	details       string
	occurredAt    time.Time
	isConstructed bool
}

// NewEntry creates a journal entry for a change happening now. The id is
// generated client-side so the entry can be written in the same transaction
// as the change it records.
func NewEntry(action Action, entityID int64, details string) (*Entry, error) {
	entry := &Entry{
		id:            uuid.New(),
		occurredAt:    time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		entry.setAction(action),
		entry.setEntityID(entityID),
	); err != nil {
		return nil, err
	}

	entry.details = details
	return entry, nil
}

// Validate ensures the Entry was created via NewEntry.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}

	return nil
}

// ID returns the entry's identifier.
func (e *Entry) ID() uuid.UUID {
	return e.id
}

// Action returns what the entry records.
func (e *Entry) Action() Action {
	return e.action
}

// EntityID returns the id of the affected entity (order id or product id,
// depending on the action).
func (e *Entry) EntityID() int64 {
	return e.entityID
}

// Details returns the free-form description of the change.
func (e *Entry) Details() string {
	return e.details
}

// OccurredAt returns the UTC timestamp of the recorded change.
func (e *Entry) OccurredAt() time.Time {
	return e.occurredAt
}

func (e *Entry) setAction(action Action) error {
	if err := action.Validate(); err != nil {
		return err
	}
	e.action = action
	return nil
}

func (e *Entry) setEntityID(entityID int64) error {
	if entityID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("entityId is invalid",
			fmt.Errorf("%d is not greater than 0", entityID))
	}
	e.entityID = entityID
	return nil
}
