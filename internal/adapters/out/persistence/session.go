package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Session holds the database handles for one unit of work: exactly one base
// connection and at most one active transaction. The transaction slot is nil
// outside an Execute call and is set only by the transactional wrapper; data
// access components read it through DB and never manage it themselves.
//
// A Session is owned by a single unit of work and must not be shared across
// concurrent requests.
type Session struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewSession creates a Session over the given base connection with no active
// transaction.
func NewSession(db *gorm.DB) *Session {
	return &Session{db: db}
}

// DB returns the active transaction when one is open, otherwise the base
// connection. Repositories call this for every statement, which is how they
// observe the ambient transaction automatically.
func (s *Session) DB() *gorm.DB {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

// InTransaction reports whether a transaction is currently active on this
// session.
func (s *Session) InTransaction() bool {
	return s.tx != nil
}

// setTx stores the active transaction. Only the transactional wrapper calls it.
func (s *Session) setTx(tx *gorm.DB) {
	s.tx = tx
}

// clearTx releases the transaction slot. Only the transactional wrapper calls it.
func (s *Session) clearTx() {
	s.tx = nil
}

// ensureConnection pings the underlying pool with the caller's context so a
// broken connection is re-dialed before a transaction begins. The pool's
// re-dial is the single reconnect affordance; there are no retries beyond it.
func (s *Session) ensureConnection(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("acquire database handle: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	return nil
}
