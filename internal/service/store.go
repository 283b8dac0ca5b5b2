package service

import (
	"gorm.io/gorm"

	"employee-tracker/internal/db"
)

// Store answers every query the tracker issues. It owns the handle it is
// given and releases it on Close.
type Store struct {
	db     *gorm.DB
	closed bool
}

var _ Manager = (*Store)(nil)

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Close releases the connection pool. Calls after the first are no-ops.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return db.Close(s.db)
}
