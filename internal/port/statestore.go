package port

import "friendlyenum/internal/domain"

type StateStore interface {
	PutRecord(rec domain.GenerationRecord) error

	// ListRecords returns every record ordered by implementation path.
	ListRecords() ([]domain.GenerationRecord, error)

	Close() error
}
