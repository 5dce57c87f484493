package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/skala-ium/events/internal/service"
)

// Store opens the transaction-scoped units used by the ingesters. Reads made
// directly on the Store run outside any transaction.
type Store struct {
	*AssignmentRepository
	db DB
}

func NewStore(db DB) *Store {
	return &Store{
		AssignmentRepository: NewAssignmentRepository(db),
		db:                   db,
	}
}

func (s *Store) BeginIngestTx(ctx context.Context) (service.IngestTx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return newIngestTx(tx), nil
}

type ingestTx struct {
	*AssignmentRepository
	*DirectoryRepository
	*StudentRepository
	*SubmissionRepository
	tx pgx.Tx
}

func newIngestTx(tx pgx.Tx) *ingestTx {
	return &ingestTx{
		AssignmentRepository: NewAssignmentRepository(tx),
		DirectoryRepository:  NewDirectoryRepository(tx),
		StudentRepository:    NewStudentRepository(tx),
		SubmissionRepository: NewSubmissionRepository(tx),
		tx:                   tx,
	}
}

func (t *ingestTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback is a no-op once the transaction has been committed.
func (t *ingestTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return err
}
