package storage

import (
	"context"

	"github.com/iudanet/roster/internal/models"
)

//go:generate moq -out journal_mock.go . JournalStorage

// JournalStorage defines interface for the local log of confirmed mutations.
// The journal is append-only; it is never used to rebuild the collection.
type JournalStorage interface {
	// Append assigns the next sequence number to entry and stores it
	Append(ctx context.Context, entry *models.JournalEntry) error

	// List returns all entries ordered by sequence number
	List(ctx context.Context) ([]*models.JournalEntry, error)

	// Clear removes all entries
	Clear(ctx context.Context) error
}
