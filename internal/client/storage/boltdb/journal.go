package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/roster/internal/client/storage"
	"github.com/iudanet/roster/internal/models"
)

var _ storage.JournalStorage = (*Storage)(nil)

// Append stores a journal entry under the next bucket sequence number
func (s *Storage) Append(ctx context.Context, entry *models.JournalEntry) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// entry получает Seq только после успешного коммита
	var seq uint64
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketJournal)
		if bucket == nil {
			return fmt.Errorf("journal bucket not found")
		}

		var err error
		seq, err = bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to get next sequence: %w", err)
		}

		stored := *entry
		stored.Seq = seq

		// Сериализуем entry в JSON
		data, err := json.Marshal(&stored)
		if err != nil {
			return fmt.Errorf("failed to marshal journal entry: %w", err)
		}

		// Big-endian ключ сохраняет порядок при обходе курсором
		if err := bucket.Put(seqKey(seq), data); err != nil {
			return fmt.Errorf("failed to save journal entry: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	entry.Seq = seq
	return nil
}

// List returns all journal entries ordered by sequence number
func (s *Storage) List(ctx context.Context) ([]*models.JournalEntry, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	entries := []*models.JournalEntry{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketJournal)
		if bucket == nil {
			// Нет bucket - возвращаем пустой массив
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var entry models.JournalEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("failed to unmarshal journal entry: %w", err)
			}
			entries = append(entries, &entry)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list journal: %w", err)
	}

	return entries, nil
}

// Clear removes all journal entries
func (s *Storage) Clear(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		// Удаляем bucket полностью
		if err := tx.DeleteBucket(bucketJournal); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("failed to delete bucket: %w", err)
		}

		// Создаем заново пустой bucket
		if _, err := tx.CreateBucket(bucketJournal); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("clear transaction failed: %w", err)
	}

	return nil
}

func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
