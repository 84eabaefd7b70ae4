package sqlite

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/roster/internal/models"
	"github.com/iudanet/roster/internal/server/storage"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	// Используем in-memory database для тестов
	s, err := New(context.Background(), ":memory:", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func newCharacter(name string) *models.Character {
	return &models.Character{
		ID:                 uuid.New().String(),
		Name:               name,
		WeightClass:        models.WeightClassMedium,
		OriginalGameSeries: "Super Mario",
		TierRanking:        models.TierA,
		NotablePlayers:     []string{"Alice", "Bob"},
		MovementSpeed:      1.6,
	}
}

func TestNew_AppliesMigrations(t *testing.T) {
	s := setupTestStorage(t)

	var count int
	err := s.DB().QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'characters'`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNew_ReopenFileKeepsData(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "roster.db")

	s, err := New(ctx, path, logger)
	require.NoError(t, err)
	ch := newCharacter("Mario")
	require.NoError(t, s.CreateCharacter(ctx, ch))
	require.NoError(t, s.Close())

	// Повторный запуск миграций на существующей базе ничего не ломает
	s, err = New(ctx, path, logger)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, s.Close())
	}()

	got, err := s.GetCharacter(ctx, ch.ID)
	require.NoError(t, err)
	assert.Equal(t, ch, got)
}

func TestCharacters_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	tests := []struct {
		mutate func(ch *models.Character)
		name   string
	}{
		{name: "with players", mutate: func(ch *models.Character) {}},
		{name: "without players", mutate: func(ch *models.Character) { ch.NotablePlayers = nil }},
		{name: "empty players become nil", mutate: func(ch *models.Character) { ch.NotablePlayers = []string{} }},
		{name: "zero speed", mutate: func(ch *models.Character) { ch.MovementSpeed = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := newCharacter("Mario")
			tt.mutate(ch)
			require.NoError(t, s.CreateCharacter(ctx, ch))

			got, err := s.GetCharacter(ctx, ch.ID)
			require.NoError(t, err)

			want := ch.Clone()
			if len(want.NotablePlayers) == 0 {
				want.NotablePlayers = nil
			}
			assert.Equal(t, &want, got)
		})
	}
}

func TestCharacters_CreateDuplicateID(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	ch := newCharacter("Mario")
	require.NoError(t, s.CreateCharacter(ctx, ch))

	dup := newCharacter("Luigi")
	dup.ID = ch.ID
	err := s.CreateCharacter(ctx, dup)
	assert.ErrorIs(t, err, storage.ErrCharacterExists)
}

func TestCharacters_GetNotFound(t *testing.T) {
	s := setupTestStorage(t)

	_, err := s.GetCharacter(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrCharacterNotFound)
}

func TestCharacters_ListInInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	list, err := s.ListCharacters(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list, "пустая коллекция это пустой срез, а не nil")
	assert.Empty(t, list)

	names := []string{"Zelda", "Mario", "Kirby"}
	for _, name := range names {
		require.NoError(t, s.CreateCharacter(ctx, newCharacter(name)))
	}

	list, err = s.ListCharacters(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(names))
	for i, name := range names {
		assert.Equal(t, name, list[i].Name)
	}
}

func TestCharacters_Update(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	first := newCharacter("Mario")
	second := newCharacter("Link")
	require.NoError(t, s.CreateCharacter(ctx, first))
	require.NoError(t, s.CreateCharacter(ctx, second))

	updated := first.Clone()
	updated.Name = "Luigi"
	updated.TierRanking = models.TierS
	updated.NotablePlayers = nil
	require.NoError(t, s.UpdateCharacter(ctx, &updated))

	got, err := s.GetCharacter(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, &updated, got)

	// Обновление не меняет порядок
	list, err := s.ListCharacters(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Luigi", list[0].Name)
	assert.Equal(t, "Link", list[1].Name)
}

func TestCharacters_UpdateNotFound(t *testing.T) {
	s := setupTestStorage(t)

	err := s.UpdateCharacter(context.Background(), newCharacter("Ghost"))
	assert.ErrorIs(t, err, storage.ErrCharacterNotFound)
}

func TestCharacters_Delete(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	ch := newCharacter("Mario")
	require.NoError(t, s.CreateCharacter(ctx, ch))

	require.NoError(t, s.DeleteCharacter(ctx, ch.ID))

	_, err := s.GetCharacter(ctx, ch.ID)
	assert.ErrorIs(t, err, storage.ErrCharacterNotFound)

	// Повторное удаление
	err = s.DeleteCharacter(ctx, ch.ID)
	assert.ErrorIs(t, err, storage.ErrCharacterNotFound)
}

func TestCharacters_CheckConstraints(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	ch := newCharacter("Mario")
	ch.TierRanking = "Z"
	err := s.CreateCharacter(ctx, ch)
	require.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrCharacterExists)
}
