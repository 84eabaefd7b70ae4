package storage

import (
	"context"

	"github.com/iudanet/roster/internal/models"
)

//go:generate moq -out characterstorage_mock.go . CharacterStorage

// CharacterStorage defines interface for characters persistence
type CharacterStorage interface {
	// ListCharacters returns all characters in insertion order.
	// Returns empty slice if there are none
	ListCharacters(ctx context.Context) ([]models.Character, error)

	// GetCharacter retrieves a single character by ID
	// Returns ErrCharacterNotFound if character doesn't exist
	GetCharacter(ctx context.Context, id string) (*models.Character, error)

	// CreateCharacter stores a new character, ch.ID must be set by the caller
	// Returns ErrCharacterExists if ID is already taken
	CreateCharacter(ctx context.Context, ch *models.Character) error

	// UpdateCharacter replaces all fields of the character with ch.ID
	// Returns ErrCharacterNotFound if character doesn't exist
	UpdateCharacter(ctx context.Context, ch *models.Character) error

	// DeleteCharacter removes the character
	// Returns ErrCharacterNotFound if character doesn't exist
	DeleteCharacter(ctx context.Context, id string) error
}
