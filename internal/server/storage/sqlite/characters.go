package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/roster/internal/models"
	"github.com/iudanet/roster/internal/server/storage"
)

var _ storage.CharacterStorage = (*Storage)(nil)

const characterColumns = `id, name, weight_class, original_game_series, tier_ranking, notable_players, movement_speed`

// ListCharacters returns all characters in insertion order
func (s *Storage) ListCharacters(ctx context.Context) (list []models.Character, err error) {
	query := `SELECT ` + characterColumns + ` FROM characters ORDER BY seq ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query characters: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	list = []models.Character{}
	for rows.Next() {
		ch, err := scanCharacter(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *ch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return list, nil
}

// GetCharacter retrieves a single character by ID
func (s *Storage) GetCharacter(ctx context.Context, id string) (*models.Character, error) {
	query := `SELECT ` + characterColumns + ` FROM characters WHERE id = ?`

	ch, err := scanCharacter(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrCharacterNotFound
		}
		return nil, err
	}
	return ch, nil
}

// CreateCharacter inserts a new character, ch.ID must be set
func (s *Storage) CreateCharacter(ctx context.Context, ch *models.Character) error {
	players, err := encodePlayers(ch.NotablePlayers)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO characters (
			id, name, weight_class, original_game_series, tier_ranking,
			notable_players, movement_speed, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().Unix()
	_, err = s.db.ExecContext(ctx, query,
		ch.ID,
		ch.Name,
		ch.WeightClass,
		ch.OriginalGameSeries,
		ch.TierRanking,
		players,
		ch.MovementSpeed,
		now,
		now,
	)
	if err != nil {
		// modernc не экспортирует коды ошибок в удобном виде, проверяем текст ограничения
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrCharacterExists
		}
		return fmt.Errorf("failed to insert character: %w", err)
	}

	return nil
}

// UpdateCharacter replaces all fields of the character with ch.ID
func (s *Storage) UpdateCharacter(ctx context.Context, ch *models.Character) error {
	players, err := encodePlayers(ch.NotablePlayers)
	if err != nil {
		return err
	}

	query := `
		UPDATE characters
		SET name = ?, weight_class = ?, original_game_series = ?, tier_ranking = ?,
		    notable_players = ?, movement_speed = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		ch.Name,
		ch.WeightClass,
		ch.OriginalGameSeries,
		ch.TierRanking,
		players,
		ch.MovementSpeed,
		time.Now().Unix(),
		ch.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}

	return requireAffected(result)
}

// DeleteCharacter removes the character
func (s *Storage) DeleteCharacter(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrCharacterNotFound
	}
	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCharacter(row rowScanner) (*models.Character, error) {
	ch := &models.Character{}
	var players string

	err := row.Scan(
		&ch.ID,
		&ch.Name,
		&ch.WeightClass,
		&ch.OriginalGameSeries,
		&ch.TierRanking,
		&players,
		&ch.MovementSpeed,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan character: %w", err)
	}

	if err := json.Unmarshal([]byte(players), &ch.NotablePlayers); err != nil {
		return nil, fmt.Errorf("failed to decode notable players of %s: %w", ch.ID, err)
	}
	// Пустой список не отдаем, чтобы поле опускалось в JSON
	if len(ch.NotablePlayers) == 0 {
		ch.NotablePlayers = nil
	}

	return ch, nil
}

func encodePlayers(players []string) (string, error) {
	if players == nil {
		players = []string{}
	}
	data, err := json.Marshal(players)
	if err != nil {
		return "", fmt.Errorf("failed to encode notable players: %w", err)
	}
	return string(data), nil
}
