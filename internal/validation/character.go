package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/iudanet/roster/internal/models"
)

const (
	// MaxNameLen максимальная длина имени персонажа и названия серии
	MaxNameLen = 100
	// MaxNotablePlayers максимальное количество известных игроков
	MaxNotablePlayers = 50
)

// ValidateCharacter проверяет, что запись корректна для create/update.
// Обязательны имя, весовая категория, скорость, серия и тир.
// Идентификатор не проверяется: для create его нет, для update он берется из пути.
func ValidateCharacter(c models.Character) error {
	if err := validateText("name", c.Name); err != nil {
		return err
	}

	if c.WeightClass == "" {
		return fmt.Errorf("weight_class is required")
	}
	if !c.WeightClass.Valid() {
		return fmt.Errorf("weight_class must be one of light, medium, heavy, got %q", c.WeightClass)
	}

	if math.IsNaN(c.MovementSpeed) || math.IsInf(c.MovementSpeed, 0) {
		return fmt.Errorf("movement_speed must be a finite number")
	}
	if c.MovementSpeed < 0 {
		return fmt.Errorf("movement_speed must not be negative")
	}

	if err := validateText("original_game_series", c.OriginalGameSeries); err != nil {
		return err
	}

	if c.TierRanking == "" {
		return fmt.Errorf("tier_ranking is required")
	}
	if !c.TierRanking.Valid() {
		return fmt.Errorf("tier_ranking must be one of S, A, B, C, D, got %q", c.TierRanking)
	}

	if len(c.NotablePlayers) > MaxNotablePlayers {
		return fmt.Errorf("notable_players must not exceed %d entries", MaxNotablePlayers)
	}
	for i, p := range c.NotablePlayers {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("notable_players[%d] cannot be empty", i)
		}
	}

	return nil
}

func validateText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	if len(value) > MaxNameLen {
		return fmt.Errorf("%s must not exceed %d characters", field, MaxNameLen)
	}
	return nil
}
