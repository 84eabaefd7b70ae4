package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/roster/internal/models"
	"github.com/iudanet/roster/internal/validation"
)

// clearValue очищает список игроков при редактировании
const clearValue = "-"

// ask читает значение поля. Пустой ввод оставляет current.
func (c *Cli) ask(label, current string) (string, error) {
	prompt := label + ": "
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, current)
	}
	value, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	if value == "" {
		return current, nil
	}
	return value, nil
}

// readCharacter спрашивает все поля записи.
// current == nil для создания, иначе значения current предлагаются по умолчанию.
func (c *Cli) readCharacter(current *models.Character) (models.Character, error) {
	var ch models.Character
	speed := ""
	if current != nil {
		ch = current.Clone()
		speed = formatSpeed(current.MovementSpeed)
	}

	var err error
	if ch.Name, err = c.ask("Name", ch.Name); err != nil {
		return models.Character{}, err
	}
	if ch.OriginalGameSeries, err = c.ask("Original game series", ch.OriginalGameSeries); err != nil {
		return models.Character{}, err
	}

	weight, err := c.ask("Weight class (light/medium/heavy)", string(ch.WeightClass))
	if err != nil {
		return models.Character{}, err
	}
	ch.WeightClass = models.WeightClass(strings.ToLower(weight))

	tier, err := c.ask("Tier ranking (S/A/B/C/D)", string(ch.TierRanking))
	if err != nil {
		return models.Character{}, err
	}
	ch.TierRanking = models.TierRanking(strings.ToUpper(tier))

	speedInput, err := c.ask("Movement speed", speed)
	if err != nil {
		return models.Character{}, err
	}
	if speedInput == "" {
		return models.Character{}, fmt.Errorf("movement_speed is required")
	}
	ch.MovementSpeed, err = strconv.ParseFloat(speedInput, 64)
	if err != nil {
		return models.Character{}, fmt.Errorf("movement_speed must be a number, got %q", speedInput)
	}

	playersLabel := "Notable players (comma-separated, optional)"
	if current != nil {
		playersLabel = "Notable players (comma-separated, '-' to clear)"
	}
	players, err := c.ask(playersLabel, strings.Join(ch.NotablePlayers, ", "))
	if err != nil {
		return models.Character{}, err
	}
	ch.NotablePlayers = splitPlayers(players)

	if err := validation.ValidateCharacter(ch); err != nil {
		return models.Character{}, fmt.Errorf("invalid character: %w", err)
	}
	return ch, nil
}

func splitPlayers(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || s == clearValue {
		return nil
	}
	var players []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			players = append(players, p)
		}
	}
	return players
}
