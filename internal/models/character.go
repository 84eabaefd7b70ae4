package models

// WeightClass весовая категория персонажа
type WeightClass string

// Допустимые весовые категории
const (
	WeightClassLight  WeightClass = "light"
	WeightClassMedium WeightClass = "medium"
	WeightClassHeavy  WeightClass = "heavy"
)

// WeightClasses перечисляет весовые категории в порядке отображения
var WeightClasses = []WeightClass{WeightClassLight, WeightClassMedium, WeightClassHeavy}

// Valid проверяет, что значение входит в перечисление
func (w WeightClass) Valid() bool {
	switch w {
	case WeightClassLight, WeightClassMedium, WeightClassHeavy:
		return true
	}
	return false
}

// TierRanking позиция персонажа в тир-листе
type TierRanking string

// Допустимые тиры, от сильнейшего к слабейшему
const (
	TierS TierRanking = "S"
	TierA TierRanking = "A"
	TierB TierRanking = "B"
	TierC TierRanking = "C"
	TierD TierRanking = "D"
)

// TierRankings перечисляет тиры в порядке отображения
var TierRankings = []TierRanking{TierS, TierA, TierB, TierC, TierD}

// Valid проверяет, что значение входит в перечисление
func (t TierRanking) Valid() bool {
	switch t {
	case TierS, TierA, TierB, TierC, TierD:
		return true
	}
	return false
}

// Character представляет персонажа ростера.
// ID отсутствует у черновика (draft) и назначается сервером при создании,
// после чего не меняется и уникален в пределах коллекции.
type Character struct {
	ID                 string      `json:"_id,omitempty" yaml:"_id,omitempty"`                         // ID идентификатор, назначенный сервером
	Name               string      `json:"name" yaml:"name"`                                           // Name имя персонажа
	WeightClass        WeightClass `json:"weight_class" yaml:"weight_class"`                           // WeightClass весовая категория
	OriginalGameSeries string      `json:"original_game_series" yaml:"original_game_series"`           // OriginalGameSeries серия игр, из которой персонаж
	TierRanking        TierRanking `json:"tier_ranking" yaml:"tier_ranking"`                           // TierRanking позиция в тир-листе
	NotablePlayers     []string    `json:"notable_players,omitempty" yaml:"notable_players,omitempty"` // NotablePlayers известные игроки за персонажа
	MovementSpeed      float64     `json:"movement_speed" yaml:"movement_speed"`                       // MovementSpeed скорость передвижения
}

// IsDraft сообщает, что запись еще не создана на сервере
func (c Character) IsDraft() bool {
	return c.ID == ""
}

// Clone создает глубокую копию записи
func (c Character) Clone() Character {
	if c.NotablePlayers != nil {
		players := make([]string, len(c.NotablePlayers))
		copy(players, c.NotablePlayers)
		c.NotablePlayers = players
	}
	return c
}

// AsDraft возвращает копию записи без идентификатора
func (c Character) AsDraft() Character {
	draft := c.Clone()
	draft.ID = ""
	return draft
}
