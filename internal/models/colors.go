package models

// DefaultColor цвет для значений вне перечисления
const DefaultColor = "#ffffff"

var tierColors = map[TierRanking]string{
	TierS: "#ffcc00",
	TierA: "#ff6b6b",
	TierB: "#4ecdc4",
	TierC: "#45b7d1",
	TierD: "#96ceb4",
}

var weightClassColors = map[WeightClass]string{
	WeightClassLight:  "#ffcc00",
	WeightClassMedium: "#4ecdc4",
	WeightClassHeavy:  "#ff6b6b",
}

// TierColor возвращает hex-цвет тира (#rrggbb)
func TierColor(t TierRanking) string {
	if c, ok := tierColors[t]; ok {
		return c
	}
	return DefaultColor
}

// WeightClassColor возвращает hex-цвет весовой категории (#rrggbb)
func WeightClassColor(w WeightClass) string {
	if c, ok := weightClassColors[w]; ok {
		return c
	}
	return DefaultColor
}
