package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/iudanet/roster/internal/models"
	"gopkg.in/yaml.v3"
)

const ansiReset = "\x1b[0m"

type outputFormat string

const (
	formatTable outputFormat = "table"
	formatJSON  outputFormat = "json"
	formatYAML  outputFormat = "yaml"
)

func parseFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(s)); f {
	case formatTable, formatJSON, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q, use table, json or yaml", s)
	}
}

// ansiColor переводит "#rrggbb" в 24-битную ANSI последовательность цвета текста.
// Для некорректного значения возвращает пустую строку.
func ansiColor(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return ""
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", v>>16&0xff, v>>8&0xff, v&0xff)
}

// paint раскрашивает text, если цвет включен
func (c *Cli) paint(text, hex string) string {
	if !c.color {
		return text
	}
	code := ansiColor(hex)
	if code == "" {
		return text
	}
	return code + text + ansiReset
}

func (c *Cli) paintTier(text string, t models.TierRanking) string {
	return c.paint(text, models.TierColor(t))
}

func (c *Cli) paintWeight(text string, w models.WeightClass) string {
	return c.paint(text, models.WeightClassColor(w))
}

func formatSpeed(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (c *Cli) writeJSON(v any) error {
	enc := json.NewEncoder(c.io)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func (c *Cli) writeYAML(v any) error {
	enc := yaml.NewEncoder(c.io)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return nil
}

// printCharacters выводит список в выбранном формате
func (c *Cli) printCharacters(list []models.Character, format outputFormat) error {
	if list == nil {
		list = []models.Character{}
	}
	switch format {
	case formatJSON:
		return c.writeJSON(list)
	case formatYAML:
		return c.writeYAML(list)
	}

	if len(list) == 0 {
		c.io.Println("No characters found.")
		return nil
	}
	c.printTable(list)
	return nil
}

// printCharacter выводит одну запись в выбранном формате
func (c *Cli) printCharacter(ch models.Character, format outputFormat) error {
	switch format {
	case formatJSON:
		return c.writeJSON(ch)
	case formatYAML:
		return c.writeYAML(ch)
	}

	c.io.Printf("Name:     %s\n", ch.Name)
	c.io.Printf("ID:       %s\n", ch.ID)
	c.io.Printf("Series:   %s\n", ch.OriginalGameSeries)
	c.io.Printf("Weight:   %s\n", c.paintWeight(string(ch.WeightClass), ch.WeightClass))
	c.io.Printf("Tier:     %s\n", c.paintTier(string(ch.TierRanking), ch.TierRanking))
	c.io.Printf("Speed:    %s\n", formatSpeed(ch.MovementSpeed))
	if len(ch.NotablePlayers) > 0 {
		c.io.Printf("Players:  %s\n", strings.Join(ch.NotablePlayers, ", "))
	}
	return nil
}

var tableHeader = []string{"ID", "NAME", "SERIES", "WEIGHT", "TIER", "SPEED", "PLAYERS"}

const (
	colWeight = 3
	colTier   = 4
)

// printTable выравнивает колонки по видимой ширине.
// Цвет добавляется после выравнивания, иначе escape-последовательности сбивают ширину.
func (c *Cli) printTable(list []models.Character) {
	rows := make([][]string, 0, len(list))
	for _, ch := range list {
		rows = append(rows, []string{
			ch.ID,
			ch.Name,
			ch.OriginalGameSeries,
			string(ch.WeightClass),
			string(ch.TierRanking),
			formatSpeed(ch.MovementSpeed),
			strings.Join(ch.NotablePlayers, ", "),
		})
	}

	widths := columnWidths(tableHeader, rows)

	c.io.Println(joinRow(tableHeader, widths, nil))
	for i, row := range rows {
		ch := list[i]
		c.io.Println(joinRow(row, widths, func(col int, cell string) string {
			switch col {
			case colWeight:
				return c.paintWeight(cell, ch.WeightClass)
			case colTier:
				return c.paintTier(cell, ch.TierRanking)
			}
			return cell
		}))
	}
}

// columnWidths видимая ширина каждой колонки с учетом заголовка
func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, cell := range header {
		widths[i] = utf8.RuneCountInString(cell)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}
	return widths
}

func joinRow(cells []string, widths []int, decorate func(col int, cell string) string) string {
	var b strings.Builder
	last := len(cells) - 1
	for i, cell := range cells {
		padded := cell
		if i < last {
			padded += strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
		}
		if decorate != nil {
			// раскрашиваем только текст, пробелы выравнивания оставляем как есть
			padded = decorate(i, cell) + padded[len(cell):]
		}
		b.WriteString(padded)
		if i < last {
			b.WriteString("  ")
		}
	}
	return strings.TrimRight(b.String(), " ")
}
