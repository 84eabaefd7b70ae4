package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/roster/internal/models"
)

const actionList = "loading characters"

func (c *Cli) runList(ctx context.Context, args []string) error {
	fs := c.newFlagSet("list")
	tier := fs.String("tier", "", "show only this tier (S, A, B, C, D)")
	weight := fs.String("weight", "", "show only this weight class (light, medium, heavy)")
	output := fs.String("o", string(formatTable), "output format: table, json or yaml")

	positional, err := parseArgs(fs, args)
	if err != nil {
		return fail(actionList, err)
	}
	if len(positional) > 0 {
		return fail(actionList, fmt.Errorf("unexpected arguments: %s", strings.Join(positional, " ")))
	}

	format, err := parseFormat(*output)
	if err != nil {
		return fail(actionList, err)
	}

	filter, err := newCharacterFilter(*tier, *weight)
	if err != nil {
		return fail(actionList, err)
	}

	if err := c.cache.Refresh(ctx); err != nil {
		return fail(actionList, err)
	}

	return c.printCharacters(filter.apply(c.cache.Current()), format)
}

// characterFilter отбор по тиру и весовой категории, пустое значение пропускает все
type characterFilter struct {
	tier   models.TierRanking
	weight models.WeightClass
}

func newCharacterFilter(tier, weight string) (characterFilter, error) {
	f := characterFilter{
		tier:   models.TierRanking(strings.ToUpper(strings.TrimSpace(tier))),
		weight: models.WeightClass(strings.ToLower(strings.TrimSpace(weight))),
	}
	if f.tier != "" && !f.tier.Valid() {
		return characterFilter{}, fmt.Errorf("unknown tier %q, use S, A, B, C or D", tier)
	}
	if f.weight != "" && !f.weight.Valid() {
		return characterFilter{}, fmt.Errorf("unknown weight class %q, use light, medium or heavy", weight)
	}
	return f, nil
}

func (f characterFilter) apply(list []models.Character) []models.Character {
	out := make([]models.Character, 0, len(list))
	for _, ch := range list {
		if f.tier != "" && ch.TierRanking != f.tier {
			continue
		}
		if f.weight != "" && ch.WeightClass != f.weight {
			continue
		}
		out = append(out, ch)
	}
	return out
}
