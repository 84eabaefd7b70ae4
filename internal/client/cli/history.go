package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/iudanet/roster/internal/models"
)

const actionHistory = "reading history"

var historyHeader = []string{"SEQ", "TIME", "OP", "ID", "NAME"}

func (c *Cli) runHistory(ctx context.Context, args []string) error {
	fs := c.newFlagSet("history")
	clearAll := fs.Bool("clear", false, "remove all journal entries")
	output := fs.String("o", string(formatTable), "output format: table, json or yaml")

	positional, err := parseArgs(fs, args)
	if err != nil {
		return fail(actionHistory, err)
	}
	if len(positional) > 0 {
		return fail(actionHistory, fmt.Errorf("history takes no arguments"))
	}
	format, err := parseFormat(*output)
	if err != nil {
		return fail(actionHistory, err)
	}
	if c.journal == nil {
		return fail(actionHistory, ErrJournalUnavailable)
	}

	if *clearAll {
		if err := c.journal.Clear(ctx); err != nil {
			return fail("clearing history", err)
		}
		c.io.Println("✓ History cleared")
		return nil
	}

	entries, err := c.journal.List(ctx)
	if err != nil {
		return fail(actionHistory, err)
	}

	switch format {
	case formatJSON:
		return c.writeJSON(entries)
	case formatYAML:
		return c.writeYAML(entries)
	}

	if len(entries) == 0 {
		c.io.Println("History is empty.")
		return nil
	}
	c.printHistory(entries)
	return nil
}

func (c *Cli) printHistory(entries []*models.JournalEntry) {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.FormatUint(e.Seq, 10),
			e.RecordedAt.Local().Format(time.DateTime),
			string(e.Op),
			e.CharacterID,
			e.Name,
		})
	}

	widths := columnWidths(historyHeader, rows)
	c.io.Println(joinRow(historyHeader, widths, nil))
	for _, row := range rows {
		c.io.Println(joinRow(row, widths, nil))
	}
}
