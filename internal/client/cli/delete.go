package cli

import (
	"context"
	"fmt"
	"strings"
)

const actionDelete = "deleting character"

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	fs := c.newFlagSet("delete")
	yes := fs.Bool("yes", false, "delete without confirmation")

	positional, err := parseArgs(fs, args)
	if err != nil {
		return fail(actionDelete, err)
	}
	id, err := requireID(positional, "roster delete <id> [--yes]")
	if err != nil {
		return fail(actionDelete, err)
	}

	if !*yes {
		if !c.io.InputIsTerminal() {
			return fail(actionDelete, ErrConfirmationRequired)
		}

		// Показываем запись, которая будет удалена
		ch, err := c.cache.Get(ctx, id)
		if err != nil {
			return fail(actionDelete, err)
		}
		c.io.Println("About to delete:")
		c.io.Printf("  Name:   %s\n", ch.Name)
		c.io.Printf("  Series: %s\n", ch.OriginalGameSeries)
		c.io.Println()

		confirm, err := c.io.ReadInput("Are you sure you want to delete this character? (yes/no): ")
		if err != nil {
			return fail(actionDelete, fmt.Errorf("failed to read confirmation: %w", err))
		}
		confirm = strings.ToLower(confirm)
		if confirm != "yes" && confirm != "y" {
			c.io.Println("Deletion cancelled.")
			return nil
		}
	}

	if err := c.cache.Delete(ctx, id); err != nil {
		return fail(actionDelete, err)
	}

	c.io.Printf("✓ Character %s deleted\n", id)
	return nil
}
