package cli

import (
	"context"
)

const actionGet = "getting character"

func (c *Cli) runGet(ctx context.Context, args []string) error {
	fs := c.newFlagSet("get")
	output := fs.String("o", string(formatTable), "output format: table, json or yaml")

	positional, err := parseArgs(fs, args)
	if err != nil {
		return fail(actionGet, err)
	}
	id, err := requireID(positional, "roster get <id> [-o table|json|yaml]")
	if err != nil {
		return fail(actionGet, err)
	}
	format, err := parseFormat(*output)
	if err != nil {
		return fail(actionGet, err)
	}

	ch, err := c.cache.Get(ctx, id)
	if err != nil {
		return fail(actionGet, err)
	}

	if format == formatTable {
		c.io.Println("=== Character Details ===")
		c.io.Println()
	}
	return c.printCharacter(*ch, format)
}
