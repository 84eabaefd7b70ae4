package cli

import (
	"context"
	"fmt"
)

const (
	actionCreate = "creating character"
	actionUpdate = "updating character"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return fail(actionCreate, fmt.Errorf("add takes no arguments. Usage: roster add"))
	}

	c.io.Println("=== Add Character ===")
	c.io.Println()

	draft, err := c.readCharacter(nil)
	if err != nil {
		return fail(actionCreate, err)
	}

	created, err := c.cache.Create(ctx, draft)
	if err != nil {
		return fail(actionCreate, err)
	}

	c.io.Println()
	c.io.Printf("✓ Character %s created with ID %s\n", created.Name, created.ID)
	return nil
}

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	id, err := requireID(args, "roster edit <id>")
	if err != nil {
		return fail(actionUpdate, err)
	}

	current, err := c.cache.Get(ctx, id)
	if err != nil {
		return fail(actionUpdate, err)
	}

	c.io.Println("=== Edit Character ===")
	c.io.Println()
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	ch, err := c.readCharacter(current)
	if err != nil {
		return fail(actionUpdate, err)
	}
	ch.ID = id

	// Кэш каждого запуска пуст; без загрузки коллекции Update добавил бы запись в конец
	if err := c.cache.Refresh(ctx); err != nil {
		return fail(actionUpdate, err)
	}

	updated, err := c.cache.Update(ctx, id, ch)
	if err != nil {
		return fail(actionUpdate, err)
	}

	c.io.Println()
	c.io.Printf("✓ Character %s updated\n", updated.Name)
	return nil
}
