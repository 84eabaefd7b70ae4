package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/roster/internal/client/cache"
)

const (
	actionWatch = "watching characters"

	defaultWatchInterval = 30 * time.Second
)

// runWatch печатает каждый опубликованный снимок и обновляет коллекцию по таймеру.
// Завершается без ошибки при отмене ctx (Ctrl+C).
func (c *Cli) runWatch(ctx context.Context, args []string) error {
	fs := c.newFlagSet("watch")
	interval := fs.Duration("interval", defaultWatchInterval, "refresh interval")

	positional, err := parseArgs(fs, args)
	if err != nil {
		return fail(actionWatch, err)
	}
	if len(positional) > 0 {
		return fail(actionWatch, fmt.Errorf("watch takes no arguments"))
	}
	if *interval <= 0 {
		return fail(actionWatch, fmt.Errorf("interval must be positive, got %s", *interval))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Сначала загружаем коллекцию, чтобы первый снимок подписки был уже заполнен
	c.refreshForWatch(ctx)
	updates := c.cache.Observe(ctx)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-updates:
			if !ok {
				return nil
			}
			c.printSnapshot(snap)
		case <-ticker.C:
			c.refreshForWatch(ctx)
		}
	}
}

// refreshForWatch не прерывает наблюдение: ошибка только печатается
func (c *Cli) refreshForWatch(ctx context.Context) {
	if err := c.cache.Refresh(ctx); err != nil && ctx.Err() == nil {
		c.io.Printf("Refresh failed: %s\n", describe(err))
	}
}

func (c *Cli) printSnapshot(snap cache.Snapshot) {
	c.io.Printf("--- %s: %d character(s) ---\n", c.now().Format(time.TimeOnly), len(snap))
	if len(snap) == 0 {
		c.io.Println("No characters found.")
	} else {
		c.printTable(snap)
	}
	c.io.Println()
}
