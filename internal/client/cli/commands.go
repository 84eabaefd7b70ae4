package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
)

// Run выполняет команду. Ошибки возвращаются готовыми для вывода пользователю.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	var err error
	switch command {
	case "list":
		err = c.runList(ctx, args)
	case "get":
		err = c.runGet(ctx, args)
	case "add":
		err = c.runAdd(ctx, args)
	case "edit":
		err = c.runEdit(ctx, args)
	case "delete":
		err = c.runDelete(ctx, args)
	case "watch":
		err = c.runWatch(ctx, args)
	case "history":
		err = c.runHistory(ctx, args)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}

	// -h у подкоманды не ошибка
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

// newFlagSet создает набор флагов подкоманды с выводом в IO клиента
func (c *Cli) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.io)
	return fs
}

// parseArgs разбирает флаги до и после позиционных аргументов,
// чтобы работали оба варианта: "delete --yes 42" и "delete 42 --yes".
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		if fs.NArg() == 0 {
			return positional, nil
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}
}

// requireID проверяет, что передан ровно один идентификатор
func requireID(positional []string, usage string) (string, error) {
	if len(positional) != 1 || positional[0] == "" {
		return "", fmt.Errorf("expected exactly one character ID. Usage: %s", usage)
	}
	return positional[0], nil
}
