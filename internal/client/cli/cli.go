package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/iudanet/roster/internal/client/api"
	"github.com/iudanet/roster/internal/client/cache"
	"github.com/iudanet/roster/internal/client/iocli"
	"github.com/iudanet/roster/internal/client/storage"
	"github.com/iudanet/roster/internal/config"
)

var (
	// ErrUnknownCommand команда не распознана
	ErrUnknownCommand = errors.New("unknown command")

	// ErrConfirmationRequired удаление без терминала и без --yes
	ErrConfirmationRequired = errors.New("stdin is not a terminal, pass --yes to confirm")

	// ErrJournalUnavailable журнал мутаций не открыт
	ErrJournalUnavailable = errors.New("mutation journal is not available")
)

// CommandError ошибка команды с сообщением для пользователя.
// Action описывает действие: "creating character", "loading characters".
type CommandError struct {
	Err    error
	Action string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("Error %s: %s", e.Action, describe(e.Err))
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func fail(action string, err error) error {
	return &CommandError{Action: action, Err: err}
}

// describe переводит ошибку нижних слоев в короткое сообщение
func describe(err error) string {
	if errors.Is(err, api.ErrNotFound) {
		return api.ErrNotFound.Error()
	}
	var rf *api.RequestFailedError
	if errors.As(err, &rf) {
		return fmt.Sprintf("%v: %v", api.ErrRequestFailed, rf.Cause)
	}
	return err.Error()
}

type Cli struct {
	io      iocli.IO
	cache   *cache.Cache
	journal storage.JournalStorage
	now     func() time.Time
	color   bool
}

// New создает CLI. journal может быть nil, тогда history недоступна.
func New(console iocli.IO, c *cache.Cache, journal storage.JournalStorage, color bool) *Cli {
	return &Cli{
		io:      console,
		cache:   c,
		journal: journal,
		now:     time.Now,
		color:   color,
	}
}

// ColorEnabled решает, раскрашивать ли вывод
func ColorEnabled(mode config.ColorMode, out iocli.IO) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return out.OutputIsTerminal()
	}
}

const usageText = `Roster Client

Usage:
  roster [OPTIONS] COMMAND

Options:
  --version            Show version information
  --server URL         API base URL (env ROSTER_SERVER_URL)
  --db PATH            Path to local mutation journal (env ROSTER_DB)
  --timeout DURATION   HTTP timeout (env ROSTER_HTTP_TIMEOUT, default 30s)
  --color MODE         auto, always or never (env ROSTER_COLOR)
  --log-level LEVEL    DEBUG, INFO, WARN or ERROR (env ROSTER_LOG_LEVEL)

Commands:
  list [--tier T] [--weight W] [-o table|json|yaml]   List characters
  get <id> [-o table|json|yaml]                        Show one character
  add                                                  Create a character interactively
  edit <id>                                            Edit a character, Enter keeps a value
  delete <id> [--yes]                                  Delete a character
  watch [--interval 30s]                               Print the roster on every change
  history [--clear] [-o table|json|yaml]               Show confirmed mutations

Examples:
  roster list --tier S
  roster get 6650a1f2c3d4e5f6a7b8c9d0 -o json
  roster --server http://localhost:8080 add
  roster delete 6650a1f2c3d4e5f6a7b8c9d0 --yes
`

// PrintUsage печатает справку
func PrintUsage(w io.Writer) {
	_, _ = fmt.Fprint(w, usageText)
}
