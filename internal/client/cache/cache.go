package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/roster/internal/models"
)

//go:generate moq -out mocks.go . RemoteClient Journal

// RemoteClient операции удаленного ресурса characters, нужные кэшу.
// Реализуется api.Client.
type RemoteClient interface {
	FetchAll(ctx context.Context) ([]models.Character, error)
	FetchOne(ctx context.Context, id string) (*models.Character, error)
	CreateOne(ctx context.Context, draft models.Character) (*models.Character, error)
	UpdateOne(ctx context.Context, id string, c models.Character) (*models.Character, error)
	DeleteOne(ctx context.Context, id string) error
}

// Journal принимает записи о подтвержденных мутациях
type Journal interface {
	Append(ctx context.Context, entry *models.JournalEntry) error
}

// Cache хранит последний подтвержденный сервером снимок коллекции
// и рассылает каждый новый снимок всем подписчикам.
//
// Сетевой вызов выполняется без блокировки, а шаг "прочитать, изменить,
// опубликовать" целиком под mu. Поэтому публикации идут в порядке завершения
// операций, и две операции не перемешиваются посреди мутации.
type Cache struct {
	remote      RemoteClient
	journal     Journal
	logger      *slog.Logger
	now         func() time.Time
	subscribers map[uint64]*subscriber
	snapshot    Snapshot
	nextSubID   uint64
	mu          sync.Mutex
}

// New создает кэш с пустым снимком. Сеть не трогается до первого Refresh.
// journal может быть nil.
func New(remote RemoteClient, journal Journal, logger *slog.Logger) *Cache {
	return &Cache{
		remote:      remote,
		journal:     journal,
		logger:      logger,
		now:         time.Now,
		subscribers: make(map[uint64]*subscriber),
		snapshot:    Snapshot{},
	}
}

// Observe подписывается на снимки.
// Первым значением приходит текущий снимок, затем все последующие по порядку.
// Канал закрывается после отмены ctx.
func (c *Cache) Observe(ctx context.Context) <-chan Snapshot {
	sub := newSubscriber()

	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = sub
	sub.push(c.snapshot.Clone())
	c.mu.Unlock()

	go sub.run(ctx, func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	})

	return sub.out
}

// Current возвращает копию последнего опубликованного снимка без сетевых запросов
func (c *Cache) Current() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot.Clone()
}

// Subscribers возвращает количество активных подписчиков
func (c *Cache) Subscribers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subscribers)
}

// Refresh заменяет снимок коллекцией с сервера.
// При ошибке снимок не меняется.
func (c *Cache) Refresh(ctx context.Context) error {
	list, err := c.remote.FetchAll(ctx)
	if err != nil {
		c.logger.Warn("Failed to refresh characters", "error", err)
		return fmt.Errorf("refresh characters: %w", err)
	}

	next := make(Snapshot, len(list))
	for i, ch := range list {
		next[i] = ch.Clone()
	}

	c.mu.Lock()
	c.publishLocked(next)
	c.mu.Unlock()

	c.logger.Debug("Characters refreshed", "count", len(next))
	return nil
}

// Get получает одного персонажа с сервера. Снимок не меняется.
func (c *Cache) Get(ctx context.Context, id string) (*models.Character, error) {
	ch, err := c.remote.FetchOne(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get character %s: %w", id, err)
	}
	return ch, nil
}

// Create создает персонажа и добавляет ответ сервера в конец снимка
func (c *Cache) Create(ctx context.Context, draft models.Character) (*models.Character, error) {
	created, err := c.remote.CreateOne(ctx, draft)
	if err != nil {
		c.logger.Warn("Failed to create character", "name", draft.Name, "error", err)
		return nil, fmt.Errorf("create character: %w", err)
	}

	c.mu.Lock()
	c.publishLocked(c.snapshot.withAppended(created.Clone()))
	c.mu.Unlock()

	c.logger.Info("Character created", "character_id", created.ID, "name", created.Name)
	c.record(ctx, models.MutationCreate, created.ID, created.Name)

	return created, nil
}

// Update заменяет персонажа с данным id ответом сервера, сохраняя позицию.
// Если такого id в снимке нет, ответ добавляется в конец.
func (c *Cache) Update(ctx context.Context, id string, ch models.Character) (*models.Character, error) {
	updated, err := c.remote.UpdateOne(ctx, id, ch)
	if err != nil {
		c.logger.Warn("Failed to update character", "character_id", id, "error", err)
		return nil, fmt.Errorf("update character %s: %w", id, err)
	}

	c.mu.Lock()
	next, replaced := c.snapshot.withReplaced(id, updated.Clone())
	c.publishLocked(next)
	c.mu.Unlock()

	if !replaced {
		c.logger.Warn("Updated character was not in snapshot, appended", "character_id", id)
	}
	c.logger.Info("Character updated", "character_id", id, "name", updated.Name)
	c.record(ctx, models.MutationUpdate, id, updated.Name)

	return updated, nil
}

// Delete удаляет персонажа. Отсутствие id в снимке не ошибка.
func (c *Cache) Delete(ctx context.Context, id string) error {
	if err := c.remote.DeleteOne(ctx, id); err != nil {
		c.logger.Warn("Failed to delete character", "character_id", id, "error", err)
		return fmt.Errorf("delete character %s: %w", id, err)
	}

	c.mu.Lock()
	next, removed := c.snapshot.withRemoved(id)
	c.publishLocked(next)
	c.mu.Unlock()

	c.logger.Info("Character deleted", "character_id", id, "in_snapshot", removed)
	c.record(ctx, models.MutationDelete, id, "")

	return nil
}

// publishLocked сохраняет новый снимок и ставит копию в очередь каждому подписчику.
// Вызывается под c.mu.
func (c *Cache) publishLocked(next Snapshot) {
	c.snapshot = next
	for _, sub := range c.subscribers {
		sub.push(next.Clone())
	}
}

// record пишет мутацию в журнал. Ошибка журнала не прерывает операцию.
func (c *Cache) record(ctx context.Context, op models.MutationOp, id, name string) {
	if c.journal == nil {
		return
	}
	entry := &models.JournalEntry{
		Op:          op,
		CharacterID: id,
		Name:        name,
		RecordedAt:  c.now(),
	}
	if err := c.journal.Append(ctx, entry); err != nil {
		c.logger.Warn("Failed to record mutation", "op", op, "character_id", id, "error", err)
	}
}
