package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/roster/internal/client/api"
	"github.com/iudanet/roster/internal/models"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeServer хранит коллекцию на "сервере" и назначает id по порядку
type fakeServer struct {
	failWith error
	items    map[string]models.Character
	order    []string
	seq      int
	mu       sync.Mutex
}

func newFakeServer() *fakeServer {
	return &fakeServer{items: make(map[string]models.Character)}
}

func (f *fakeServer) fail(err error) {
	f.mu.Lock()
	f.failWith = err
	f.mu.Unlock()
}

// remote возвращает мок клиента, работающий поверх fakeServer
func (f *fakeServer) remote() *RemoteClientMock {
	return &RemoteClientMock{
		FetchAllFunc: func(ctx context.Context) ([]models.Character, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.failWith != nil {
				return nil, f.failWith
			}
			list := make([]models.Character, 0, len(f.order))
			for _, id := range f.order {
				list = append(list, f.items[id].Clone())
			}
			return list, nil
		},
		FetchOneFunc: func(ctx context.Context, id string) (*models.Character, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.failWith != nil {
				return nil, f.failWith
			}
			c, ok := f.items[id]
			if !ok {
				return nil, api.ErrNotFound
			}
			return &c, nil
		},
		CreateOneFunc: func(ctx context.Context, draft models.Character) (*models.Character, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.failWith != nil {
				return nil, f.failWith
			}
			f.seq++
			c := draft.Clone()
			c.ID = strconv.Itoa(f.seq)
			f.items[c.ID] = c
			f.order = append(f.order, c.ID)
			return &c, nil
		},
		UpdateOneFunc: func(ctx context.Context, id string, ch models.Character) (*models.Character, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.failWith != nil {
				return nil, f.failWith
			}
			if _, ok := f.items[id]; !ok {
				return nil, api.ErrNotFound
			}
			c := ch.Clone()
			c.ID = id
			f.items[id] = c
			return &c, nil
		},
		DeleteOneFunc: func(ctx context.Context, id string) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.failWith != nil {
				return f.failWith
			}
			if _, ok := f.items[id]; !ok {
				return api.ErrNotFound
			}
			delete(f.items, id)
			for i, v := range f.order {
				if v == id {
					f.order = append(f.order[:i], f.order[i+1:]...)
					break
				}
			}
			return nil
		},
	}
}

func mario() models.Character {
	return models.Character{
		Name:               "Mario",
		WeightClass:        models.WeightClassMedium,
		MovementSpeed:      60,
		OriginalGameSeries: "Mario",
		TierRanking:        models.TierA,
	}
}

func named(name string) models.Character {
	c := mario()
	c.Name = name
	return c
}

func receive(t *testing.T, ch <-chan Snapshot) Snapshot {
	t.Helper()
	select {
	case s, ok := <-ch:
		require.True(t, ok, "subscription channel closed")
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
		return nil
	}
}

func TestNew_EmptySnapshotWithoutNetwork(t *testing.T) {
	remote := newFakeServer().remote()

	c := New(remote, nil, setupTestLogger())

	assert.NotNil(t, c.Current())
	assert.Empty(t, c.Current())
	assert.Empty(t, remote.FetchAllCalls())
}

// TestCache_Scenario create Mario, переименовать в Luigi, удалить
func TestCache_Scenario(t *testing.T) {
	ctx := context.Background()
	c := New(newFakeServer().remote(), nil, setupTestLogger())

	created, err := c.Create(ctx, mario())
	require.NoError(t, err)
	assert.Equal(t, "1", created.ID)

	snap := c.Current()
	require.Len(t, snap, 1)
	assert.Equal(t, "1", snap[0].ID)
	assert.Equal(t, "Mario", snap[0].Name)

	luigi := *created
	luigi.Name = "Luigi"
	_, err = c.Update(ctx, "1", luigi)
	require.NoError(t, err)

	snap = c.Current()
	require.Len(t, snap, 1)
	assert.Equal(t, "1", snap[0].ID)
	assert.Equal(t, "Luigi", snap[0].Name)

	require.NoError(t, c.Delete(ctx, "1"))
	assert.Empty(t, c.Current())
}

func TestCache_Refresh(t *testing.T) {
	ctx := context.Background()
	server := newFakeServer()
	remote := server.remote()
	c := New(remote, nil, setupTestLogger())

	// Наполняем сервер в обход кэша
	for _, name := range []string{"Fox", "Falco", "Marth"} {
		_, err := remote.CreateOne(ctx, named(name))
		require.NoError(t, err)
	}
	assert.Empty(t, c.Current())

	require.NoError(t, c.Refresh(ctx))
	assert.Equal(t, []string{"1", "2", "3"}, c.Current().IDs())

	// Полная замена, а не слияние
	require.NoError(t, remote.DeleteOne(ctx, "2"))
	require.NoError(t, c.Refresh(ctx))
	assert.Equal(t, []string{"1", "3"}, c.Current().IDs())
}

func TestCache_FailuresLeaveSnapshotUntouched(t *testing.T) {
	ctx := context.Background()
	server := newFakeServer()
	journal := &JournalMock{
		AppendFunc: func(ctx context.Context, entry *models.JournalEntry) error { return nil },
	}
	c := New(server.remote(), journal, setupTestLogger())

	_, err := c.Create(ctx, named("Fox"))
	require.NoError(t, err)
	_, err = c.Create(ctx, named("Falco"))
	require.NoError(t, err)
	before := c.Current()
	journaled := len(journal.AppendCalls())

	sub, cancel := context.WithCancel(ctx)
	defer cancel()
	updates := c.Observe(sub)
	assert.Equal(t, before, receive(t, updates))

	cause := &api.RequestFailedError{Op: "test", StatusCode: 500, Cause: errors.New("boom")}
	server.fail(cause)

	tests := []struct {
		op   func() error
		name string
	}{
		{name: "refresh", op: func() error { return c.Refresh(ctx) }},
		{name: "create", op: func() error { _, err := c.Create(ctx, named("Sheik")); return err }},
		{name: "update", op: func() error { _, err := c.Update(ctx, "1", named("Peach")); return err }},
		{name: "delete", op: func() error { return c.Delete(ctx, "1") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op()

			require.Error(t, err)
			assert.ErrorIs(t, err, api.ErrRequestFailed)
			assert.Equal(t, before, c.Current())
		})
	}

	// Ни публикаций, ни записей в журнал
	select {
	case s := <-updates:
		t.Fatalf("unexpected publish after failure: %v", s.IDs())
	case <-time.After(50 * time.Millisecond):
	}
	assert.Len(t, journal.AppendCalls(), journaled)
}

func TestCache_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("present id keeps length and position", func(t *testing.T) {
		c := New(newFakeServer().remote(), nil, setupTestLogger())
		for _, name := range []string{"Fox", "Falco", "Marth"} {
			_, err := c.Create(ctx, named(name))
			require.NoError(t, err)
		}

		_, err := c.Update(ctx, "2", named("Sheik"))
		require.NoError(t, err)

		snap := c.Current()
		require.Len(t, snap, 3)
		assert.Equal(t, []string{"1", "2", "3"}, snap.IDs())
		assert.Equal(t, "Sheik", snap[1].Name)
	})

	t.Run("absent id appends", func(t *testing.T) {
		returned := named("Ganondorf")
		returned.ID = "99"
		remote := &RemoteClientMock{
			UpdateOneFunc: func(ctx context.Context, id string, ch models.Character) (*models.Character, error) {
				return &returned, nil
			},
		}
		c := New(remote, nil, setupTestLogger())
		c.snapshot = Snapshot{{ID: "1", Name: "Fox"}}

		_, err := c.Update(ctx, "99", named("Ganondorf"))
		require.NoError(t, err)

		snap := c.Current()
		require.Len(t, snap, 2)
		assert.Equal(t, []string{"1", "99"}, snap.IDs())
	})

	t.Run("first duplicate is replaced", func(t *testing.T) {
		returned := models.Character{ID: "7", Name: "new"}
		remote := &RemoteClientMock{
			UpdateOneFunc: func(ctx context.Context, id string, ch models.Character) (*models.Character, error) {
				return &returned, nil
			},
		}
		c := New(remote, nil, setupTestLogger())
		c.snapshot = Snapshot{{ID: "7", Name: "a"}, {ID: "8", Name: "b"}, {ID: "7", Name: "c"}}

		_, err := c.Update(ctx, "7", returned)
		require.NoError(t, err)

		snap := c.Current()
		require.Len(t, snap, 3)
		assert.Equal(t, "new", snap[0].Name)
		assert.Equal(t, "c", snap[2].Name)
	})

	t.Run("matches on requested id", func(t *testing.T) {
		// Сервер вернул запись с другим id: заменяется запись по id запроса
		returned := models.Character{ID: "other", Name: "renamed"}
		remote := &RemoteClientMock{
			UpdateOneFunc: func(ctx context.Context, id string, ch models.Character) (*models.Character, error) {
				return &returned, nil
			},
		}
		c := New(remote, nil, setupTestLogger())
		c.snapshot = Snapshot{{ID: "1", Name: "a"}}

		_, err := c.Update(ctx, "1", returned)
		require.NoError(t, err)

		assert.Equal(t, []string{"other"}, c.Current().IDs())
	})
}

func TestCache_Delete_AbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	remote := &RemoteClientMock{
		DeleteOneFunc: func(ctx context.Context, id string) error { return nil },
	}
	c := New(remote, nil, setupTestLogger())
	c.snapshot = Snapshot{{ID: "1", Name: "Fox"}, {ID: "2", Name: "Falco"}}

	updates := c.Observe(ctx)
	receive(t, updates)

	require.NoError(t, c.Delete(ctx, "42"))

	assert.Equal(t, []string{"1", "2"}, c.Current().IDs())
	// Снимок все равно публикуется
	assert.Equal(t, []string{"1", "2"}, receive(t, updates).IDs())
}

func TestCache_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	c := New(newFakeServer().remote(), nil, setupTestLogger())
	c.snapshot = Snapshot{{ID: "1", Name: "Fox"}}

	err := c.Delete(ctx, "1")

	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrNotFound)
	assert.Equal(t, []string{"1"}, c.Current().IDs())
}

func TestCache_Get(t *testing.T) {
	ctx := context.Background()
	server := newFakeServer()
	remote := server.remote()
	_, err := remote.CreateOne(ctx, named("Pikachu"))
	require.NoError(t, err)

	c := New(remote, nil, setupTestLogger())

	got, err := c.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Pikachu", got.Name)
	assert.Empty(t, c.Current(), "Get must not touch the snapshot")

	_, err = c.Get(ctx, "2")
	assert.ErrorIs(t, err, api.ErrNotFound)
}

func TestCache_CurrentReturnsCopy(t *testing.T) {
	c := New(newFakeServer().remote(), nil, setupTestLogger())
	c.snapshot = Snapshot{{ID: "1", Name: "Fox", NotablePlayers: []string{"Mango"}}}

	snap := c.Current()
	snap[0].Name = "changed"
	snap[0].NotablePlayers[0] = "changed"

	again := c.Current()
	assert.Equal(t, "Fox", again[0].Name)
	assert.Equal(t, "Mango", again[0].NotablePlayers[0])
}

func TestObserve_ReplaysLatest(t *testing.T) {
	ctx := context.Background()
	c := New(newFakeServer().remote(), nil, setupTestLogger())

	const n = 5
	for i := 0; i < n; i++ {
		_, err := c.Create(ctx, named(fmt.Sprintf("c%d", i)))
		require.NoError(t, err)
	}
	_, err := c.Update(ctx, "3", named("renamed"))
	require.NoError(t, err)
	require.NoError(t, c.Delete(ctx, "1"))

	sub, cancel := context.WithCancel(ctx)
	defer cancel()

	first := receive(t, c.Observe(sub))

	assert.Equal(t, []string{"2", "3", "4", "5"}, first.IDs())
	assert.Equal(t, "renamed", first[1].Name)
}

func TestObserve_FanOutInPublishOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := New(newFakeServer().remote(), nil, setupTestLogger())

	subs := []<-chan Snapshot{c.Observe(ctx), c.Observe(ctx), c.Observe(ctx)}
	assert.Equal(t, 3, c.Subscribers())

	for i := 0; i < 3; i++ {
		_, err := c.Create(ctx, named(fmt.Sprintf("c%d", i)))
		require.NoError(t, err)
	}

	for _, ch := range subs {
		assert.Empty(t, receive(t, ch))
		assert.Equal(t, []string{"1"}, receive(t, ch).IDs())
		assert.Equal(t, []string{"1", "2"}, receive(t, ch).IDs())
		assert.Equal(t, []string{"1", "2", "3"}, receive(t, ch).IDs())
	}
}

func TestObserve_SlowSubscriberDoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := New(newFakeServer().remote(), nil, setupTestLogger())
	slow := c.Observe(ctx)

	// Никто не читает slow, а мутации все равно завершаются
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_, err := c.Create(ctx, named(fmt.Sprintf("c%d", i)))
			assert.NoError(t, err)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publishing blocked on a slow subscriber")
	}

	// Подписчик получает все 101 снимок по порядку
	for i := 0; i <= 100; i++ {
		assert.Len(t, receive(t, slow), i)
	}
}

func TestObserve_ClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := New(newFakeServer().remote(), nil, setupTestLogger())

	updates := c.Observe(ctx)
	receive(t, updates)
	cancel()

	select {
	case _, ok := <-updates:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}

	assert.Equal(t, 0, c.Subscribers())

	// Публикация после отписки не паникует
	_, err := c.Create(context.Background(), mario())
	require.NoError(t, err)
}

func TestObserve_SubscriberGetsCopies(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := New(newFakeServer().remote(), nil, setupTestLogger())
	_, err := c.Create(ctx, mario())
	require.NoError(t, err)

	snap := receive(t, c.Observe(ctx))
	snap[0].Name = "changed"

	assert.Equal(t, "Mario", c.Current()[0].Name)
}

func TestCache_ConcurrentMutations(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := New(newFakeServer().remote(), nil, setupTestLogger())
	updates := c.Observe(ctx)
	receive(t, updates)

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := c.Create(ctx, named(fmt.Sprintf("c%d", i)))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, c.Current(), workers)

	// Каждая публикация ровно на одну запись длиннее предыдущей
	for i := 1; i <= workers; i++ {
		assert.Len(t, receive(t, updates), i)
	}
}

func TestCache_Journal(t *testing.T) {
	ctx := context.Background()
	var entries []*models.JournalEntry
	journal := &JournalMock{
		AppendFunc: func(ctx context.Context, entry *models.JournalEntry) error {
			entries = append(entries, entry)
			return nil
		},
	}
	c := New(newFakeServer().remote(), journal, setupTestLogger())
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c.now = func() time.Time { return fixed }

	_, err := c.Create(ctx, mario())
	require.NoError(t, err)
	_, err = c.Update(ctx, "1", named("Luigi"))
	require.NoError(t, err)
	require.NoError(t, c.Delete(ctx, "1"))
	require.NoError(t, c.Refresh(ctx))

	require.Len(t, entries, 3)
	assert.Equal(t, models.MutationCreate, entries[0].Op)
	assert.Equal(t, "Mario", entries[0].Name)
	assert.Equal(t, models.MutationUpdate, entries[1].Op)
	assert.Equal(t, "Luigi", entries[1].Name)
	assert.Equal(t, models.MutationDelete, entries[2].Op)
	assert.Empty(t, entries[2].Name)
	for _, e := range entries {
		assert.Equal(t, "1", e.CharacterID)
		assert.Equal(t, fixed, e.RecordedAt)
	}
}

func TestCache_JournalErrorDoesNotFailMutation(t *testing.T) {
	journal := &JournalMock{
		AppendFunc: func(ctx context.Context, entry *models.JournalEntry) error {
			return errors.New("disk full")
		},
	}
	c := New(newFakeServer().remote(), journal, setupTestLogger())

	_, err := c.Create(context.Background(), mario())

	require.NoError(t, err)
	assert.Len(t, c.Current(), 1)
	assert.Len(t, journal.AppendCalls(), 1)
}

// TestCache_MatchesReferenceModel случайные последовательности успешных
// create/update/delete дают тот же набор id, что и простая модель
func TestCache_MatchesReferenceModel(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			ctx := context.Background()
			rnd := rand.New(rand.NewSource(seed))
			c := New(newFakeServer().remote(), nil, setupTestLogger())

			model := map[string]string{}
			var live []string

			for step := 0; step < 200; step++ {
				switch op := rnd.Intn(3); {
				case op == 0 || len(live) == 0:
					name := fmt.Sprintf("n%d", step)
					created, err := c.Create(ctx, named(name))
					require.NoError(t, err)
					model[created.ID] = name
					live = append(live, created.ID)
				case op == 1:
					id := live[rnd.Intn(len(live))]
					name := fmt.Sprintf("u%d", step)
					_, err := c.Update(ctx, id, named(name))
					require.NoError(t, err)
					model[id] = name
				default:
					i := rnd.Intn(len(live))
					id := live[i]
					require.NoError(t, c.Delete(ctx, id))
					delete(model, id)
					live = append(live[:i], live[i+1:]...)
				}
			}

			snap := c.Current()
			got := map[string]string{}
			for _, ch := range snap {
				got[ch.ID] = ch.Name
			}
			assert.Equal(t, model, got)
			assert.Len(t, snap, len(model), "no duplicate ids")

			// Порядок: по времени создания
			ids := snap.IDs()
			assert.True(t, sort.SliceIsSorted(ids, func(i, j int) bool {
				a, _ := strconv.Atoi(ids[i])
				b, _ := strconv.Atoi(ids[j])
				return a < b
			}))
		})
	}
}
