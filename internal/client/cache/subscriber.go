package cache

import (
	"context"
	"sync"
)

// subscriber доставляет снимки одному подписчику.
// Очередь не ограничена, поэтому push никогда не блокирует публикацию.
type subscriber struct {
	out   chan Snapshot
	wake  chan struct{}
	queue []Snapshot
	mu    sync.Mutex
}

func newSubscriber() *subscriber {
	return &subscriber{
		out:  make(chan Snapshot),
		wake: make(chan struct{}, 1),
	}
}

func (s *subscriber) push(snap Snapshot) {
	s.mu.Lock()
	s.queue = append(s.queue, snap)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *subscriber) pop() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return nil, false
	}
	next := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	return next, true
}

// run перекладывает очередь в out до отмены ctx.
// detach вызывается до закрытия out, чтобы после закрытия не было новых push.
func (s *subscriber) run(ctx context.Context, detach func()) {
	defer close(s.out)
	defer detach()

	for {
		next, ok := s.pop()
		if !ok {
			select {
			case <-ctx.Done():
				return
			case <-s.wake:
				continue
			}
		}

		select {
		case s.out <- next:
		case <-ctx.Done():
			return
		}
	}
}
