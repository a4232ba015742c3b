// Package worker фоновые процессы бота: упорядочивание обновлений по сессиям.
package worker

import (
	"context"
	"fmt"
	"sync"

	"tg_dealscan/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type ticket struct {
	session int64
	prev    <-chan struct{}
	done    chan struct{}
}

// Sequencer выдаёт билеты в порядке поступления событий. Обработчик события ждёт,
// пока завершится предыдущее событие той же сессии. Разные сессии друг друга не ждут.
type Sequencer struct {
	mu       sync.Mutex
	tickets  map[int]*ticket
	sessions map[int64]chan struct{}
}

func NewSequencer() *Sequencer {
	return &Sequencer{
		tickets:  make(map[int]*ticket),
		sessions: make(map[int64]chan struct{}),
	}
}

// Stamp ставит событие key в очередь сессии. Вызывается строго в порядке поступления.
func (s *Sequencer) Stamp(key int, session int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &ticket{
		session: session,
		prev:    s.sessions[session],
		done:    make(chan struct{}),
	}

	s.tickets[key] = t
	s.sessions[session] = t.done
}

// Acquire ждёт очереди события key. release обязательно вызвать после обработки.
// Для события без билета ожидания нет.
func (s *Sequencer) Acquire(ctx context.Context, key int) (release func(), err error) {
	s.mu.Lock()
	t, ok := s.tickets[key]
	s.mu.Unlock()

	if !ok {
		return func() {}, nil
	}

	release = func() { s.release(key, t) }

	if t.prev == nil {
		return release, nil
	}

	select {
	case <-t.prev:
		return release, nil
	case <-ctx.Done():
		// Очередь не должна встать из-за отменённого события.
		go func() {
			<-t.prev
			release()
		}()

		return nil, fmt.Errorf("wait for session %d: %w", t.session, ctx.Err())
	}
}

// Pending число событий, ещё не отпустивших очередь.
func (s *Sequencer) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tickets)
}

func (s *Sequencer) release(key int, t *ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tickets[key]; !ok {
		return
	}

	delete(s.tickets, key)
	close(t.done)

	if s.sessions[t.session] == t.done {
		delete(s.sessions, t.session)
	}
}
