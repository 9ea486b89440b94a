// Package scheduler реализует отложенные переходы мастера и hover-intent таймер меню сортировки.
package scheduler

import (
	"sync"
	"time"

	"boketto-bot/internal/domain/port"
)

type entry struct {
	timer *time.Timer
	id    uint64
}

// TimerScheduler хранит по одному таймеру на ключ.
type TimerScheduler struct {
	mu      sync.Mutex
	entries map[string]entry
	nextID  uint64
}

func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{entries: make(map[string]entry)}
}

// Schedule ставит fn на выполнение через delay, отменяя прежний таймер с тем же ключом.
func (s *TimerScheduler) Schedule(key string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.entries[key]; ok {
		prev.timer.Stop()
	}

	s.nextID++
	id := s.nextID
	s.entries[key] = entry{
		id: id,
		timer: time.AfterFunc(delay, func() {
			// Таймер мог быть заменён или отменён, пока ждал блокировку.
			s.mu.Lock()
			cur, ok := s.entries[key]
			if !ok || cur.id != id {
				s.mu.Unlock()
				return
			}
			delete(s.entries, key)
			s.mu.Unlock()

			fn()
		}),
	}
}

// Cancel отменяет таймер. Действие, ещё не начавшееся к моменту вызова, не выполнится.
func (s *TimerScheduler) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		e.timer.Stop()
		delete(s.entries, key)
	}
}

// Pending сообщает, ждёт ли ключ срабатывания.
func (s *TimerScheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[key]
	return ok
}

// Stop отменяет все таймеры (при остановке бота).
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.entries {
		e.timer.Stop()
		delete(s.entries, key)
	}
}

var _ port.Scheduler = (*TimerScheduler)(nil)
