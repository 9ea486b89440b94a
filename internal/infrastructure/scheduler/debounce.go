package scheduler

import (
	"sync"
	"time"

	"boketto-bot/internal/domain/port"
)

// Debouncer: hover-intent: меню открывается сразу, закрывается после delay без повторного входа.
// Каждый Enter отменяет ожидающее закрытие.
type Debouncer struct {
	sched port.Scheduler
	delay time.Duration

	mu   sync.Mutex
	open map[string]bool
}

func NewDebouncer(sched port.Scheduler, delay time.Duration) *Debouncer {
	return &Debouncer{sched: sched, delay: delay, open: make(map[string]bool)}
}

func debounceKey(key string) string {
	return "debounce:" + key
}

// Enter отменяет закрытие и вызывает onOpen, если меню ещё не открыто.
func (d *Debouncer) Enter(key string, onOpen func()) {
	d.sched.Cancel(debounceKey(key))

	d.mu.Lock()
	wasOpen := d.open[key]
	d.open[key] = true
	d.mu.Unlock()

	if !wasOpen && onOpen != nil {
		onOpen()
	}
}

// Leave планирует закрытие через delay.
func (d *Debouncer) Leave(key string, onClose func()) {
	d.sched.Schedule(debounceKey(key), d.delay, func() {
		d.mu.Lock()
		delete(d.open, key)
		d.mu.Unlock()

		if onClose != nil {
			onClose()
		}
	})
}

// Close закрывает меню немедленно, без onClose.
func (d *Debouncer) Close(key string) {
	d.sched.Cancel(debounceKey(key))

	d.mu.Lock()
	delete(d.open, key)
	d.mu.Unlock()
}

// IsOpen сообщает, открыто ли меню.
func (d *Debouncer) IsOpen(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open[key]
}

var _ port.Debouncer = (*Debouncer)(nil)
