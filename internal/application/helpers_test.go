package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"boketto-bot/internal/domain/entity"
	"boketto-bot/internal/infrastructure/catalog"
	"boketto-bot/internal/infrastructure/otp"
	"boketto-bot/internal/infrastructure/storage"
)

// manualScheduler запоминает отложенные действия; тест запускает их через fire.
type manualScheduler struct {
	mu      sync.Mutex
	pending map[string]func()
	delays  map[string]time.Duration
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{pending: make(map[string]func()), delays: make(map[string]time.Duration)}
}

func (s *manualScheduler) Schedule(key string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[key] = fn
	s.delays[key] = delay
}

func (s *manualScheduler) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, key)
	delete(s.delays, key)
}

func (s *manualScheduler) delay(key string) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.delays[key]
	return d, ok
}

func (s *manualScheduler) fire(key string) bool {
	s.mu.Lock()
	fn, ok := s.pending[key]
	delete(s.pending, key)
	delete(s.delays, key)
	s.mu.Unlock()
	if ok {
		fn()
	}
	return ok
}

type stubRecommender struct {
	suggestions []entity.Suggestion
	err         error
	gotKcal     int
}

func (r *stubRecommender) Suggest(ctx context.Context, goalKcal int) ([]entity.Suggestion, error) {
	r.gotKcal = goalKcal
	return r.suggestions, r.err
}

type stubReceipt struct {
	err error
}

func (r stubReceipt) Encode(order *entity.Order) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	return []byte("png:" + order.ID), nil
}

var errBoom = errors.New("boom")

type testEnv struct {
	sessions *SessionService
	catalog  *CatalogService
	cart     *CartService
	goals    *GoalService
	wizard   *WizardService
	sched    *manualScheduler
	orders   *storage.MemoryOrderRepository
}

func newTestEnv() *testEnv {
	log := zap.NewNop()
	sessions := NewSessionService(storage.NewMemorySessionRepository())
	cat := NewCatalogService(sessions, catalog.Dishes())
	sched := newManualScheduler()
	return &testEnv{
		sessions: sessions,
		catalog:  cat,
		cart:     NewCartService(sessions, cat, log),
		goals:    NewGoalService(sessions),
		wizard:   NewWizardService(sessions, otp.NewMockVerifier("1234", "0000"), sched, log),
		sched:    sched,
		orders:   storage.NewMemoryOrderRepository(),
	}
}

func dishIDs(dishes []entity.Dish) []string {
	out := make([]string, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, d.ID)
	}
	return out
}
