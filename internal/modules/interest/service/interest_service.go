package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"ancare/internal/modules/interest/domain"
	interestout "ancare/internal/modules/interest/port/out"
	"ancare/internal/platform/clock"
)

type InterestService struct {
	mu     sync.Mutex
	clock  clock.Clock
	store  interestout.LogStore
	logger *zap.Logger
}

func NewInterestService(clock clock.Clock, store interestout.LogStore, logger *zap.Logger) *InterestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InterestService{clock: clock, store: store, logger: logger}
}

func (s *InterestService) Record(ctx context.Context, variant, name, source, note string) (domain.Log, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log, _, err := s.store.Load(ctx)
	if err != nil {
		return domain.Log{}, err
	}
	event := domain.NewEvent(clock.ISO(s.clock.Now()), variant, name, source, note)
	log.Record(event)
	if err := s.store.Save(ctx, log); err != nil {
		return domain.Log{}, err
	}
	s.logger.Debug("interest recorded", zap.String("variant", event.Variant), zap.Int("total", log.Totals[event.Variant]))
	return log, nil
}

func (s *InterestService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Clear(ctx)
}

func (s *InterestService) Load(ctx context.Context) (domain.Log, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Load(ctx)
}
