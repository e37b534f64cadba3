package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"ancare/internal/modules/podcast/domain"
	podcastout "ancare/internal/modules/podcast/port/out"
)

type PodcastService struct {
	mu     sync.Mutex
	store  podcastout.EpisodeStore
	logger *zap.Logger
}

func NewPodcastService(store podcastout.EpisodeStore, logger *zap.Logger) *PodcastService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PodcastService{store: store, logger: logger}
}

func (s *PodcastService) List(ctx context.Context) ([]domain.Episode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.List(ctx)
}

// Seed overwrites the stored list with the fixtures.
func (s *PodcastService) Seed(ctx context.Context) ([]domain.Episode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	episodes := domain.Fixtures()
	if err := s.store.Replace(ctx, episodes); err != nil {
		return nil, err
	}
	s.logger.Debug("podcast episodes seeded", zap.Int("count", len(episodes)))
	return episodes, nil
}
