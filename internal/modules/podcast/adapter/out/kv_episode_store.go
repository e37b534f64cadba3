package out

import (
	"context"
	"fmt"

	"ancare/internal/modules/podcast/domain"
	podcastout "ancare/internal/modules/podcast/port/out"
	"ancare/internal/platform/jsonx"
	"ancare/internal/platform/kv"
)

const PodcastKey = "ancare_podcast_v1"

type storedEpisode struct {
	ID        string      `json:"id"`
	Number    jsonx.Loose `json:"number"`
	Title     string      `json:"title"`
	Summary   string      `json:"summary"`
	Duration  string      `json:"duration"`
	Published string      `json:"published"`
}

type KVEpisodeStore struct {
	kv *kv.Store
}

func NewKVEpisodeStore(store *kv.Store) podcastout.EpisodeStore {
	return &KVEpisodeStore{kv: store}
}

// List accepts both a bare array and an object wrapping it under "episodes".
func (s *KVEpisodeStore) List(ctx context.Context) ([]domain.Episode, error) {
	raw, _ := s.kv.Get(ctx, PodcastKey)
	stored, ok := jsonx.Parse[[]storedEpisode](raw)
	if !ok {
		wrapped := jsonx.Decode(raw, struct {
			Episodes []storedEpisode `json:"episodes"`
		}{})
		stored = wrapped.Episodes
	}
	episodes := make([]domain.Episode, 0, len(stored))
	for _, e := range stored {
		episodes = append(episodes, domain.Episode{
			ID:        e.ID,
			Number:    e.Number.Int(),
			Title:     e.Title,
			Summary:   e.Summary,
			Duration:  e.Duration,
			Published: e.Published,
		})
	}
	return episodes, nil
}

func (s *KVEpisodeStore) Replace(ctx context.Context, episodes []domain.Episode) error {
	if episodes == nil {
		episodes = []domain.Episode{}
	}
	payload, err := jsonx.Encode(episodes)
	if err != nil {
		return fmt.Errorf("encode episodes: %w", err)
	}
	s.kv.Set(ctx, PodcastKey, payload)
	return nil
}
