package usecase

import (
	"context"

	"ancare/internal/modules/podcast/domain"
	podcastdto "ancare/internal/modules/podcast/dto"
	podcastin "ancare/internal/modules/podcast/port/in"
	"ancare/internal/modules/podcast/service"
)

type Interactor struct {
	svc *service.PodcastService
}

func NewInteractor(svc *service.PodcastService) podcastin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]podcastdto.EpisodeOutput, error) {
	episodes, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	return toOutput(episodes), nil
}

func (i *Interactor) Seed(ctx context.Context) ([]podcastdto.EpisodeOutput, error) {
	episodes, err := i.svc.Seed(ctx)
	if err != nil {
		return nil, err
	}
	return toOutput(episodes), nil
}

func toOutput(episodes []domain.Episode) []podcastdto.EpisodeOutput {
	out := make([]podcastdto.EpisodeOutput, 0, len(episodes))
	for _, e := range episodes {
		out = append(out, podcastdto.EpisodeOutput{
			ID:        e.ID,
			Number:    e.Number,
			Title:     e.Title,
			Summary:   e.Summary,
			Duration:  e.Duration,
			Published: e.Published,
		})
	}
	return out
}
