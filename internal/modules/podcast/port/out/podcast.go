package out

import (
	"context"

	"ancare/internal/modules/podcast/domain"
)

type EpisodeStore interface {
	List(ctx context.Context) ([]domain.Episode, error)
	Replace(ctx context.Context, episodes []domain.Episode) error
}
