package in

import (
	"context"

	"ancare/internal/modules/podcast/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.EpisodeOutput, error)
	Seed(ctx context.Context) ([]dto.EpisodeOutput, error)
}
