package in

import (
	"context"

	podcastdto "ancare/internal/modules/podcast/dto"
	podcastin "ancare/internal/modules/podcast/port/in"
)

type CLIHandler struct {
	usecase podcastin.Usecase
}

func NewCLIHandler(usecase podcastin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]podcastdto.EpisodeOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Seed(ctx context.Context) ([]podcastdto.EpisodeOutput, error) {
	return h.usecase.Seed(ctx)
}
