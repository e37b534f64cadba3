package in

import (
	"context"

	"ancare/internal/modules/interest/dto"
)

type Usecase interface {
	Record(ctx context.Context, input dto.RecordInput) (dto.LogOutput, error)
	Reset(ctx context.Context) error
	Load(ctx context.Context) (dto.LogOutput, error)
	ExportDelimited(ctx context.Context) (string, error)
	Ranking(ctx context.Context) ([]dto.RankingEntry, error)
	Verify(ctx context.Context) (dto.VerifyOutput, error)
}
