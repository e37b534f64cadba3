package in

import (
	"context"

	interestdto "ancare/internal/modules/interest/dto"
	interestin "ancare/internal/modules/interest/port/in"
)

type CLIHandler struct {
	usecase interestin.Usecase
}

func NewCLIHandler(usecase interestin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Record(ctx context.Context, variant, name, source, note string) (interestdto.LogOutput, error) {
	return h.usecase.Record(ctx, interestdto.RecordInput{Variant: variant, Name: name, Source: source, Note: note})
}

func (h CLIHandler) Show(ctx context.Context) (interestdto.LogOutput, error) {
	return h.usecase.Load(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}

func (h CLIHandler) Export(ctx context.Context) (string, error) {
	return h.usecase.ExportDelimited(ctx)
}

func (h CLIHandler) Ranking(ctx context.Context) ([]interestdto.RankingEntry, error) {
	return h.usecase.Ranking(ctx)
}

func (h CLIHandler) Verify(ctx context.Context) (interestdto.VerifyOutput, error) {
	return h.usecase.Verify(ctx)
}
