package usecase

import (
	"context"

	"ancare/internal/modules/interest/domain"
	interestdto "ancare/internal/modules/interest/dto"
	interestin "ancare/internal/modules/interest/port/in"
	"ancare/internal/modules/interest/service"
)

type Interactor struct {
	svc *service.InterestService
}

func NewInteractor(svc *service.InterestService) interestin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Record(ctx context.Context, input interestdto.RecordInput) (interestdto.LogOutput, error) {
	log, err := i.svc.Record(ctx, input.Variant, input.Name, input.Source, input.Note)
	if err != nil {
		return interestdto.LogOutput{}, err
	}
	return toLogOutput(log, true), nil
}

func (i *Interactor) Reset(ctx context.Context) error {
	return i.svc.Reset(ctx)
}

func (i *Interactor) Load(ctx context.Context) (interestdto.LogOutput, error) {
	log, found, err := i.svc.Load(ctx)
	if err != nil {
		return interestdto.LogOutput{}, err
	}
	return toLogOutput(log, found), nil
}

func (i *Interactor) ExportDelimited(ctx context.Context) (string, error) {
	log, _, err := i.svc.Load(ctx)
	if err != nil {
		return "", err
	}
	return domain.ExportDelimited(log), nil
}

func (i *Interactor) Ranking(ctx context.Context) ([]interestdto.RankingEntry, error) {
	log, _, err := i.svc.Load(ctx)
	if err != nil {
		return nil, err
	}
	ranking := log.Ranking()
	out := make([]interestdto.RankingEntry, 0, len(ranking))
	for _, r := range ranking {
		out = append(out, interestdto.RankingEntry{Variant: r.Variant, Count: r.Count})
	}
	return out, nil
}

func (i *Interactor) Verify(ctx context.Context) (interestdto.VerifyOutput, error) {
	log, _, err := i.svc.Load(ctx)
	if err != nil {
		return interestdto.VerifyOutput{}, err
	}
	drift := log.Drift()
	return interestdto.VerifyOutput{
		Consistent: len(drift) == 0,
		Drift:      drift,
		Totals:     copyTotals(log.Totals),
		Recount:    log.Recount(),
	}, nil
}

func toLogOutput(log domain.Log, found bool) interestdto.LogOutput {
	out := interestdto.LogOutput{
		State:  interestdto.StateAbsent,
		Events: make([]interestdto.EventOutput, 0, len(log.Events)),
		Totals: copyTotals(log.Totals),
	}
	if found {
		out.State = interestdto.StatePopulated
	}
	for _, e := range log.Events {
		out.Events = append(out.Events, interestdto.EventOutput{
			Timestamp: e.Timestamp,
			Variant:   e.Variant,
			Name:      e.Name,
			Source:    e.Source,
			Note:      e.Note,
		})
	}
	return out
}

func copyTotals(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
