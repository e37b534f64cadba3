package in

import (
	"context"

	"ancare/internal/modules/checkout/dto"
)

type Usecase interface {
	Load(ctx context.Context) (dto.PreferencesOutput, error)
	SetShipping(ctx context.Context, code string) (dto.PreferencesOutput, error)
	SetPayment(ctx context.Context, code string) (dto.PreferencesOutput, error)
	Surcharge(code string) float64
	Summary(ctx context.Context) (dto.SummaryOutput, error)
}
