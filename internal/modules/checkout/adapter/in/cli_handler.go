package in

import (
	"context"

	checkoutdto "ancare/internal/modules/checkout/dto"
	checkoutin "ancare/internal/modules/checkout/port/in"
)

type CLIHandler struct {
	usecase checkoutin.Usecase
}

func NewCLIHandler(usecase checkoutin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (checkoutdto.SummaryOutput, error) {
	return h.usecase.Summary(ctx)
}

func (h CLIHandler) SetShipping(ctx context.Context, code string) (checkoutdto.PreferencesOutput, error) {
	return h.usecase.SetShipping(ctx, code)
}

func (h CLIHandler) SetPayment(ctx context.Context, code string) (checkoutdto.PreferencesOutput, error) {
	return h.usecase.SetPayment(ctx, code)
}
