package usecase

import (
	"context"
	"fmt"

	cartin "ancare/internal/modules/cart/port/in"
	"ancare/internal/modules/checkout/domain"
	checkoutdto "ancare/internal/modules/checkout/dto"
	checkoutin "ancare/internal/modules/checkout/port/in"
	"ancare/internal/modules/checkout/service"
)

type Interactor struct {
	svc  *service.CheckoutService
	cart cartin.Usecase
}

func NewInteractor(svc *service.CheckoutService, cart cartin.Usecase) checkoutin.Usecase {
	return &Interactor{svc: svc, cart: cart}
}

func (i *Interactor) Load(ctx context.Context) (checkoutdto.PreferencesOutput, error) {
	prefs, err := i.svc.Load(ctx)
	if err != nil {
		return checkoutdto.PreferencesOutput{}, err
	}
	return toOutput(prefs), nil
}

func (i *Interactor) SetShipping(ctx context.Context, code string) (checkoutdto.PreferencesOutput, error) {
	prefs, err := i.svc.SetShipping(ctx, code)
	if err != nil {
		return checkoutdto.PreferencesOutput{}, err
	}
	return toOutput(prefs), nil
}

func (i *Interactor) SetPayment(ctx context.Context, code string) (checkoutdto.PreferencesOutput, error) {
	prefs, err := i.svc.SetPayment(ctx, code)
	if err != nil {
		return checkoutdto.PreferencesOutput{}, err
	}
	return toOutput(prefs), nil
}

func (i *Interactor) Surcharge(code string) float64 {
	return domain.Surcharge(code)
}

func (i *Interactor) Summary(ctx context.Context) (checkoutdto.SummaryOutput, error) {
	if i.cart == nil {
		return checkoutdto.SummaryOutput{}, fmt.Errorf("cart usecase is not configured")
	}
	prefs, err := i.svc.Load(ctx)
	if err != nil {
		return checkoutdto.SummaryOutput{}, err
	}
	cart, err := i.cart.Load(ctx)
	if err != nil {
		return checkoutdto.SummaryOutput{}, err
	}
	surcharge := domain.Surcharge(prefs.Shipping)
	return checkoutdto.SummaryOutput{
		Shipping:  prefs.Shipping,
		Payment:   prefs.Payment,
		ItemCount: cart.Count,
		Subtotal:  cart.Total,
		Surcharge: surcharge,
		Total:     cart.Total + surcharge,
	}, nil
}

func toOutput(prefs domain.Preferences) checkoutdto.PreferencesOutput {
	return checkoutdto.PreferencesOutput{Shipping: prefs.Shipping, Payment: prefs.Payment}
}
