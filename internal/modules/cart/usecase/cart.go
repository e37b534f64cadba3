package usecase

import (
	"context"

	"ancare/internal/modules/cart/domain"
	cartdto "ancare/internal/modules/cart/dto"
	cartin "ancare/internal/modules/cart/port/in"
	"ancare/internal/modules/cart/service"
)

type Interactor struct {
	svc *service.CartService
}

func NewInteractor(svc *service.CartService) cartin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) AddItem(ctx context.Context, input cartdto.AddItemInput) (cartdto.LineItemOutput, error) {
	item, err := domain.ParseItemInput(input.Payload)
	if err != nil {
		return cartdto.LineItemOutput{}, err
	}
	resolved, _, err := i.svc.AddItem(ctx, item)
	if err != nil {
		return cartdto.LineItemOutput{}, err
	}
	return toLineOutput(resolved), nil
}

func (i *Interactor) RemoveAt(ctx context.Context, index int) (cartdto.CartOutput, error) {
	cart, err := i.svc.RemoveAt(ctx, index)
	if err != nil {
		return cartdto.CartOutput{}, err
	}
	return toCartOutput(cart), nil
}

func (i *Interactor) Clear(ctx context.Context) error {
	return i.svc.Clear(ctx)
}

func (i *Interactor) Load(ctx context.Context) (cartdto.CartOutput, error) {
	cart, err := i.svc.Load(ctx)
	if err != nil {
		return cartdto.CartOutput{}, err
	}
	return toCartOutput(cart), nil
}

func (i *Interactor) Count(ctx context.Context) (int, error) {
	cart, err := i.svc.Load(ctx)
	if err != nil {
		return 0, err
	}
	return cart.Count(), nil
}

func (i *Interactor) Total(ctx context.Context) (float64, error) {
	cart, err := i.svc.Load(ctx)
	if err != nil {
		return 0, err
	}
	return cart.Total(), nil
}

func toLineOutput(item domain.LineItem) cartdto.LineItemOutput {
	return cartdto.LineItemOutput{
		ID:       item.ID,
		Name:     item.Name,
		Note:     item.Note,
		Price:    item.Price,
		Qty:      item.Qty,
		Subtotal: item.Subtotal(),
	}
}

func toCartOutput(cart domain.Cart) cartdto.CartOutput {
	out := cartdto.CartOutput{Items: make([]cartdto.LineItemOutput, 0, len(cart.Items)), Count: cart.Count(), Total: cart.Total()}
	for _, item := range cart.Items {
		out.Items = append(out.Items, toLineOutput(item))
	}
	return out
}
