package in

import (
	"context"

	"ancare/internal/modules/cart/dto"
)

type Usecase interface {
	AddItem(ctx context.Context, input dto.AddItemInput) (dto.LineItemOutput, error)
	RemoveAt(ctx context.Context, index int) (dto.CartOutput, error)
	Clear(ctx context.Context) error
	Load(ctx context.Context) (dto.CartOutput, error)
	Count(ctx context.Context) (int, error)
	Total(ctx context.Context) (float64, error)
}
