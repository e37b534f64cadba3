package out

import (
	"context"

	"ancare/internal/modules/cart/domain"
)

type CartStore interface {
	Load(ctx context.Context) (domain.Cart, error)
	Save(ctx context.Context, cart domain.Cart) error
	Clear(ctx context.Context) error
}
