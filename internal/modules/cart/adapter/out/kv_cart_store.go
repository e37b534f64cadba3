package out

import (
	"context"
	"fmt"

	"ancare/internal/modules/cart/domain"
	cartout "ancare/internal/modules/cart/port/out"
	"ancare/internal/platform/jsonx"
	"ancare/internal/platform/kv"
)

const CartKey = "ancare_cart_v1"

// storedItem tolerates hand-edited or corrupted numbers in the blob.
type storedItem struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Note  string      `json:"note"`
	Price jsonx.Loose `json:"price"`
	Qty   jsonx.Loose `json:"qty"`
}

type KVCartStore struct {
	kv *kv.Store
}

func NewKVCartStore(store *kv.Store) cartout.CartStore {
	return &KVCartStore{kv: store}
}

func (s *KVCartStore) Load(ctx context.Context) (domain.Cart, error) {
	raw, _ := s.kv.Get(ctx, CartKey)
	stored := jsonx.Decode(raw, []storedItem{})
	items := make([]domain.LineItem, 0, len(stored))
	for _, x := range stored {
		items = append(items, domain.LineItem{
			ID:    x.ID,
			Name:  x.Name,
			Note:  x.Note,
			Price: float64(x.Price),
			Qty:   x.Qty.Int(),
		})
	}
	return domain.New(items), nil
}

func (s *KVCartStore) Save(ctx context.Context, cart domain.Cart) error {
	items := cart.Items
	if items == nil {
		items = []domain.LineItem{}
	}
	payload, err := jsonx.Encode(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	s.kv.Set(ctx, CartKey, payload)
	return nil
}

func (s *KVCartStore) Clear(ctx context.Context) error {
	s.kv.Remove(ctx, CartKey)
	return nil
}
