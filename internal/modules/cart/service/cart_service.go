package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"ancare/internal/modules/cart/domain"
	cartout "ancare/internal/modules/cart/port/out"
)

type CartService struct {
	mu      sync.Mutex
	store   cartout.CartStore
	presets []domain.Preset
	logger  *zap.Logger
}

func NewCartService(store cartout.CartStore, presets []domain.Preset, logger *zap.Logger) *CartService {
	if presets == nil {
		presets = domain.DefaultPresets()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartService{store: store, presets: presets, logger: logger}
}

// AddItem resolves input and merges it into the stored cart. Invalid input
// leaves the cart untouched.
func (s *CartService) AddItem(ctx context.Context, input domain.ItemInput) (domain.LineItem, domain.Cart, error) {
	item, err := domain.Normalize(input, s.presets)
	if err != nil {
		s.logger.Warn("add item rejected", zap.Error(err))
		return domain.LineItem{}, domain.Cart{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, err := s.store.Load(ctx)
	if err != nil {
		return domain.LineItem{}, domain.Cart{}, err
	}
	merged := cart.Add(item)
	if err := s.store.Save(ctx, cart); err != nil {
		return domain.LineItem{}, domain.Cart{}, err
	}
	s.logger.Debug("item added", zap.String("id", item.ID), zap.Int("qty", item.Qty), zap.Bool("merged", merged))
	return item, cart, nil
}

func (s *CartService) RemoveAt(ctx context.Context, index int) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, err := s.store.Load(ctx)
	if err != nil {
		return domain.Cart{}, err
	}
	if !cart.RemoveAt(index) {
		return cart, nil
	}
	if err := s.store.Save(ctx, cart); err != nil {
		return domain.Cart{}, err
	}
	s.logger.Debug("item removed", zap.Int("index", index))
	return cart, nil
}

func (s *CartService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Clear(ctx)
}

func (s *CartService) Load(ctx context.Context) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Load(ctx)
}
