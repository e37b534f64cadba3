package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"ancare/internal/modules/checkout/domain"
	checkoutout "ancare/internal/modules/checkout/port/out"
)

type CheckoutService struct {
	mu     sync.Mutex
	store  checkoutout.PreferencesStore
	logger *zap.Logger
}

func NewCheckoutService(store checkoutout.PreferencesStore, logger *zap.Logger) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutService{store: store, logger: logger}
}

func (s *CheckoutService) Load(ctx context.Context) (domain.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefs, err := s.store.Load(ctx)
	if err != nil {
		return domain.Preferences{}, err
	}
	return prefs.WithDefaults(), nil
}

func (s *CheckoutService) SetShipping(ctx context.Context, code string) (domain.Preferences, error) {
	return s.update(ctx, code, func(p *domain.Preferences, c string) { p.Shipping = c })
}

func (s *CheckoutService) SetPayment(ctx context.Context, code string) (domain.Preferences, error) {
	return s.update(ctx, code, func(p *domain.Preferences, c string) { p.Payment = c })
}

func (s *CheckoutService) update(ctx context.Context, code string, apply func(*domain.Preferences, string)) (domain.Preferences, error) {
	normalized, err := domain.NormalizeCode(code)
	if err != nil {
		return domain.Preferences{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prefs, err := s.store.Load(ctx)
	if err != nil {
		return domain.Preferences{}, err
	}
	prefs = prefs.WithDefaults()
	apply(&prefs, normalized)
	if err := s.store.Save(ctx, prefs); err != nil {
		return domain.Preferences{}, err
	}
	s.logger.Debug("checkout preferences updated", zap.String("shipping", prefs.Shipping), zap.String("payment", prefs.Payment))
	return prefs, nil
}
