package out

import (
	"context"
	"fmt"

	"ancare/internal/modules/checkout/domain"
	checkoutout "ancare/internal/modules/checkout/port/out"
	"ancare/internal/platform/jsonx"
	"ancare/internal/platform/kv"
)

const CheckoutKey = "ancare_checkout_v1"

type KVPreferencesStore struct {
	kv *kv.Store
}

func NewKVPreferencesStore(store *kv.Store) checkoutout.PreferencesStore {
	return &KVPreferencesStore{kv: store}
}

func (s *KVPreferencesStore) Load(ctx context.Context) (domain.Preferences, error) {
	raw, _ := s.kv.Get(ctx, CheckoutKey)
	return jsonx.Decode(raw, domain.DefaultPreferences()).WithDefaults(), nil
}

func (s *KVPreferencesStore) Save(ctx context.Context, prefs domain.Preferences) error {
	payload, err := jsonx.Encode(prefs)
	if err != nil {
		return fmt.Errorf("encode checkout preferences: %w", err)
	}
	s.kv.Set(ctx, CheckoutKey, payload)
	return nil
}
