package out

import (
	"context"
	"fmt"

	"ancare/internal/modules/interest/domain"
	interestout "ancare/internal/modules/interest/port/out"
	"ancare/internal/platform/jsonx"
	"ancare/internal/platform/kv"
)

const InterestKey = "ancare_interest_v1"

type storedLog struct {
	Events []domain.Event         `json:"events"`
	Totals map[string]jsonx.Loose `json:"totals"`
}

type KVLogStore struct {
	kv *kv.Store
}

func NewKVLogStore(store *kv.Store) interestout.LogStore {
	return &KVLogStore{kv: store}
}

func (s *KVLogStore) Load(ctx context.Context) (domain.Log, bool, error) {
	raw, ok := s.kv.Get(ctx, InterestKey)
	if !ok {
		return domain.NewLog(), false, nil
	}
	stored, ok := jsonx.Parse[storedLog](raw)
	if !ok {
		return domain.NewLog(), false, nil
	}
	log := domain.NewLog()
	if stored.Events != nil {
		log.Events = stored.Events
	}
	for variant, count := range stored.Totals {
		log.Totals[variant] = count.Int()
	}
	return log, true, nil
}

func (s *KVLogStore) Save(ctx context.Context, log domain.Log) error {
	stored := storedLog{Events: log.Events, Totals: map[string]jsonx.Loose{}}
	if stored.Events == nil {
		stored.Events = []domain.Event{}
	}
	for variant, count := range log.Totals {
		stored.Totals[variant] = jsonx.Loose(count)
	}
	payload, err := jsonx.Encode(stored)
	if err != nil {
		return fmt.Errorf("encode interest log: %w", err)
	}
	s.kv.Set(ctx, InterestKey, payload)
	return nil
}

func (s *KVLogStore) Clear(ctx context.Context) error {
	s.kv.Remove(ctx, InterestKey)
	return nil
}
