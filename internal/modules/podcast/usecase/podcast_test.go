package usecase_test

import (
	"context"
	"testing"

	podcastout "ancare/internal/modules/podcast/adapter/out"
	"ancare/internal/modules/podcast/service"
	"ancare/internal/modules/podcast/usecase"
	"ancare/internal/platform/kv"
)

func TestListEmptyWithoutSeed(t *testing.T) {
	t.Parallel()
	store := kv.NewStore(kv.NewMemoryBackend(), nil)
	uc := usecase.NewInteractor(service.NewPodcastService(podcastout.NewKVEpisodeStore(store), nil))
	episodes, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if episodes == nil || len(episodes) != 0 {
		t.Fatalf("expected empty list, got %+v", episodes)
	}
}

func TestSeedThenList(t *testing.T) {
	t.Parallel()
	store := kv.NewStore(kv.NewMemoryBackend(), nil)
	uc := usecase.NewInteractor(service.NewPodcastService(podcastout.NewKVEpisodeStore(store), nil))
	ctx := context.Background()
	store.Set(ctx, podcastout.PodcastKey, `[{"id":"stale","number":9}]`)

	seeded, err := uc.Seed(ctx)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	listed, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != len(seeded) || len(listed) == 0 {
		t.Fatalf("seeded %d, listed %d", len(seeded), len(listed))
	}
	if listed[0].ID != "ancare_ep_001" || listed[0].Number != 1 {
		t.Fatalf("unexpected first episode %+v", listed[0])
	}
}

func TestListAcceptsWrappedForm(t *testing.T) {
	t.Parallel()
	tests := []struct {
		raw  string
		want int
	}{
		{raw: `{"episodes":[{"id":"a","number":"3","title":"A"},{"id":"b","number":4}]}`, want: 2},
		{raw: `[{"id":"a","number":1}]`, want: 1},
		{raw: `{"episodes":null}`, want: 0},
		{raw: `"nope"`, want: 0},
		{raw: `not json`, want: 0},
	}
	for _, tt := range tests {
		raw, want := tt.raw, tt.want
		store := kv.NewStore(kv.NewMemoryBackend(), nil)
		uc := usecase.NewInteractor(service.NewPodcastService(podcastout.NewKVEpisodeStore(store), nil))
		store.Set(context.Background(), podcastout.PodcastKey, raw)
		episodes, err := uc.List(context.Background())
		if err != nil {
			t.Fatalf("%s: list: %v", raw, err)
		}
		if len(episodes) != want {
			t.Fatalf("%s: got %d episodes, want %d", raw, len(episodes), want)
		}
		if raw[0] == '{' && want == 2 && episodes[0].Number != 3 {
			t.Fatalf("string number must be coerced, got %+v", episodes[0])
		}
	}
}
