package bootstrap

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	cartinadapter "ancare/internal/modules/cart/adapter/in"
	cartoutadapter "ancare/internal/modules/cart/adapter/out"
	cartdomain "ancare/internal/modules/cart/domain"
	cartservice "ancare/internal/modules/cart/service"
	cartusecase "ancare/internal/modules/cart/usecase"
	checkoutinadapter "ancare/internal/modules/checkout/adapter/in"
	checkoutoutadapter "ancare/internal/modules/checkout/adapter/out"
	checkoutservice "ancare/internal/modules/checkout/service"
	checkoutusecase "ancare/internal/modules/checkout/usecase"
	interestinadapter "ancare/internal/modules/interest/adapter/in"
	interestoutadapter "ancare/internal/modules/interest/adapter/out"
	interestservice "ancare/internal/modules/interest/service"
	interestusecase "ancare/internal/modules/interest/usecase"
	podcastinadapter "ancare/internal/modules/podcast/adapter/in"
	podcastoutadapter "ancare/internal/modules/podcast/adapter/out"
	podcastservice "ancare/internal/modules/podcast/service"
	podcastusecase "ancare/internal/modules/podcast/usecase"
	"ancare/internal/platform/clock"
	"ancare/internal/platform/config"
	apperrors "ancare/internal/platform/errors"
	"ancare/internal/platform/kv"
	"ancare/internal/platform/logger"
	uiapp "ancare/internal/ui/app"
)

type App struct {
	CartCLI     cartinadapter.CLIHandler
	InterestCLI interestinadapter.CLIHandler
	CheckoutCLI checkoutinadapter.CLIHandler
	PodcastCLI  podcastinadapter.CLIHandler

	Store  *kv.Store
	Logger *zap.Logger
	closer func() error
}

func New(cfg config.Config) (*App, error) {
	log, err := logger.New(cfg.Settings.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}
	backend, closer, err := newBackend(cfg, log)
	if err != nil {
		return nil, err
	}
	store := kv.NewStore(backend, log.Named("kv"))
	clk := clock.SystemClock{}

	cartUC := cartusecase.NewInteractor(cartservice.NewCartService(
		cartoutadapter.NewKVCartStore(store),
		presets(cfg.Settings.Presets),
		log.Named("cart"),
	))
	interestUC := interestusecase.NewInteractor(interestservice.NewInterestService(
		clk,
		interestoutadapter.NewKVLogStore(store),
		log.Named("interest"),
	))
	checkoutUC := checkoutusecase.NewInteractor(checkoutservice.NewCheckoutService(
		checkoutoutadapter.NewKVPreferencesStore(store),
		log.Named("checkout"),
	), cartUC)
	podcastUC := podcastusecase.NewInteractor(podcastservice.NewPodcastService(
		podcastoutadapter.NewKVEpisodeStore(store),
		log.Named("podcast"),
	))

	return &App{
		CartCLI:     cartinadapter.NewCLIHandler(cartUC),
		InterestCLI: interestinadapter.NewCLIHandler(interestUC),
		CheckoutCLI: checkoutinadapter.NewCLIHandler(checkoutUC),
		PodcastCLI:  podcastinadapter.NewCLIHandler(podcastUC),
		Store:       store,
		Logger:      log,
		closer:      closer,
	}, nil
}

// newBackend picks the persistence medium. A durable backend that cannot be
// opened degrades to the blocked backend so the store runs from memory.
func newBackend(cfg config.Config, log *zap.Logger) (kv.Backend, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Settings.Storage {
	case config.StorageMemory:
		return kv.NewMemoryBackend(), noop, nil
	case config.StorageBlocked:
		return kv.BlockedBackend{}, noop, nil
	case config.StorageSQLite:
		if err := os.MkdirAll(cfg.StateDir, 0o755); err != nil {
			log.Warn("state dir unavailable, running from memory", zap.Error(err))
			return kv.BlockedBackend{}, noop, nil
		}
		backend, err := kv.NewSQLiteBackend(cfg.DBPath)
		if err != nil {
			log.Warn("sqlite unavailable, running from memory", zap.String("path", cfg.DBPath), zap.Error(err))
			return kv.BlockedBackend{}, noop, nil
		}
		return backend, backend.Close, nil
	case config.StorageFile, "":
		return kv.NewFileBackend(cfg.KVDir), noop, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownBackend, cfg.Settings.Storage)
	}
}

// presets puts configured presets ahead of the built-in ones so a settings
// file can redefine a default keyword.
func presets(settings []config.PresetSetting) []cartdomain.Preset {
	out := make([]cartdomain.Preset, 0, len(settings)+1)
	for _, p := range settings {
		out = append(out, cartdomain.Preset{Keyword: p.Keyword, ID: p.ID, Name: p.Name, Note: p.Note, Price: p.Price})
	}
	return append(out, cartdomain.DefaultPresets()...)
}

// Close releases the backend and flushes the logger.
func (a *App) Close() error {
	_ = a.Logger.Sync()
	if a.closer == nil {
		return nil
	}
	return a.closer()
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.CartCLI, app.InterestCLI, app.CheckoutCLI, app.PodcastCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
