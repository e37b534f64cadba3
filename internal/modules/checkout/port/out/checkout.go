package out

import (
	"context"

	"ancare/internal/modules/checkout/domain"
)

type PreferencesStore interface {
	Load(ctx context.Context) (domain.Preferences, error)
	Save(ctx context.Context, prefs domain.Preferences) error
}
