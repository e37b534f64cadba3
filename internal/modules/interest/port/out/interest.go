package out

import (
	"context"

	"ancare/internal/modules/interest/domain"
)

type LogStore interface {
	// Load reports found=false when nothing usable is stored.
	Load(ctx context.Context) (log domain.Log, found bool, err error)
	Save(ctx context.Context, log domain.Log) error
	Clear(ctx context.Context) error
}
