package profiles

import (
	"context"

	"github.com/Saubhagya1707/crying-tailor/resume/model"
)

// Repo persists a user's profile bundle: the profile record and its five
// ordered section collections.
type Repo interface {
	// Get returns the bundle with every collection ordered by order index.
	Get(ctx context.Context, userID string) (model.Resume, error)
	// Replace swaps the whole bundle atomically.
	Replace(ctx context.Context, userID string, r model.Resume) error
	Exists(ctx context.Context, userID string) (bool, error)
}
