package stores

import (
	"context"
	"errors"
	"time"

	"github.com/wafflepopco/loyalty-core/internal/app/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Store is the persistence contract shared by the relational and document
// backends. The API layer depends only on this interface.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	// GetUserByName matches the name case-insensitively.
	GetUserByName(ctx context.Context, name string) (*models.User, error)
	// ListUsers returns all users ordered by name, case-insensitively.
	ListUsers(ctx context.Context) ([]models.User, error)

	// AddPoints increments both balances of the user by points (which may be
	// negative) and appends the transaction record.
	AddPoints(ctx context.Context, userID string, points int, trx *models.PointTransaction) (*models.User, error)
	ListTransactions(ctx context.Context, limit int) ([]models.PointTransaction, error)

	// Redeem deducts cost from the user's current points and persists the
	// redemption together with its matching "spent" transaction. Lifetime
	// points are untouched.
	Redeem(ctx context.Context, userID string, cost int, redemption *models.Redemption, trx *models.PointTransaction) (*models.User, error)
	ListRedemptions(ctx context.Context, limit int) ([]models.Redemption, error)
	ListUserRedemptions(ctx context.Context, userID string, limit int) ([]models.Redemption, error)
	MarkClaimed(ctx context.Context, redemptionID string, at time.Time) (*models.Redemption, error)

	// Leaderboard returns users ordered by lifetime points descending, name
	// ascending as the tie-break.
	Leaderboard(ctx context.Context, limit int) ([]models.User, error)
}
