package services

import (
	"context"

	appError "github.com/wafflepopco/loyalty-core/internal/app/errors"
	"github.com/wafflepopco/loyalty-core/internal/app/models"
	"github.com/wafflepopco/loyalty-core/internal/app/stores"
)

const leaderboardSize = 50

type LeaderboardService struct {
	store stores.Store
}

func NewLeaderboardService(store stores.Store) *LeaderboardService {
	return &LeaderboardService{store: store}
}

// Leaderboard ranks users by lifetime points. Rank is the 1-based position
// in the returned ordering.
func (s *LeaderboardService) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	users, err := s.store.Leaderboard(ctx, leaderboardSize)
	if err != nil {
		return nil, appError.NewInternalServerError(err, "Failed to build leaderboard")
	}

	entries := make([]models.LeaderboardEntry, 0, len(users))
	for i, user := range users {
		entries = append(entries, models.LeaderboardEntry{
			Rank:           i + 1,
			Name:           user.Name,
			LifetimePoints: user.LifetimePoints,
			UserID:         user.ID,
		})
	}
	return entries, nil
}
