package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/wafflepopco/loyalty-core/internal/app/catalog"
	appError "github.com/wafflepopco/loyalty-core/internal/app/errors"
	"github.com/wafflepopco/loyalty-core/internal/app/models"
	"github.com/wafflepopco/loyalty-core/internal/app/pkg"
	"github.com/wafflepopco/loyalty-core/internal/app/stores"
	"github.com/wafflepopco/loyalty-core/internal/infrastructures"
)

type RewardService struct {
	store     stores.Store
	validator *infrastructures.Validator
	catalog   *catalog.Catalog
}

func NewRewardService(store stores.Store, validator *infrastructures.Validator, cat *catalog.Catalog) *RewardService {
	return &RewardService{
		store:     store,
		validator: validator,
		catalog:   cat,
	}
}

func (s *RewardService) ListRewards() []models.RewardItem {
	return s.catalog.Items()
}

// Redeem spends current points on a catalog reward. Lifetime points are
// never touched. The generated reward code is not collision-checked; the
// storage layer's unique index is the only guard.
func (s *RewardService) Redeem(ctx context.Context, req *models.RedeemRequest) (*models.RedeemResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.store.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, appError.NewNotFoundError("User not found")
		}
		return nil, appError.NewInternalServerError(err, "Failed to get user")
	}

	reward, ok := s.catalog.Get(req.RewardID)
	if !ok {
		return nil, appError.NewNotFoundError("Reward not found")
	}

	if user.CurrentPoints < reward.PointsRequired {
		return nil, appError.NewBadRequestError("Insufficient points")
	}

	now := time.Now().UTC()
	code := pkg.RewardCode(reward.Name)

	redemption := &models.Redemption{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		UserName:    user.Name,
		RewardID:    reward.ID,
		RewardName:  reward.Name,
		PointsSpent: reward.PointsRequired,
		RewardCode:  code,
		Claimed:     false,
		CreatedAt:   now,
	}

	trx := &models.PointTransaction{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		UserName:        user.Name,
		Points:          reward.PointsRequired,
		Reason:          "Redeemed: " + reward.Name,
		TransactionType: models.TransactionTypeSpent,
		CreatedAt:       now,
	}

	updated, err := s.store.Redeem(ctx, user.ID, reward.PointsRequired, redemption, trx)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, appError.NewNotFoundError("User not found")
		}
		return nil, appError.NewInternalServerError(err, "Failed to redeem reward")
	}

	return &models.RedeemResponse{
		Success:         true,
		RewardCode:      code,
		RewardName:      reward.Name,
		PointsSpent:     reward.PointsRequired,
		RemainingPoints: updated.CurrentPoints,
	}, nil
}
