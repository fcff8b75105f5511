package services

import (
	"context"
	"errors"
	"time"

	appError "github.com/wafflepopco/loyalty-core/internal/app/errors"
	"github.com/wafflepopco/loyalty-core/internal/app/models"
	"github.com/wafflepopco/loyalty-core/internal/app/stores"
	"github.com/wafflepopco/loyalty-core/internal/infrastructures"
)

const (
	maxRedemptionList     = 500
	maxUserRedemptionList = 100
)

type RedemptionService struct {
	store     stores.Store
	validator *infrastructures.Validator
}

func NewRedemptionService(store stores.Store, validator *infrastructures.Validator) *RedemptionService {
	return &RedemptionService{
		store:     store,
		validator: validator,
	}
}

func (s *RedemptionService) ListRedemptions(ctx context.Context) ([]models.Redemption, error) {
	redemptions, err := s.store.ListRedemptions(ctx, maxRedemptionList)
	if err != nil {
		return nil, appError.NewInternalServerError(err, "Failed to list redemptions")
	}
	return redemptions, nil
}

// ListUserRedemptions returns an empty list for an unknown user rather than
// 404; only the redemption records are consulted.
func (s *RedemptionService) ListUserRedemptions(ctx context.Context, userID string) ([]models.Redemption, error) {
	redemptions, err := s.store.ListUserRedemptions(ctx, userID, maxUserRedemptionList)
	if err != nil {
		return nil, appError.NewInternalServerError(err, "Failed to list redemptions")
	}
	return redemptions, nil
}

// MarkClaimed flips the claimed flag and stamps claimed_at. Re-marking an
// already claimed redemption refreshes the timestamp.
func (s *RedemptionService) MarkClaimed(ctx context.Context, req *models.MarkClaimedRequest) (*models.MessageResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	_, err := s.store.MarkClaimed(ctx, req.RedemptionID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, appError.NewNotFoundError("Redemption not found")
		}
		return nil, appError.NewInternalServerError(err, "Failed to mark redemption claimed")
	}

	return &models.MessageResponse{Success: true, Message: "Redemption marked as claimed"}, nil
}
