package stores

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/wafflepopco/loyalty-core/internal/app/models"
)

// GormStore is the relational backend over Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	var existing models.User
	err := s.db.WithContext(ctx).Where("lower(name) = lower(?)", user.Name).First(&existing).Error
	if err == nil {
		return ErrDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.db.WithContext(ctx).Create(user).Error
}

func (s *GormStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) GetUserByName(ctx context.Context, name string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("lower(name) = lower(?)", name).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Order("lower(name) asc").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) AddPoints(ctx context.Context, userID string, points int, trx *models.PointTransaction) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		user.CurrentPoints += points
		user.LifetimePoints += points
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		return tx.Create(trx).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) ListTransactions(ctx context.Context, limit int) ([]models.PointTransaction, error) {
	var transactions []models.PointTransaction
	err := s.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// Redeem performs the balance deduction and both record inserts in a single
// database transaction.
func (s *GormStore) Redeem(ctx context.Context, userID string, cost int, redemption *models.Redemption, trx *models.PointTransaction) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		user.CurrentPoints -= cost
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		if err := tx.Create(redemption).Error; err != nil {
			return err
		}

		return tx.Create(trx).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) ListRedemptions(ctx context.Context, limit int) ([]models.Redemption, error) {
	var redemptions []models.Redemption
	err := s.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&redemptions).Error
	if err != nil {
		return nil, err
	}
	return redemptions, nil
}

func (s *GormStore) ListUserRedemptions(ctx context.Context, userID string, limit int) ([]models.Redemption, error) {
	var redemptions []models.Redemption
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&redemptions).Error
	if err != nil {
		return nil, err
	}
	return redemptions, nil
}

// MarkClaimed sets the claimed flag and stamps claimed_at. Re-marking an
// already claimed redemption refreshes the timestamp.
func (s *GormStore) MarkClaimed(ctx context.Context, redemptionID string, at time.Time) (*models.Redemption, error) {
	var redemption models.Redemption
	err := s.db.WithContext(ctx).Where("id = ?", redemptionID).First(&redemption).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	redemption.Claimed = true
	redemption.ClaimedAt = &at
	if err := s.db.WithContext(ctx).Save(&redemption).Error; err != nil {
		return nil, err
	}
	return &redemption, nil
}

func (s *GormStore) Leaderboard(ctx context.Context, limit int) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Order("lifetime_points desc").
		Order("lower(name) asc").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
