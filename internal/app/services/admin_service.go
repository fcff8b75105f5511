package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	appError "github.com/wafflepopco/loyalty-core/internal/app/errors"
	"github.com/wafflepopco/loyalty-core/internal/app/models"
	"github.com/wafflepopco/loyalty-core/internal/app/stores"
	"github.com/wafflepopco/loyalty-core/internal/infrastructures"
)

// Up to this many transactions are returned by the admin listing,
// newest first.
const maxTransactionList = 500

type AdminService struct {
	store       stores.Store
	validator   *infrastructures.Validator
	userService *UserService
	config      *infrastructures.AppConfig
}

func NewAdminService(store stores.Store, validator *infrastructures.Validator, userService *UserService, config *infrastructures.AppConfig) *AdminService {
	return &AdminService{
		store:       store,
		validator:   validator,
		userService: userService,
		config:      config,
	}
}

// Login is a stateless password check against the configured admin password.
// No session is issued.
func (s *AdminService) Login(req *models.AdminLoginRequest) (*models.MessageResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if req.Password != s.config.AdminPassword {
		return nil, appError.NewUnauthorizedError("Invalid admin password")
	}

	return &models.MessageResponse{Success: true, Message: "Admin login successful"}, nil
}

// AddPoints increments both balances and appends an "earned" transaction.
// Points may be negative; the contract does not bar negative grants.
func (s *AdminService) AddPoints(ctx context.Context, req *models.AddPointsRequest) (*models.AddPointsResponse, error) {
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

	reason := req.Reason
	if reason == "" {
		reason = "Purchase"
	}

	trx := &models.PointTransaction{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		UserName:        user.Name,
		Points:          req.Points,
		Reason:          reason,
		TransactionType: models.TransactionTypeEarned,
		CreatedAt:       time.Now().UTC(),
	}

	updated, err := s.store.AddPoints(ctx, user.ID, req.Points, trx)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, appError.NewNotFoundError("User not found")
		}
		return nil, appError.NewInternalServerError(err, "Failed to add points")
	}

	return &models.AddPointsResponse{Success: true, User: updated}, nil
}

// CreateUserWithPoints registers a user and grants an initial balance in one
// call. A transaction is only logged when the grant is positive.
func (s *AdminService) CreateUserWithPoints(ctx context.Context, req *models.AdminCreateUserRequest) (*models.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.userService.Register(ctx, &models.UserCreateRequest{Name: req.Name})
	if err != nil {
		return nil, err
	}

	if req.Points > 0 {
		resp, err := s.AddPoints(ctx, &models.AddPointsRequest{
			UserID: user.ID,
			Points: req.Points,
			Reason: "Initial balance",
		})
		if err != nil {
			return nil, err
		}
		user = resp.User
	}

	return user, nil
}

func (s *AdminService) ListTransactions(ctx context.Context) ([]models.PointTransaction, error) {
	transactions, err := s.store.ListTransactions(ctx, maxTransactionList)
	if err != nil {
		return nil, appError.NewInternalServerError(err, "Failed to list transactions")
	}
	return transactions, nil
}
