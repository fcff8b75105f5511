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

type UserService struct {
	store     stores.Store
	validator *infrastructures.Validator
}

func NewUserService(store stores.Store, validator *infrastructures.Validator) *UserService {
	return &UserService{
		store:     store,
		validator: validator,
	}
}

func (s *UserService) Register(ctx context.Context, req *models.UserCreateRequest) (*models.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, stores.ErrDuplicate) {
			return nil, appError.NewConflictError("User with this name already exists")
		}
		return nil, appError.NewInternalServerError(err, "Failed to register user")
	}

	return user, nil
}

// Login is name-based identification only, matched case-insensitively. No
// credential is checked.
func (s *UserService) Login(ctx context.Context, req *models.UserLoginRequest) (*models.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.store.GetUserByName(ctx, req.Name)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, appError.NewNotFoundError("User not found. Please register first.")
		}
		return nil, appError.NewInternalServerError(err, "Failed to log in")
	}

	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, appError.NewNotFoundError("User not found")
		}
		return nil, appError.NewInternalServerError(err, "Failed to get user")
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, appError.NewInternalServerError(err, "Failed to list users")
	}
	return users, nil
}
