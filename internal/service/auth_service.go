package service

import (
	"context"
	"time"

	"github.com/ibrahimhozhun/food-ordering-app/internal/auth"
	"github.com/ibrahimhozhun/food-ordering-app/internal/config"
	"github.com/ibrahimhozhun/food-ordering-app/internal/domain"
	"github.com/ibrahimhozhun/food-ordering-app/internal/repository"
	apperrors "github.com/ibrahimhozhun/food-ordering-app/pkg/util"
)

// Unknown email and wrong password intentionally share one message so the
// response never reveals which half of the credentials failed.
const incorrectCredentialsMessage = "Incorrect email or password"

const invalidDataMessage = "Invalid data"

// AuthService coordinates signup and signin flows for both user kinds.
type AuthService struct {
	customers   repository.CustomerRepository
	restaurants repository.RestaurantRepository
	tokenMgr    *auth.TokenManager
	bcryptCost  int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	CustomerRepo   repository.CustomerRepository
	RestaurantRepo repository.RestaurantRepository
}

// SignupInput carries the signup payload. RestaurantName is only meaningful
// for the RESTAURANT role.
type SignupInput struct {
	Username       string
	Email          string
	Password       string
	RestaurantName string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		customers:   deps.CustomerRepo,
		restaurants: deps.RestaurantRepo,
		tokenMgr:    auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL()),
		bcryptCost:  cfg.Auth.BcryptCost,
	}
}

// SignupCustomer creates a new customer account and issues a session token.
func (s *AuthService) SignupCustomer(ctx context.Context, input SignupInput) (*domain.Customer, string, time.Time, error) {
	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	customer := &domain.Customer{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, "", time.Time{}, apperrors.NewValidationError(invalidDataMessage, nil)
		}
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.Generate(customer.ID, domain.RoleCustomer)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return customer, token, exp, nil
}

// SignupRestaurant creates a new restaurant account. The restaurant name is
// mandatory for this kind; rejecting it here keeps the missing column from
// surfacing as a storage error.
func (s *AuthService) SignupRestaurant(ctx context.Context, input SignupInput) (*domain.Restaurant, string, time.Time, error) {
	if input.RestaurantName == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError(invalidDataMessage, nil)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	restaurant := &domain.Restaurant{
		Username:       input.Username,
		Email:          input.Email,
		PasswordHash:   hash,
		RestaurantName: input.RestaurantName,
		AvgWaitTime:    domain.DefaultAvgWaitTime,
	}
	if err := s.restaurants.Create(ctx, restaurant); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, "", time.Time{}, apperrors.NewValidationError(invalidDataMessage, nil)
		}
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.Generate(restaurant.ID, domain.RoleRestaurant)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return restaurant, token, exp, nil
}

// SigninCustomer authenticates a customer by email and password.
func (s *AuthService) SigninCustomer(ctx context.Context, email, password string) (*domain.Customer, string, time.Time, error) {
	customer, err := s.customers.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized(incorrectCredentialsMessage)
	}
	if err := auth.ComparePassword(customer.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized(incorrectCredentialsMessage)
	}
	token, exp, err := s.tokenMgr.Generate(customer.ID, domain.RoleCustomer)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return customer, token, exp, nil
}

// SigninRestaurant authenticates a restaurant by email and password.
func (s *AuthService) SigninRestaurant(ctx context.Context, email, password string) (*domain.Restaurant, string, time.Time, error) {
	restaurant, err := s.restaurants.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized(incorrectCredentialsMessage)
	}
	if err := auth.ComparePassword(restaurant.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized(incorrectCredentialsMessage)
	}
	token, exp, err := s.tokenMgr.Generate(restaurant.ID, domain.RoleRestaurant)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return restaurant, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
