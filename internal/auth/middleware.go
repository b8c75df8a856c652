package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ibrahimhozhun/food-ordering-app/internal/domain"
	"github.com/ibrahimhozhun/food-ordering-app/internal/repository"
	apperrors "github.com/ibrahimhozhun/food-ordering-app/pkg/util"
)

const principalKey = "auth_principal"

// The 401 body is identical for every failure in the authentication chain.
// A caller must not be able to tell a missing cookie from an expired or
// tampered token; only the logs distinguish them.
const invalidCredentialsMessage = "Invalid authentication credentials"

// Principal represents the authenticated caller. Exactly one of Customer or
// Restaurant is set, matching Role.
type Principal struct {
	Role       domain.Role
	Customer   *domain.Customer
	Restaurant *domain.Restaurant
}

// ID returns the id of the underlying record regardless of kind.
func (p *Principal) ID() uuid.UUID {
	switch p.Role {
	case domain.RoleCustomer:
		return p.Customer.ID
	case domain.RoleRestaurant:
		return p.Restaurant.ID
	default:
		return uuid.Nil
	}
}

// Middleware validates session cookies and loads principals.
type Middleware struct {
	tokens      *TokenManager
	customers   repository.CustomerRepository
	restaurants repository.RestaurantRepository
	logger      *zap.Logger
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, customers repository.CustomerRepository, restaurants repository.RestaurantRepository, logger *zap.Logger) *Middleware {
	return &Middleware{tokens: tokens, customers: customers, restaurants: restaurants, logger: logger}
}

// Handle enforces authentication for protected routes. The chain is cookie
// extraction, token decode, then record resolution; any failure denies the
// request, never falling back to a guessed identity.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	token := ReadToken(c)
	if token == "" {
		m.logger.Debug("auth: missing session cookie", zap.String("path", c.Path()))
		return apperrors.NewUnauthorized(invalidCredentialsMessage)
	}

	userID, role, err := m.tokens.Parse(token)
	if err != nil {
		m.logger.Debug("auth: token rejected", zap.String("path", c.Path()), zap.Error(err))
		return apperrors.NewUnauthorized(invalidCredentialsMessage)
	}

	principal := &Principal{Role: role}

	switch role {
	case domain.RoleCustomer:
		customer, err := m.customers.GetByID(c.Context(), userID)
		if err != nil {
			m.logger.Debug("auth: customer resolution failed", zap.String("sub", userID.String()), zap.Error(err))
			return apperrors.NewUnauthorized(invalidCredentialsMessage)
		}
		principal.Customer = customer
	case domain.RoleRestaurant:
		restaurant, err := m.restaurants.GetByID(c.Context(), userID)
		if err != nil {
			m.logger.Debug("auth: restaurant resolution failed", zap.String("sub", userID.String()), zap.Error(err))
			return apperrors.NewUnauthorized(invalidCredentialsMessage)
		}
		principal.Restaurant = restaurant
	default:
		m.logger.Warn("auth: unknown role in valid token", zap.String("role", string(role)))
		return apperrors.NewUnauthorized(invalidCredentialsMessage)
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
