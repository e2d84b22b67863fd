package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/pkg/jwt"
)

const (
	AuthModeStatic = "static"
	AuthModeJWT    = "jwt"
)

// IdentityResolver works out who is calling from the request.
type IdentityResolver interface {
	Resolve(c *fiber.Ctx) (domain.Identity, error)
}

type staticResolver struct {
	identity domain.Identity
}

// NewStaticResolver attributes every request to one configured user. It stands
// in until real accounts are required.
func NewStaticResolver(userID string, role string) IdentityResolver {
	if role == "" {
		role = domain.RoleUser
	}
	return &staticResolver{identity: domain.Identity{UserID: userID, Role: role}}
}

func (r *staticResolver) Resolve(*fiber.Ctx) (domain.Identity, error) {
	if r.identity.UserID == "" {
		return domain.Identity{}, domain.ErrTokenNotFound
	}
	return r.identity, nil
}

type jwtResolver struct {
	jwtService jwt.JWTService
}

func NewJWTResolver(jwtService jwt.JWTService) IdentityResolver {
	return &jwtResolver{jwtService: jwtService}
}

func (r *jwtResolver) Resolve(c *fiber.Ctx) (domain.Identity, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return domain.Identity{}, domain.ErrTokenNotFound
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return domain.Identity{}, domain.ErrTokenInvalid
	}

	userID, role, err := r.jwtService.GetUserIDByToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return domain.Identity{}, err
	}
	return domain.Identity{UserID: userID, Role: role}, nil
}

// NewIdentityResolver picks the resolver for AUTH_MODE.
func NewIdentityResolver(mode string, defaultUserID string, jwtService jwt.JWTService) IdentityResolver {
	if strings.EqualFold(mode, AuthModeJWT) {
		return NewJWTResolver(jwtService)
	}
	return NewStaticResolver(defaultUserID, domain.RoleAdmin)
}

// IdentityFrom reads the identity stored by AuthMiddleware.
func IdentityFrom(c *fiber.Ctx) domain.Identity {
	userID, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(string)
	return domain.Identity{UserID: userID, Role: role}
}
