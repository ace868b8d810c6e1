package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"community-guard/internal/identity"
)

var ErrMissingBearerToken = fiber.Map{"error": "Missing bearer token."}
var ErrInvalidBearerToken = fiber.Map{"error": "Invalid bearer token provided."}
var ErrModeratorOnly = fiber.Map{"error": "관리자만 접근 가능합니다."}

// ActorClaims carries the authenticated actor's email. The identity provider
// issues these tokens; this service only verifies and normalizes them.
type ActorClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// IssueToken signs an actor token. Exposed for the identity provider
// integration and for tests.
func IssueToken(email string, ttl time.Duration) (string, error) {
	claims := ActorClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(globalConfig.Server.JWTSecret))
}

func validateToken(providedToken string) (string, fiber.Map) {
	claims := ActorClaims{}
	token, err := jwt.ParseWithClaims(providedToken, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(globalConfig.Server.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return "", ErrInvalidBearerToken
	}

	actor := identity.Normalize(claims.Email)
	if actor == "" {
		return "", ErrInvalidBearerToken
	}

	return actor, nil
}

// JwtRequired extracts and normalizes the actor email from the bearer token.
func JwtRequired(c *fiber.Ctx) error {
	authorizationHeader := c.Get("Authorization")

	if !strings.HasPrefix(authorizationHeader, "Bearer ") {
		return c.Status(http.StatusUnauthorized).
			JSON(ErrMissingBearerToken)
	}

	authorizationHeader = strings.TrimPrefix(authorizationHeader, "Bearer ")
	actor, errMap := validateToken(authorizationHeader)

	if errMap != nil {
		return c.Status(http.StatusUnauthorized).
			JSON(errMap)
	}

	c.Locals("actor", actor)
	return c.Next()
}

// ModeratorRequired gates moderator-only routes on the configured admin list.
func ModeratorRequired(c *fiber.Ctx) error {
	actor := c.Locals("actor").(string)
	if !identity.IsModerator(globalConfig.Moderation.AdminEmails, actor) {
		return c.Status(http.StatusForbidden).JSON(ErrModeratorOnly)
	}
	return c.Next()
}

func currentActor(c *fiber.Ctx) string {
	actor, _ := c.Locals("actor").(string)
	return actor
}
