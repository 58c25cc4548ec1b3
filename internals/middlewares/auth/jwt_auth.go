package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	helper "college_backend/internals/helpers"
)

const LocUserRole = "userRole"

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // read cookie access_token when there is no Bearer header
	// UserChecker, when set, rejects tokens of users that no longer exist or are inactive.
	UserChecker func(ctx context.Context, userID uuid.UUID) error
	// Leeway tolerated on exp.
	Leeway time.Duration
}

// AuthJWT verifies an HS256 token and stores the user id in c.Locals("user_id").
// Issuing tokens is handled elsewhere.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		// 1) token: Authorization: Bearer xxx (or cookie when allowed)
		raw, err := extractBearerToken(c, o.AllowCookieFallback)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 2) parse + verify algorithm
		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		tok, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		// 3) exp, with leeway
		if !claims.VerifyExpiresAt(time.Now().Add(-o.Leeway).Unix(), true) {
			return fiber.NewError(fiber.StatusUnauthorized, "Token expired")
		}

		// 4) user id: sub / id / user_id in order of preference
		sub := firstClaim(claims, "sub", "id", "user_id")
		userID, err := uuid.Parse(sub)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or missing user ID")
		}

		if o.UserChecker != nil {
			if err := o.UserChecker(c.UserContext(), userID); err != nil {
				log.Printf("[AuthJWT] user %s rejected: %v", userID, err)
				return fiber.NewError(fiber.StatusUnauthorized, "User not found")
			}
		}

		c.Locals(helper.LocUserID, userID.String())
		if role := firstClaim(claims, "role"); role != "" {
			c.Locals(LocUserRole, role)
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx, allowCookie bool) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" && allowCookie {
		if cookieTok := strings.TrimSpace(c.Cookies("access_token")); cookieTok != "" {
			auth = "Bearer " + cookieTok
		}
	}
	if auth == "" {
		return "", errors.New("unauthorized - no token provided")
	}

	// tolerate repeated spaces and any casing of "Bearer"
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", errors.New("unauthorized - invalid token format")
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", errors.New("unauthorized - empty token")
	}
	return tok, nil
}

func firstClaim(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if s, ok := claims[k].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}
