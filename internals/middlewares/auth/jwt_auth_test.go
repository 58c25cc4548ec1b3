package auth

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "college_backend/internals/helpers"
)

const testSecret = "test-secret"

func mint(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return tok
}

func newApp(opts AuthJWTOpts) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Get("/me", AuthJWT(opts), func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocUserRole).(string)
		return c.JSON(fiber.Map{"user_id": c.Locals(helper.LocUserID), "role": role})
	})
	return app
}

func do(t *testing.T, app *fiber.App, header, cookie string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set(fiber.HeaderAuthorization, header)
	}
	if cookie != "" {
		req.Header.Set(fiber.HeaderCookie, "access_token="+cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthJWT_ValidToken(t *testing.T) {
	app := newApp(AuthJWTOpts{Secret: testSecret})
	tok := mint(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"sub":  uuid.NewString(),
		"role": "student",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	assert.Equal(t, fiber.StatusOK, do(t, app, "Bearer "+tok, ""))
	assert.Equal(t, fiber.StatusOK, do(t, app, "bearer   "+tok, ""))
}

func TestAuthJWT_Rejections(t *testing.T) {
	app := newApp(AuthJWTOpts{Secret: testSecret})
	uid := uuid.NewString()

	expired := mint(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"sub": uid,
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := mint(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{
		"sub": uid,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	noSub := mint(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	badSub := mint(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"sub": "not-a-uuid",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic abc",
		"expired":        "Bearer " + expired,
		"wrong key":      "Bearer " + wrongKey,
		"no subject":     "Bearer " + noSub,
		"bad subject":    "Bearer " + badSub,
		"garbage":        "Bearer not.a.jwt",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, fiber.StatusUnauthorized, do(t, app, header, ""))
		})
	}
}

func TestAuthJWT_CookieFallback(t *testing.T) {
	tok := mint(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"id":  uuid.NewString(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	assert.Equal(t, fiber.StatusUnauthorized, do(t, newApp(AuthJWTOpts{Secret: testSecret}), "", tok))
	assert.Equal(t, fiber.StatusOK, do(t, newApp(AuthJWTOpts{Secret: testSecret, AllowCookieFallback: true}), "", tok))
}

func TestAuthJWT_UserChecker(t *testing.T) {
	uid := uuid.New()
	var seen uuid.UUID
	app := newApp(AuthJWTOpts{
		Secret: testSecret,
		UserChecker: func(_ context.Context, id uuid.UUID) error {
			seen = id
			return errors.New("gone")
		},
	})
	tok := mint(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"user_id": uid.String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	assert.Equal(t, fiber.StatusUnauthorized, do(t, app, "Bearer "+tok, ""))
	assert.Equal(t, uid, seen)
}

func TestAuthJWT_PanicsWithoutSecret(t *testing.T) {
	assert.Panics(t, func() { AuthJWT(AuthJWTOpts{}) })
}
