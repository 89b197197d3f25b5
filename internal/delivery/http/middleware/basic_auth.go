package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"

	"github.com/perumahan-service/internal/config"
	"github.com/perumahan-service/internal/pkg/errors"
	"github.com/perumahan-service/internal/pkg/utils"
)

// AdminAuth - basic auth для админского API
func AdminAuth(cfg config.AdminConfig) fiber.Handler {
	return basicauth.New(basicauth.Config{
		Realm: "perumahan admin",
		Authorizer: func(user, pass string) bool {
			userOK := subtle.ConstantTimeCompare([]byte(user), []byte(cfg.Username)) == 1
			passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(cfg.Password)) == 1
			return userOK && passOK
		},
		Unauthorized: func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="perumahan admin"`)
			return utils.SendError(c, errors.ErrUnauthorized)
		},
	})
}
