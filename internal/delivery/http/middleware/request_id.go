package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RequestIDKey - ключ в c.Locals, под которым лежит ID запроса
const RequestIDKey = "requestid"

// RequestID - проставляет X-Request-ID (берёт из входящего заголовка или генерирует UUID)
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		ContextKey: RequestIDKey,
		Generator:  uuid.NewString,
	})
}

// GetRequestID - ID текущего запроса или пустая строка
func GetRequestID(c *fiber.Ctx) string {
	if rid, ok := c.Locals(RequestIDKey).(string); ok {
		return rid
	}
	return ""
}
