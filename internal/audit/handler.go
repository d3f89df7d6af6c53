package audit

import (
	"github.com/gofiber/fiber/v2"
)

// GET /api/audit-logs (requer token de gestor)
func ListRegistrosHandler(rec *Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(rec.Registros())
	}
}
