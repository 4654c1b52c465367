// path: controllers/notify.go
package controllers

import (
	"github.com/gofiber/fiber/v2"

	"lostid/models"
)

// HandleNotify is the standalone mock agency endpoint: it only logs the
// notice. The real fan-out after a submission goes through notify.Dispatcher.
func (a *API) HandleNotify(c *fiber.Ctx) error {
	var req models.NotifyRequest
	if err := c.BodyParser(&req); err != nil {
		return badReq(c, "invalid JSON")
	}
	a.Log.Printf("notify SAPS and credit bureaus about lost ID %s, reason %q", req.IDNumber, req.Reason)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Notifications sent (mock)"})
}
