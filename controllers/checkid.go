// path: controllers/checkid.go
package controllers

import (
	"github.com/gofiber/fiber/v2"

	"lostid/models"
)

// knownIDNumbers stands in for the national registry while there is no real
// integration; the existence checker calls this endpoint like any other
// lookup service.
var knownIDNumbers = map[string]struct{}{
	"8001015009087": {},
	"7504230124086": {},
	"9206150827081": {},
	"6709123451083": {},
	"8002246789085": {},
	"9201012345087": {},
	"7307069871084": {},
	"8512153456080": {},
	"9003280125089": {},
	"7705041234082": {},
}

// HandleCheckID answers POST /api/check-id with {exists}.
func (a *API) HandleCheckID(c *fiber.Ctx) error {
	var req models.CheckIDRequest
	if err := c.BodyParser(&req); err != nil {
		return badReq(c, "invalid JSON")
	}
	if req.IDNumber == "" {
		return badReq(c, "ID number is required")
	}
	_, exists := knownIDNumbers[req.IDNumber]
	return c.Status(fiber.StatusOK).JSON(models.CheckIDResponse{Exists: exists})
}
