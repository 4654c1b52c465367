// path: controllers/report.go
package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"lostid/models"
	"lostid/reports"
)

// HandleSubmitReport runs the submission pipeline for POST /api/reports.
func (a *API) HandleSubmitReport(c *fiber.Ctx) error {
	var p models.SubmitReportPayload
	if err := c.BodyParser(&p); err != nil {
		return badReq(c, "invalid JSON")
	}

	ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
	defer cancel()

	rec, err := a.Submitter.Submit(ctx, reports.Submission{
		Name:        p.Name,
		Surname:     p.Surname,
		IDNumber:    p.IDNumber,
		Reason:      p.Reason,
		DateLost:    p.DateLost,
		SelfieImage: p.SelfieImage,
	})
	if err != nil {
		return submitError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.SubmitReportResp{
		OK:      true,
		ID:      rec.ID,
		Message: "Report submitted successfully",
	})
}

// submitError maps each pipeline rejection to its status and message.
func submitError(c *fiber.Ctx, err error) error {
	var ve *reports.ValidationError
	var vfe *reports.VerificationError
	switch {
	case errors.As(err, &ve):
		return badReq(c, ve.Error())
	case errors.Is(err, reports.ErrIdentityNotRecognized):
		return badReq(c, "identity not recognized")
	case errors.Is(err, reports.ErrAlreadyReported):
		return c.Status(fiber.StatusConflict).
			JSON(ErrorResp{OK: false, Error: "this id number has already been reported"})
	case errors.As(err, &vfe):
		return c.Status(fiber.StatusServiceUnavailable).
			JSON(ErrorResp{OK: false, Error: "verification unavailable, try again later"})
	default:
		return serverErr(c, errors.New("submission failed"))
	}
}
