// path: controllers/users.go
package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"lostid/auth"
	"lostid/models"
	"lostid/store"
)

// HandleMe returns the caller's profile, provisioning the users document from
// the token claims on first sight.
func (a *API) HandleMe(c *fiber.Ctx) error {
	id := auth.UserID(c)
	if id == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResp{OK: false, Error: "unauthenticated"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 8*time.Second)
	defer cancel()

	u, err := a.Users.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		username, _ := c.Locals(auth.LocalUsername).(string)
		email, _ := c.Locals(auth.LocalEmail).(string)
		u = &models.User{
			ID:        id,
			Username:  username,
			Email:     email,
			CreatedAt: time.Now().UTC(),
		}
		if err := a.Users.Upsert(ctx, u); err != nil {
			return serverErr(c, err)
		}
	} else if err != nil {
		return serverErr(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(u)
}
