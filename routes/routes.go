// path: routes/routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"lostid/controllers"
)

// Register attaches all API endpoints to the app. check-id and notify stay
// open: they mock external collaborators that the pipeline itself calls.
func Register(app *fiber.App, api *controllers.API, requireAuth fiber.Handler) {
	g := app.Group("/api")

	g.Post("/check-id", api.HandleCheckID)
	g.Post("/notify", api.HandleNotify)

	g.Post("/reports", requireAuth, api.HandleSubmitReport)
	g.Get("/reports", requireAuth, api.HandleListReports)
	g.Get("/dashboard", requireAuth, api.HandleDashboard)
	g.Get("/me", requireAuth, api.HandleMe)
}
