// path: main.go
package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lostid/auth"
	"lostid/controllers"
	"lostid/database"
	"lostid/metrics"
	"lostid/notify"
	"lostid/reports"
	"lostid/routes"
	"lostid/store"
)

func main() {
	logg := log.New(os.Stdout, "", log.LstdFlags)

	db, err := database.Connect(context.Background())
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = database.Disconnect(ctx)
	}()

	st := store.NewMongo(db)
	if err := st.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("index creation failed: %v", err)
	}

	m := metrics.New()

	notifyTimeout := 10 * time.Second
	if v := getenv("NOTIFY_TIMEOUT", ""); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			notifyTimeout = d
		}
	}
	dispatcher := notify.NewDispatcher(logg, notifyTimeout, m,
		&notify.MockSAPS{Log: logg, Delay: 300 * time.Millisecond},
		&notify.MockCreditBureau{Log: logg, Delay: 300 * time.Millisecond},
	)

	port := getenv("PORT", "3005")
	checker := reports.NewHTTPExistenceChecker(getenv("CHECK_ID_URL", "http://localhost:"+port+"/api/check-id"))
	submitter := reports.NewSubmitter(st, checker, dispatcher, logg, m)

	api := &controllers.API{
		Submitter: submitter,
		Reports:   st,
		Users:     st,
		Log:       logg,
	}

	secret := getenv("JWT_SECRET", "")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	requireAuth := auth.RequireAuth(auth.NewTokenVerifier(secret), logg)

	app := fiber.New()
	app.Use(recover.New())

	app.Use(logger.New(logger.Config{
		TimeFormat: "15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     getenv("CORS_ORIGINS", "http://localhost:3000"),
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "*",
		AllowCredentials: false,
		MaxAge:           int((12 * time.Hour).Seconds()),
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	routes.Register(app, api, requireAuth)

	log.Println("API listening on :" + port)
	log.Fatal(app.Listen(":" + port))
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
