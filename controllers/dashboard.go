// path: controllers/dashboard.go
package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"lostid/stats"
	"lostid/store"
)

type DashboardResp struct {
	OK            bool                 `json:"ok"`
	TotalReports  int                  `json:"totalReports"`
	UniqueReasons int                  `json:"uniqueReasons"`
	Reasons       []stats.ReasonCount  `json:"reasons"`
	Cumulative    []stats.SeriesPoint  `json:"cumulative"`
	Weekdays      []stats.WeekdayCount `json:"weekdays"`
}

// HandleDashboard recomputes the three aggregate views over the full record
// set on every call.
func (a *API) HandleDashboard(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 8*time.Second)
	defer cancel()

	recs, err := a.Reports.List(ctx, store.ListQuery{})
	if err != nil {
		return serverErr(c, err)
	}

	reasons := stats.ReasonDistribution(recs)
	return c.Status(fiber.StatusOK).JSON(DashboardResp{
		OK:            true,
		TotalReports:  len(recs),
		UniqueReasons: len(reasons),
		Reasons:       reasons,
		Cumulative:    stats.CumulativeSeries(recs),
		Weekdays:      stats.WeekdayHistogram(recs),
	})
}
