// path: controllers/reports_list.go
package controllers

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"lostid/store"
)

type ReportItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	IDNumber    string `json:"idNumber"`
	DateLost    string `json:"dateLost"`
	Reason      string `json:"reason"`
	Status      string `json:"status"` // Used / Not Used
	UsedAt      string `json:"usedAt"`
	SelfieImage string `json:"selfieImage,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

type ReportListResp struct {
	OK    bool         `json:"ok"`
	Items []ReportItem `json:"items"`
}

// HandleListReports serves the admin record table: newest first, optional
// search over name or id number.
func (a *API) HandleListReports(c *fiber.Ctx) error {
	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			if n < 1 {
				n = 1
			}
			if n > 100 {
				n = 100
			}
			limit = n
		}
	}

	ctx, cancel := context.WithTimeout(c.Context(), 8*time.Second)
	defer cancel()

	recs, err := a.Reports.List(ctx, store.ListQuery{
		Search: c.Query("search"),
		Limit:  limit,
	})
	if err != nil {
		return serverErr(c, err)
	}

	items := make([]ReportItem, 0, len(recs))
	for _, r := range recs {
		item := ReportItem{
			ID:          r.ID,
			Name:        r.Name,
			Surname:     r.Surname,
			IDNumber:    r.IDNumber,
			DateLost:    r.DateLost,
			Reason:      r.Reason,
			Status:      "Not Used",
			UsedAt:      "-",
			SelfieImage: r.SelfieImage,
			CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
		}
		if r.UsedAtShop != "" {
			item.Status = "Used"
			item.UsedAt = fmt.Sprintf("%s (%s)", r.UsedAtShop, r.UsedDate)
		}
		items = append(items, item)
	}

	return c.Status(fiber.StatusOK).JSON(ReportListResp{OK: true, Items: items})
}
