package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"esthecrm-backend/models"
	"esthecrm-backend/services"
	"esthecrm-backend/store"
	"esthecrm-backend/utils"
)

type RecentFinanceEntry struct {
	Title           string `json:"title"`
	Type            string `json:"type"`
	Date            string `json:"date"`
	FormattedAmount string `json:"formattedAmount"`
}

type DashboardController struct {
	store store.Store
}

func NewDashboardController(st store.Store) *DashboardController {
	return &DashboardController{store: st}
}

// GetDashboardOverview assembles the landing-page numbers: headcount,
// today's bookings, active catalog size, this month's ledger totals and
// the latest ledger rows.
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	ctx := c.Request.Context()

	customers, err := dc.store.Customers().List(ctx)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}
	appointments, err := dc.store.Appointments().List(ctx)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}
	products, err := dc.store.Products().List(ctx)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}
	records, err := dc.store.Finance().List(ctx)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve finance records")
		return
	}

	now := time.Now()
	today := utils.DateKey(now)

	todayAppointments := 0
	for _, a := range appointments {
		if strings.HasPrefix(a.Datetime, today) {
			todayAppointments++
		}
	}

	activeProducts := 0
	for _, p := range products {
		if p.Status == models.ProductStatusActive {
			activeProducts++
		}
	}

	recent := make([]RecentFinanceEntry, 0, 5)
	for _, r := range services.RecentRecords(records, 5) {
		recent = append(recent, RecentFinanceEntry{
			Title:           r.Title,
			Type:            r.Type,
			Date:            r.Date,
			FormattedAmount: services.FormatAmount(r.Amount),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"totalCustomers":    len(customers),
		"todayAppointments": todayAppointments,
		"activeProducts":    activeProducts,
		"monthlyStats":      services.CalculateMonthlyStats(records, utils.MonthKey(now)),
		"recentRecords":     recent,
	})
}
