package services

import (
	"log"
	"math"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"esthecrm-backend/models"
)

// MonthlyStats aggregates the ledger rows of one calendar month.
type MonthlyStats struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	NetProfit    float64 `json:"netProfit"`
	TotalRecords int     `json:"totalRecords"`
}

// monthKeyLen is the "YYYY-MM" prefix of an ISO date.
const monthKeyLen = 7

// CalculateMonthlyStats sums income and expense amounts for the records
// whose date starts with monthKey ("YYYY-MM"). Membership is a plain string
// prefix match, so malformed dates drop out of the month instead of erroring.
// A bad amount never blanks the whole report; it is summed as zero.
func CalculateMonthlyStats(records []models.FinanceRecord, monthKey string) MonthlyStats {
	var stats MonthlyStats
	for _, r := range records {
		if !inMonth(r.Date, monthKey) {
			continue
		}
		stats.TotalRecords++
		switch r.Type {
		case models.FinanceIncome:
			stats.TotalIncome += sanitizeAmount(r)
		case models.FinanceExpense:
			stats.TotalExpense += sanitizeAmount(r)
		}
	}
	stats.NetProfit = stats.TotalIncome - stats.TotalExpense
	return stats
}

// RecentRecords returns the n records with the most recent dates, newest
// first. The sort is stable, so same-day records keep their original
// relative order.
func RecentRecords(records []models.FinanceRecord, n int) []models.FinanceRecord {
	if n <= 0 || len(records) == 0 {
		return nil
	}

	sorted := make([]models.FinanceRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

func inMonth(date, monthKey string) bool {
	return len(monthKey) == monthKeyLen &&
		len(date) >= monthKeyLen &&
		date[:monthKeyLen] == monthKey
}

func sanitizeAmount(r models.FinanceRecord) float64 {
	if math.IsNaN(r.Amount) || math.IsInf(r.Amount, 0) {
		log.Printf("finance: record %s has unusable amount, coerced to 0", r.ID)
		return 0
	}
	if r.Amount < 0 {
		log.Printf("finance: record %s has negative amount, coerced to 0", r.ID)
		return 0
	}
	return r.Amount
}

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount with thousands separators and no currency
// symbol; the caller appends its own unit.
func FormatAmount(v float64) string {
	if v == math.Trunc(v) {
		return amountPrinter.Sprintf("%.0f", v)
	}
	return amountPrinter.Sprintf("%.2f", v)
}
