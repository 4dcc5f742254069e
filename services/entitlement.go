package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"esthecrm-backend/models"
)

// VoucherBalance is the remaining usable session count for one product.
type VoucherBalance struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Remaining   int       `json:"remaining"`
}

// RemainingSessions computes how many sessions a customer can still use per
// product. One purchased unit grants the product's unit count of sessions;
// every appointment against the product consumes one, whatever its status.
// Only strictly positive balances are returned, and purchases of a product
// that no longer exists are dropped since there is nothing to name them by.
// The result is sorted by product name so repeated calls over the same
// snapshot are identical.
func RemainingSessions(customerID uuid.UUID, purchases []models.Purchase, appointments []models.Appointment, products []models.Product) []VoucherBalance {
	purchased := make(map[uuid.UUID]int)
	for _, p := range purchases {
		if p.CustomerID != customerID {
			continue
		}
		if p.Quantity > 0 {
			purchased[p.ProductID] += p.Quantity
		}
	}
	if len(purchased) == 0 {
		return nil
	}

	consumed := make(map[uuid.UUID]int)
	for _, a := range appointments {
		if a.CustomerID == customerID {
			consumed[a.ProductID]++
		}
	}

	productByID := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	var balances []VoucherBalance
	for productID, qty := range purchased {
		product, ok := productByID[productID]
		if !ok {
			continue
		}
		remaining := qty*product.UnitCount() - consumed[productID]
		if remaining <= 0 {
			continue
		}
		balances = append(balances, VoucherBalance{
			ProductID:   productID,
			ProductName: product.Name,
			Remaining:   remaining,
		})
	}

	sort.Slice(balances, func(i, j int) bool {
		if balances[i].ProductName != balances[j].ProductName {
			return balances[i].ProductName < balances[j].ProductName
		}
		return balances[i].ProductID.String() < balances[j].ProductID.String()
	})
	return balances
}

// FormatVoucherBalances renders balances as "<name>: <n> sessions" joined
// with commas, the line shown on the customer detail screen.
func FormatVoucherBalances(balances []VoucherBalance) string {
	parts := make([]string, 0, len(balances))
	for _, b := range balances {
		parts = append(parts, fmt.Sprintf("%s: %d sessions", b.ProductName, b.Remaining))
	}
	return strings.Join(parts, ", ")
}
