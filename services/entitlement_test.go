package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esthecrm-backend/models"
)

func voucherFixture() (customerID uuid.UUID, product models.Product) {
	customerID = uuid.New()
	product = models.Product{
		ID:    uuid.New(),
		Name:  "Facial 3-pack",
		Type:  models.ProductTypeVoucher,
		Count: 3,
	}
	return customerID, product
}

func appointmentsAgainst(customerID, productID uuid.UUID, n int) []models.Appointment {
	apps := make([]models.Appointment, n)
	for i := range apps {
		apps[i] = models.Appointment{
			ID:         uuid.New(),
			CustomerID: customerID,
			ProductID:  productID,
			Datetime:   "2024-03-01T10:00",
			Status:     models.AppointmentCompleted,
		}
	}
	return apps
}

func TestRemainingSessions_NoPurchases(t *testing.T) {
	customerID, product := voucherFixture()

	got := RemainingSessions(customerID, nil, nil, []models.Product{product})
	assert.Empty(t, got)
}

func TestRemainingSessions_FullBalance(t *testing.T) {
	customerID, product := voucherFixture()
	purchases := []models.Purchase{{
		ID:         uuid.New(),
		CustomerID: customerID,
		ProductID:  product.ID,
		Quantity:   2,
	}}

	got := RemainingSessions(customerID, purchases, nil, []models.Product{product})
	require.Len(t, got, 1)
	assert.Equal(t, "Facial 3-pack", got[0].ProductName)
	assert.Equal(t, 6, got[0].Remaining) // 2 units * 3 sessions
}

func TestRemainingSessions_PartiallyConsumed(t *testing.T) {
	customerID, product := voucherFixture()
	purchases := []models.Purchase{{
		ID:         uuid.New(),
		CustomerID: customerID,
		ProductID:  product.ID,
		Quantity:   2,
	}}
	apps := appointmentsAgainst(customerID, product.ID, 4)

	got := RemainingSessions(customerID, purchases, apps, []models.Product{product})
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Remaining)
}

func TestRemainingSessions_ExhaustedIsHidden(t *testing.T) {
	customerID, product := voucherFixture()
	purchases := []models.Purchase{{
		ID:         uuid.New(),
		CustomerID: customerID,
		ProductID:  product.ID,
		Quantity:   2,
	}}

	for _, n := range []int{6, 7, 10} {
		apps := appointmentsAgainst(customerID, product.ID, n)
		got := RemainingSessions(customerID, purchases, apps, []models.Product{product})
		assert.Empty(t, got, "with %d appointments", n)
	}
}

func TestRemainingSessions_ConsumesRegardlessOfStatus(t *testing.T) {
	customerID, product := voucherFixture()
	purchases := []models.Purchase{{
		ID:         uuid.New(),
		CustomerID: customerID,
		ProductID:  product.ID,
		Quantity:   1,
	}}
	apps := []models.Appointment{
		{ID: uuid.New(), CustomerID: customerID, ProductID: product.ID, Status: models.AppointmentCancelled},
		{ID: uuid.New(), CustomerID: customerID, ProductID: product.ID, Status: models.AppointmentNoShow},
	}

	got := RemainingSessions(customerID, purchases, apps, []models.Product{product})
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Remaining)
}

func TestRemainingSessions_UnknownProductDropped(t *testing.T) {
	customerID, product := voucherFixture()
	purchases := []models.Purchase{
		{ID: uuid.New(), CustomerID: customerID, ProductID: product.ID, Quantity: 1},
		{ID: uuid.New(), CustomerID: customerID, ProductID: uuid.New(), Quantity: 5}, // product deleted
	}

	got := RemainingSessions(customerID, purchases, nil, []models.Product{product})
	require.Len(t, got, 1)
	assert.Equal(t, product.ID, got[0].ProductID)
}

func TestRemainingSessions_UnitCountDefaultsToOne(t *testing.T) {
	customerID := uuid.New()
	product := models.Product{ID: uuid.New(), Name: "Single care", Count: 0}
	purchases := []models.Purchase{{
		ID:         uuid.New(),
		CustomerID: customerID,
		ProductID:  product.ID,
		Quantity:   4,
	}}

	got := RemainingSessions(customerID, purchases, nil, []models.Product{product})
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].Remaining)
}

func TestRemainingSessions_OtherCustomersIgnored(t *testing.T) {
	customerID, product := voucherFixture()
	stranger := uuid.New()
	purchases := []models.Purchase{
		{ID: uuid.New(), CustomerID: customerID, ProductID: product.ID, Quantity: 1},
		{ID: uuid.New(), CustomerID: stranger, ProductID: product.ID, Quantity: 9},
	}
	apps := appointmentsAgainst(stranger, product.ID, 2)

	got := RemainingSessions(customerID, purchases, apps, []models.Product{product})
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Remaining)
}

func TestRemainingSessions_Idempotent(t *testing.T) {
	customerID := uuid.New()
	products := []models.Product{
		{ID: uuid.New(), Name: "Body care 5-pack", Count: 5},
		{ID: uuid.New(), Name: "Aqua peel", Count: 1},
		{ID: uuid.New(), Name: "Facial 3-pack", Count: 3},
	}
	var purchases []models.Purchase
	for _, p := range products {
		purchases = append(purchases, models.Purchase{
			ID: uuid.New(), CustomerID: customerID, ProductID: p.ID, Quantity: 2,
		})
	}

	first := RemainingSessions(customerID, purchases, nil, products)
	second := RemainingSessions(customerID, purchases, nil, products)
	assert.Equal(t, first, second)
	assert.Equal(t, FormatVoucherBalances(first), FormatVoucherBalances(second))

	// sorted by product name
	require.Len(t, first, 3)
	assert.Equal(t, "Aqua peel", first[0].ProductName)
	assert.Equal(t, "Body care 5-pack", first[1].ProductName)
	assert.Equal(t, "Facial 3-pack", first[2].ProductName)
}

func TestFormatVoucherBalances(t *testing.T) {
	balances := []VoucherBalance{
		{ProductName: "Aqua peel", Remaining: 2},
		{ProductName: "Facial 3-pack", Remaining: 6},
	}
	assert.Equal(t, "Aqua peel: 2 sessions, Facial 3-pack: 6 sessions", FormatVoucherBalances(balances))
	assert.Equal(t, "", FormatVoucherBalances(nil))
}
