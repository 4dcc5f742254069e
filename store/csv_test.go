package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esthecrm-backend/models"
)

func TestOpenCSV_InitializesHeaders(t *testing.T) {
	dir := t.TempDir()
	_, err := OpenCSV(dir)
	require.NoError(t, err)

	for _, name := range []string{"customers", "products", "purchases", "appointments", "finance"} {
		data, err := os.ReadFile(filepath.Join(dir, name+".csv"))
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(string(data), "id,"), "%s header: %q", name, data)
	}
}

func TestCSVStore_CRUDAndReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	st, err := OpenCSV(dir)
	require.NoError(t, err)

	customer := models.Customer{
		ID:        uuid.New(),
		Name:      "박하늘",
		Phone:     "01098765432",
		BirthDate: "1988-11-02",
		SkinType:  models.SkinTypeDry,
		Memo:      "memo with, comma and \"quotes\"",
	}
	require.NoError(t, st.Customers().Create(ctx, &customer))

	// reopen to prove persistence goes through the file, not memory
	st, err = OpenCSV(dir)
	require.NoError(t, err)

	got, err := st.Customers().Get(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "박하늘", got.Name)
	assert.Equal(t, "memo with, comma and \"quotes\"", got.Memo)

	got.Point = 500
	require.NoError(t, st.Customers().Update(ctx, got))

	customers, err := st.Customers().List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, 500, customers[0].Point)

	require.NoError(t, st.Customers().Delete(ctx, customer.ID))
	customers, err = st.Customers().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestCSVStore_UpdateAndDeleteMissing(t *testing.T) {
	ctx := context.Background()
	st, err := OpenCSV(t.TempDir())
	require.NoError(t, err)

	assert.ErrorIs(t, st.Finance().Update(ctx, &models.FinanceRecord{ID: uuid.New()}), ErrNotFound)
	assert.ErrorIs(t, st.Finance().Delete(ctx, uuid.New()), ErrNotFound)
}

func TestCSVStore_MalformedNumericRowIsCoerced(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	st, err := OpenCSV(dir)
	require.NoError(t, err)

	// simulate a hand-edited file with a bad amount
	id := uuid.NewString()
	line := id + ",2024-03-01,income,hand edited,abc,,,\n"
	f, err := os.OpenFile(filepath.Join(dir, "finance.csv"), os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString(line)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	recs, err := st.Finance().List(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 0.0, recs[0].Amount)
	assert.Equal(t, "hand edited", recs[0].Title)
}

func TestCSVStore_ShortRowsArePadded(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	st, err := OpenCSV(dir)
	require.NoError(t, err)

	// row written by an earlier schema without the trailing columns
	id := uuid.NewString()
	line := id + ",2024-03-01,expense,rent,500000\n"
	f, err := os.OpenFile(filepath.Join(dir, "finance.csv"), os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString(line)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	recs, err := st.Finance().List(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 500000.0, recs[0].Amount)
	assert.Empty(t, recs[0].Memo)
}
