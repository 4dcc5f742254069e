package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esthecrm-backend/routes"
	"esthecrm-backend/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	st := store.NewMemoryStore()
	return routes.SetupRouter(st, []string{"http://localhost:3000"}), st
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createFinanceRecord(t *testing.T, r *gin.Engine, date, typ, title string, amount float64) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/finance", gin.H{
		"date": date, "type": typ, "title": title, "amount": amount,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestFinanceMonthlyStatsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	createFinanceRecord(t, r, "2024-03-01", "income", "package sale", 1000)
	createFinanceRecord(t, r, "2024-03-15", "expense", "supplies", 400)
	createFinanceRecord(t, r, "2024-04-01", "income", "next month", 9999)

	w := doJSON(t, r, http.MethodGet, "/api/finance/stats?month=2024-03", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Month string `json:"month"`
		Stats struct {
			TotalIncome  float64 `json:"totalIncome"`
			TotalExpense float64 `json:"totalExpense"`
			NetProfit    float64 `json:"netProfit"`
			TotalRecords int     `json:"totalRecords"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2024-03", resp.Month)
	assert.Equal(t, 1000.0, resp.Stats.TotalIncome)
	assert.Equal(t, 400.0, resp.Stats.TotalExpense)
	assert.Equal(t, 600.0, resp.Stats.NetProfit)
	assert.Equal(t, 2, resp.Stats.TotalRecords)
}

func TestFinanceMonthlyStatsEndpoint_BadMonth(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/finance/stats?month=march", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFinanceRecentEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	createFinanceRecord(t, r, "2024-01-01", "income", "oldest", 1)
	createFinanceRecord(t, r, "2024-03-01", "income", "newest", 2)
	createFinanceRecord(t, r, "2024-02-01", "income", "middle", 3)

	w := doJSON(t, r, http.MethodGet, "/api/finance/recent?limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var recent []struct {
		Date  string `json:"date"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recent))
	require.Len(t, recent, 2)
	assert.Equal(t, "2024-03-01", recent[0].Date)
	assert.Equal(t, "2024-02-01", recent[1].Date)
}

func TestFinanceCreateValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/finance", gin.H{
		"date": "2024-03-01", "type": "transfer", "title": "bad type", "amount": 10,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFinanceUpdateAndDelete(t *testing.T) {
	r, st := newTestRouter(t)

	createFinanceRecord(t, r, "2024-03-01", "income", "editable", 100)
	recs, err := st.Finance().List(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	id := recs[0].ID

	w := doJSON(t, r, http.MethodPut, "/api/finance/"+id.String(), gin.H{"amount": 250.0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updated, err := st.Finance().Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 250.0, updated.Amount)

	w = doJSON(t, r, http.MethodDelete, "/api/finance/"+id.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/finance/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboardOverview(t *testing.T) {
	r, _ := newTestRouter(t)

	createFinanceRecord(t, r, "2024-03-01", "income", "sale", 1000)

	w := doJSON(t, r, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for _, key := range []string{"totalCustomers", "todayAppointments", "activeProducts", "monthlyStats", "recentRecords"} {
		assert.Contains(t, resp, key, fmt.Sprintf("dashboard payload missing %s", key))
	}
}
