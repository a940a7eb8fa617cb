package services

import (
	"context"
	"net/http"
	"testing"
	"vrukshaAdmin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statsPayload = `{
	"users": {"total": 120, "businessUsers": 12},
	"inventory": {"categories": 8, "products": 64},
	"orders": {"total": 200, "scheduled": 5, "processing": 20, "delivered": 160, "canceled": 15},
	"businessOrders": {"total": 9, "quotedAmount": 45000},
	"finance": {"totalIncome": 312500.5}
}`

func TestGetDashboardStats(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stats/dashboard", r.URL.Path)
		w.Write([]byte(statsPayload))
	})
	sts := NewStatsService(client)

	stats, err := sts.GetDashboardStats(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, 120, stats.Users.Total)
	assert.Equal(t, 64, stats.Inventory.Products)
	assert.Equal(t, 5, stats.Orders.Scheduled)
	assert.Equal(t, 45000.0, stats.BusinessOrders.QuotedAmount)
	assert.Equal(t, 312500.5, stats.Finance.TotalIncome)
}

func TestGetStatsRejectsMissingSection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stats/", r.URL.Path)
		w.Write([]byte(`{
			"users": {"total": 120, "businessUsers": 12},
			"inventory": {"categories": 8, "products": 64},
			"orders": {"total": 200},
			"businessOrders": {"total": 9}
		}`))
	})
	sts := NewStatsService(client)

	_, err := sts.GetStats(context.Background(), "t1")
	assert.ErrorIs(t, err, models.ErrInvalidResponse)
}
