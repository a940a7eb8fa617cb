package services

import (
	"context"
	"log"
	"vrukshaAdmin/api"
	"vrukshaAdmin/models"
)

type StatsService struct {
	ac *api.Client
}

func NewStatsService(client *api.Client) StatsService {
	return StatsService{ac: client}
}

// GetStats fetches the aggregated snapshot. A payload missing any section
// is rejected whole; the dashboard never renders a partial snapshot.
func (sts *StatsService) GetStats(ctx context.Context, token string) (stats models.Stats, err error) {
	err = sts.ac.GetJSON(ctx, token, "/stats/", &stats)
	if err != nil {
		return
	}
	if err = stats.Validate(); err != nil {
		log.Printf("GetStats: %v", err)
	}
	return
}

func (sts *StatsService) GetDashboardStats(ctx context.Context, token string) (stats models.Stats, err error) {
	err = sts.ac.GetJSON(ctx, token, "/stats/dashboard", &stats)
	if err != nil {
		return
	}
	if err = stats.Validate(); err != nil {
		log.Printf("GetDashboardStats: %v", err)
	}
	return
}
