package payload

import (
	"time"

	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/usecase"
)

type StatsResponse struct {
	TotalDonations   int64      `json:"totalDonations"`
	ActiveDonations  int64      `json:"activeDonations"`
	ClaimedDonations int64      `json:"claimedDonations"`
	TotalUsers       int64      `json:"totalUsers"`
	Donors           int64      `json:"donors"`
	Receivers        int64      `json:"receivers"`
	RecentActivity   []Activity `json:"recentActivity"`
}

type Activity struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func NewStatsResponse(s *usecase.Stats) StatsResponse {
	activity := make([]Activity, 0, len(s.RecentActivity))
	for _, a := range s.RecentActivity {
		activity = append(activity, Activity{Message: a.Message, Timestamp: a.Timestamp})
	}

	return StatsResponse{
		TotalDonations:   s.TotalDonations,
		ActiveDonations:  s.ActiveDonations,
		ClaimedDonations: s.ClaimedDonations,
		TotalUsers:       s.TotalUsers,
		Donors:           s.Donors,
		Receivers:        s.Receivers,
		RecentActivity:   activity,
	}
}
