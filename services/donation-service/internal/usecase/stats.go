package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/model"
	"github.com/vasapolrittideah/food-share-api/services/donation-service/internal/repository"
)

// recentActivityLimit is how many of the newest donations the dashboard shows.
const recentActivityLimit = 5

// StatsUsecase aggregates dashboard figures over users and donations.
type StatsUsecase interface {
	GetStats(ctx context.Context) (*Stats, error)
}

// Stats is a point-in-time snapshot; the counts are read one after another and are
// not consistent with each other under concurrent writes.
type Stats struct {
	TotalDonations   int64
	ActiveDonations  int64
	ClaimedDonations int64
	TotalUsers       int64
	Donors           int64
	Receivers        int64
	RecentActivity   []Activity
}

// Activity is a one-line summary of a donation for the activity feed.
type Activity struct {
	Message   string
	Timestamp time.Time
}

type statsUsecase struct {
	userRepo     repository.UserRepository
	donationRepo repository.DonationRepository
}

func NewStatsUsecase(userRepo repository.UserRepository, donationRepo repository.DonationRepository) StatsUsecase {
	return &statsUsecase{
		userRepo:     userRepo,
		donationRepo: donationRepo,
	}
}

func (u *statsUsecase) GetStats(ctx context.Context) (*Stats, error) {
	available := model.DonationStatusAvailable
	claimed := model.DonationStatusClaimed
	donor := model.UserTypeDonor
	receiver := model.UserTypeReceiver

	var (
		stats Stats
		err   error
	)

	donationCounts := []struct {
		dst    *int64
		params repository.FilterDonationsParams
	}{
		{&stats.TotalDonations, repository.FilterDonationsParams{}},
		{&stats.ActiveDonations, repository.FilterDonationsParams{Status: &available}},
		{&stats.ClaimedDonations, repository.FilterDonationsParams{Status: &claimed}},
	}
	for _, c := range donationCounts {
		if *c.dst, err = u.donationRepo.CountDonations(ctx, c.params); err != nil {
			return nil, fmt.Errorf("count donations: %w", err)
		}
	}

	userCounts := []struct {
		dst    *int64
		params repository.FilterUsersParams
	}{
		{&stats.TotalUsers, repository.FilterUsersParams{}},
		{&stats.Donors, repository.FilterUsersParams{UserType: &donor}},
		{&stats.Receivers, repository.FilterUsersParams{UserType: &receiver}},
	}
	for _, c := range userCounts {
		if *c.dst, err = u.userRepo.CountUsers(ctx, c.params); err != nil {
			return nil, fmt.Errorf("count users: %w", err)
		}
	}

	recent, err := u.donationRepo.ListDonations(ctx, repository.FilterDonationsParams{Limit: recentActivityLimit})
	if err != nil {
		return nil, fmt.Errorf("list recent donations: %w", err)
	}

	stats.RecentActivity = make([]Activity, 0, len(recent))
	for _, d := range recent {
		stats.RecentActivity = append(stats.RecentActivity, Activity{
			Message:   DescribeDonation(d),
			Timestamp: d.CreatedAt,
		})
	}

	return &stats, nil
}

// DescribeDonation renders the activity-feed line for a donation.
func DescribeDonation(d *model.Donation) string {
	return fmt.Sprintf("%s donated %s - Status: %s", d.DonorName, d.FoodName, d.Status)
}
