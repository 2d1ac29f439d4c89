package services

import (
	"context"

	"github.com/acm-club/esports-backend/models"
	"github.com/acm-club/esports-backend/repositories"
	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	GetStats(ctx context.Context) (models.DashboardStats, error)
}

type dashboardService struct {
	memberRepo      repositories.MemberRepository
	teamRepo        repositories.TeamRepository
	tournamentRepo  repositories.TournamentRepository
	applicationRepo repositories.ApplicationRepository
	invitationRepo  repositories.InvitationRepository
}

func NewDashboardService(
	memberRepo repositories.MemberRepository,
	teamRepo repositories.TeamRepository,
	tournamentRepo repositories.TournamentRepository,
	applicationRepo repositories.ApplicationRepository,
	invitationRepo repositories.InvitationRepository,
) DashboardService {
	return &dashboardService{
		memberRepo:      memberRepo,
		teamRepo:        teamRepo,
		tournamentRepo:  tournamentRepo,
		applicationRepo: applicationRepo,
		invitationRepo:  invitationRepo,
	}
}

// GetStats gathers the five counters concurrently; any failing count fails
// the whole request.
func (s *dashboardService) GetStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.MembersTotal, err = s.memberRepo.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TeamsTotal, err = s.teamRepo.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TournamentsTotal, err = s.tournamentRepo.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.ApplicationsTotal, err = s.applicationRepo.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.PendingInvitations, err = s.invitationRepo.CountPending(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.DashboardStats{}, err
	}
	return stats, nil
}
