package services

import (
	"context"
	"fmt"

	"github.com/acm-club/esports-backend/models"
	"github.com/acm-club/esports-backend/repositories"
)

// AdminService is the read-only listing surface behind the admin panel.
type AdminService interface {
	ListMembers(ctx context.Context, filter models.ListFilter) ([]models.Member, error)
	ListTeams(ctx context.Context, filter models.ListFilter) ([]models.Team, error)
	ListTournaments(ctx context.Context, filter models.ListFilter) ([]models.Tournament, error)
}

type adminService struct {
	memberRepo     repositories.MemberRepository
	teamRepo       repositories.TeamRepository
	tournamentRepo repositories.TournamentRepository
}

func NewAdminService(
	memberRepo repositories.MemberRepository,
	teamRepo repositories.TeamRepository,
	tournamentRepo repositories.TournamentRepository,
) AdminService {
	return &adminService{
		memberRepo:     memberRepo,
		teamRepo:       teamRepo,
		tournamentRepo: tournamentRepo,
	}
}

func (s *adminService) ListMembers(ctx context.Context, filter models.ListFilter) ([]models.Member, error) {
	members, err := s.memberRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	for i := range members {
		members[i].PasswordHash = ""
	}
	return members, nil
}

func (s *adminService) ListTeams(ctx context.Context, filter models.ListFilter) ([]models.Team, error) {
	teams, err := s.teamRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (s *adminService) ListTournaments(ctx context.Context, filter models.ListFilter) ([]models.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return tournaments, nil
}
