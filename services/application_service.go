package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/acm-club/esports-backend/models"
	"github.com/acm-club/esports-backend/repositories"
)

type ApplicationService interface {
	// Apply enters a member (cup) or their team (league) into a tournament.
	// A team id with a cup tournament, or a missing team id with a league
	// tournament, is rejected as incomplete input.
	Apply(ctx context.Context, memberID, tournamentID int, teamID *int) (*models.Application, error)
}

type applicationService struct {
	applicationRepo repositories.ApplicationRepository
	tournamentRepo  repositories.TournamentRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	tournamentRepo repositories.TournamentRepository,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		tournamentRepo:  tournamentRepo,
	}
}

func (s *applicationService) Apply(ctx context.Context, memberID, tournamentID int, teamID *int) (*models.Application, error) {
	if memberID <= 0 || tournamentID <= 0 {
		return nil, ErrIncompleteInput
	}

	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %d: %w", tournamentID, err)
	}

	application := &models.Application{TournamentID: tournamentID}
	switch {
	case tournament.Type == models.TournamentCup && teamID == nil:
		application.MemberID = &memberID
	case tournament.Type == models.TournamentLeague && teamID != nil:
		application.TeamID = teamID
	default:
		return nil, ErrIncompleteInput
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		switch {
		case errors.Is(err, repositories.ErrApplicationConflict):
			return nil, ErrRegistrationConflict
		case errors.Is(err, repositories.ErrApplicationTournamentInvalid):
			return nil, ErrTournamentNotFound
		case errors.Is(err, repositories.ErrApplicationTeamInvalid):
			return nil, ErrTeamNotFound
		case errors.Is(err, repositories.ErrApplicationMemberInvalid):
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return application, nil
}
