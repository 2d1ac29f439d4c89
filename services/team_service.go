package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/acm-club/esports-backend/models"
	"github.com/acm-club/esports-backend/repositories"
	"github.com/acm-club/esports-backend/storage"
)

type TeamInput struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}

type TeamService interface {
	Create(ctx context.Context, creatorID int, input TeamInput) (*models.Team, error)
	Update(ctx context.Context, teamID int, input TeamInput) error
	UploadLogo(ctx context.Context, teamID int, contentType string, file io.Reader) (*models.Team, error)
}

type teamService struct {
	db         *sql.DB
	teamRepo   repositories.TeamRepository
	memberRepo repositories.MemberRepository
	uploader   storage.FileUploader
}

// NewTeamService takes the db handle for the create-team transaction and an
// optional uploader (nil disables logo uploads).
func NewTeamService(
	db *sql.DB,
	teamRepo repositories.TeamRepository,
	memberRepo repositories.MemberRepository,
	uploader storage.FileUploader,
) TeamService {
	return &teamService{
		db:         db,
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		uploader:   uploader,
	}
}

func (s *teamService) Create(ctx context.Context, creatorID int, input TeamInput) (*models.Team, error) {
	if creatorID <= 0 || input.Name == "" || input.LogoURL == "" {
		return nil, ErrIncompleteInput
	}

	count, err := s.teamRepo.CountByName(ctx, input.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}
	if count > 0 {
		return nil, ErrTeamExists
	}

	team := &models.Team{
		Name:    input.Name,
		LogoURL: &input.LogoURL,
	}

	// Team insert and creator link happen in one transaction so a failed
	// member update cannot leave an orphaned team behind.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.teamRepo.Create(ctx, tx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNameConflict) {
			return nil, ErrTeamExists
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	if err := s.memberRepo.UpdateTeamID(ctx, tx, creatorID, &team.ID); err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to link creator %d to team %d: %w", creatorID, team.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit team creation: %w", err)
	}
	return team, nil
}

func (s *teamService) Update(ctx context.Context, teamID int, input TeamInput) error {
	if teamID <= 0 {
		return ErrIncompleteInput
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team %d: %w", teamID, err)
	}

	if input.Name != "" {
		// Exclude the team itself so an unchanged name does not collide.
		count, err := s.teamRepo.CountByName(ctx, input.Name, teamID)
		if err != nil {
			return fmt.Errorf("failed to check team name: %w", err)
		}
		if count > 0 {
			return ErrTeamExists
		}
		team.Name = input.Name
	}
	if input.LogoURL != "" {
		team.LogoURL = &input.LogoURL
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamNameConflict):
			return ErrTeamExists
		case errors.Is(err, repositories.ErrTeamNotFound):
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to update team %d: %w", teamID, err)
	}
	return nil
}

func (s *teamService) UploadLogo(ctx context.Context, teamID int, contentType string, file io.Reader) (*models.Team, error) {
	if s.uploader == nil {
		return nil, ErrLogoStorageUnavailable
	}
	if teamID <= 0 || contentType == "" {
		return nil, ErrIncompleteInput
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", teamID, err)
	}

	key := fmt.Sprintf("teams/%d/logo_%d", teamID, time.Now().UnixNano())
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload team logo: %w", err)
	}

	oldKey := team.LogoKey
	if err := s.teamRepo.UpdateLogo(ctx, teamID, &result.Key, &result.Location); err != nil {
		return nil, fmt.Errorf("failed to persist team logo: %w", err)
	}
	team.LogoKey = &result.Key
	team.LogoURL = &result.Location

	if oldKey != nil && *oldKey != result.Key {
		// Best effort: a stale object in the bucket is harmless.
		_ = s.uploader.Delete(ctx, *oldKey)
	}
	return team, nil
}
