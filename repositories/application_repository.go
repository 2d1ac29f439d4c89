package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/acm-club/esports-backend/models"
	"github.com/lib/pq"
)

var (
	ErrApplicationConflict          = errors.New("application conflict: member or team already applied")
	ErrApplicationMemberInvalid     = errors.New("application member reference invalid")
	ErrApplicationTeamInvalid       = errors.New("application team reference invalid")
	ErrApplicationTournamentInvalid = errors.New("application tournament reference invalid")
	ErrApplicationSideViolation     = errors.New("application must reference exactly one of member or team")
)

type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	Count(ctx context.Context) (int, error)
}

type postgresApplicationRepository struct {
	db *sql.DB
}

func NewPostgresApplicationRepository(db *sql.DB) ApplicationRepository {
	return &postgresApplicationRepository{db: db}
}

func (r *postgresApplicationRepository) Create(ctx context.Context, a *models.Application) error {
	query := `
		INSERT INTO applications (member_id, team_id, tournament_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		a.MemberID,
		a.TeamID,
		a.TournamentID,
	).Scan(&a.ID, &a.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505": // unique_violation
				if pqErr.Constraint == "applications_member_id_tournament_id_key" ||
					pqErr.Constraint == "applications_team_id_tournament_id_key" {
					return ErrApplicationConflict
				}
			case "23503": // foreign_key_violation
				switch pqErr.Constraint {
				case "applications_member_id_fkey":
					return ErrApplicationMemberInvalid
				case "applications_team_id_fkey":
					return ErrApplicationTeamInvalid
				case "applications_tournament_id_fkey":
					return ErrApplicationTournamentInvalid
				}
			case "23514": // check_violation
				if pqErr.Constraint == "chk_application_side" {
					return ErrApplicationSideViolation
				}
			}
		}
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

func (r *postgresApplicationRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications`).Scan(&count)
	return count, err
}
