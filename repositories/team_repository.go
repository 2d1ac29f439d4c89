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
	ErrTeamNotFound     = errors.New("team not found")
	ErrTeamNameConflict = errors.New("team name conflict")
)

type TeamRepository interface {
	Create(ctx context.Context, exec SQLExecutor, team *models.Team) error
	GetByID(ctx context.Context, id int) (*models.Team, error)
	GetByName(ctx context.Context, name string) (*models.Team, error)
	// CountByName counts teams with the given name, excluding the given team
	// id (0 excludes nobody).
	CountByName(ctx context.Context, name string, excludeID int) (int, error)
	Update(ctx context.Context, team *models.Team) error
	UpdateLogo(ctx context.Context, teamID int, logoKey, logoURL *string) error
	List(ctx context.Context, filter models.ListFilter) ([]models.Team, error)
	Count(ctx context.Context) (int, error)
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) Create(ctx context.Context, exec SQLExecutor, team *models.Team) error {
	if exec == nil {
		exec = r.db
	}
	query := `
		INSERT INTO teams (name, logo_url)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := exec.QueryRowContext(ctx, query, team.Name, team.LogoURL).Scan(&team.ID, &team.CreatedAt)
	if err != nil {
		return mapTeamError(err)
	}
	return nil
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	query := `SELECT id, name, logo_url, logo_key, created_at FROM teams WHERE id = $1`
	return r.scanTeam(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresTeamRepository) GetByName(ctx context.Context, name string) (*models.Team, error) {
	query := `SELECT id, name, logo_url, logo_key, created_at FROM teams WHERE name = $1`
	return r.scanTeam(r.db.QueryRowContext(ctx, query, name))
}

func (r *postgresTeamRepository) CountByName(ctx context.Context, name string, excludeID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM teams WHERE name = $1 AND id <> $2`,
		name, excludeID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count teams by name: %w", err)
	}
	return count, nil
}

func (r *postgresTeamRepository) Update(ctx context.Context, team *models.Team) error {
	query := `UPDATE teams SET name = $1, logo_url = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, team.Name, team.LogoURL, team.ID)
	if err != nil {
		return mapTeamError(err)
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) UpdateLogo(ctx context.Context, teamID int, logoKey, logoURL *string) error {
	query := `UPDATE teams SET logo_key = $1, logo_url = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, logoKey, logoURL, teamID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) List(ctx context.Context, filter models.ListFilter) ([]models.Team, error) {
	query := `SELECT id, name, logo_url, logo_key, created_at FROM teams`
	args := []interface{}{}

	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		query += ` WHERE name LIKE $1`
	}
	query, args = appendListClauses(query, filter.OrderBy, filter.Take, filter.Skip, args)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.LogoURL, &t.LogoKey, &t.CreatedAt); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *postgresTeamRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams`).Scan(&count)
	return count, err
}

func (r *postgresTeamRepository) scanTeam(row *sql.Row) (*models.Team, error) {
	t := &models.Team{}
	err := row.Scan(&t.ID, &t.Name, &t.LogoURL, &t.LogoKey, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return t, nil
}

func mapTeamError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Code == "23505" && pqErr.Constraint == "teams_name_key" {
			return ErrTeamNameConflict
		}
	}
	return err
}
