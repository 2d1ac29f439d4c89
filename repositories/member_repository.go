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
	ErrMemberNotFound    = errors.New("member not found")
	ErrMemberConflict    = errors.New("member unique field conflict")
	ErrMemberTeamInvalid = errors.New("member team reference invalid")
)

type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id int) (*models.Member, error)
	// FindByLoginIdentifier resolves a login identifier: email or student id.
	FindByLoginIdentifier(ctx context.Context, identifier string) (*models.Member, error)
	// FindByAnyHandle resolves an invite identifier: student id, email or
	// telegram username.
	FindByAnyHandle(ctx context.Context, identifier string) (*models.Member, error)
	// CountConflicts counts members sharing any of the unique fields,
	// excluding the given member id (0 excludes nobody).
	CountConflicts(ctx context.Context, studentID, kattisLink, tgUsername, email string, excludeID int) (int, error)
	Update(ctx context.Context, member *models.Member) error
	UpdateTeamID(ctx context.Context, exec SQLExecutor, memberID int, teamID *int) error
	List(ctx context.Context, filter models.ListFilter) ([]models.Member, error)
	Count(ctx context.Context) (int, error)
}

type postgresMemberRepository struct {
	db *sql.DB
}

func NewPostgresMemberRepository(db *sql.DB) MemberRepository {
	return &postgresMemberRepository{db: db}
}

const memberColumns = `id, fname, lname, student_id, kattis_acct_link, tg_username, email, password_hash, role, team_id, registered_at`

func (r *postgresMemberRepository) Create(ctx context.Context, m *models.Member) error {
	query := `
		INSERT INTO members (fname, lname, student_id, kattis_acct_link, tg_username, email, password_hash, role, team_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, registered_at`

	err := r.db.QueryRowContext(ctx, query,
		m.FirstName,
		m.LastName,
		m.StudentID,
		m.KattisLink,
		m.TgUsername,
		m.Email,
		m.PasswordHash,
		m.Role,
		m.TeamID,
	).Scan(&m.ID, &m.RegisteredAt)

	if err != nil {
		return mapMemberError(err)
	}
	return nil
}

func (r *postgresMemberRepository) GetByID(ctx context.Context, id int) (*models.Member, error) {
	query := `
		SELECT
			m.id, m.fname, m.lname, m.student_id, m.kattis_acct_link, m.tg_username,
			m.email, m.password_hash, m.role, m.team_id, m.registered_at,
			t.id, t.name, t.logo_url, t.created_at
		FROM members m
		LEFT JOIN teams t ON m.team_id = t.id
		WHERE m.id = $1`

	var member models.Member
	var teamID sql.NullInt64
	var teamName sql.NullString
	var teamLogoURL sql.NullString
	var teamCreatedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&member.ID,
		&member.FirstName,
		&member.LastName,
		&member.StudentID,
		&member.KattisLink,
		&member.TgUsername,
		&member.Email,
		&member.PasswordHash,
		&member.Role,
		&member.TeamID,
		&member.RegisteredAt,
		&teamID,
		&teamName,
		&teamLogoURL,
		&teamCreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to scan member with team: %w", err)
	}

	if teamID.Valid {
		team := models.Team{
			ID:        int(teamID.Int64),
			Name:      teamName.String,
			CreatedAt: teamCreatedAt.Time,
		}
		if teamLogoURL.Valid {
			team.LogoURL = &teamLogoURL.String
		}
		member.Team = &team
	}

	return &member, nil
}

func (r *postgresMemberRepository) FindByLoginIdentifier(ctx context.Context, identifier string) (*models.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE email = $1 OR student_id = $1`
	return r.scanMember(ctx, query, identifier)
}

func (r *postgresMemberRepository) FindByAnyHandle(ctx context.Context, identifier string) (*models.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE student_id = $1 OR email = $1 OR tg_username = $1`
	return r.scanMember(ctx, query, identifier)
}

func (r *postgresMemberRepository) CountConflicts(ctx context.Context, studentID, kattisLink, tgUsername, email string, excludeID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM members
		WHERE (student_id = $1 OR kattis_acct_link = $2 OR tg_username = $3 OR email = $4)
		  AND id <> $5`

	var count int
	err := r.db.QueryRowContext(ctx, query, studentID, kattisLink, tgUsername, email, excludeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count conflicting members: %w", err)
	}
	return count, nil
}

func (r *postgresMemberRepository) Update(ctx context.Context, m *models.Member) error {
	query := `
		UPDATE members SET
			fname = $1,
			lname = $2,
			student_id = $3,
			kattis_acct_link = $4,
			tg_username = $5,
			email = $6,
			password_hash = $7,
			role = $8,
			team_id = $9
		WHERE id = $10`

	result, err := r.db.ExecContext(ctx, query,
		m.FirstName,
		m.LastName,
		m.StudentID,
		m.KattisLink,
		m.TgUsername,
		m.Email,
		m.PasswordHash,
		m.Role,
		m.TeamID,
		m.ID,
	)
	if err != nil {
		return mapMemberError(err)
	}
	return checkAffectedRows(result, ErrMemberNotFound)
}

func (r *postgresMemberRepository) UpdateTeamID(ctx context.Context, exec SQLExecutor, memberID int, teamID *int) error {
	if exec == nil {
		exec = r.db
	}
	query := `UPDATE members SET team_id = $1 WHERE id = $2`
	result, err := exec.ExecContext(ctx, query, teamID, memberID)
	if err != nil {
		return mapMemberError(err)
	}
	return checkAffectedRows(result, ErrMemberNotFound)
}

func (r *postgresMemberRepository) List(ctx context.Context, filter models.ListFilter) ([]models.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members`
	args := []interface{}{}

	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		query += ` WHERE fname LIKE $1 OR lname LIKE $1 OR student_id LIKE $1 OR email LIKE $1 OR tg_username LIKE $1`
	}
	query, args = appendListClauses(query, filter.OrderBy, filter.Take, filter.Skip, args)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]models.Member, 0)
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(
			&m.ID,
			&m.FirstName,
			&m.LastName,
			&m.StudentID,
			&m.KattisLink,
			&m.TgUsername,
			&m.Email,
			&m.PasswordHash,
			&m.Role,
			&m.TeamID,
			&m.RegisteredAt,
		); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *postgresMemberRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM members`).Scan(&count)
	return count, err
}

func (r *postgresMemberRepository) scanMember(ctx context.Context, query string, args ...interface{}) (*models.Member, error) {
	m := &models.Member{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&m.ID,
		&m.FirstName,
		&m.LastName,
		&m.StudentID,
		&m.KattisLink,
		&m.TgUsername,
		&m.Email,
		&m.PasswordHash,
		&m.Role,
		&m.TeamID,
		&m.RegisteredAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return m, nil
}

// mapMemberError translates postgres constraint violations into sentinel
// errors. The unique constraints are the backstop behind the service-level
// existence pre-checks.
func mapMemberError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505": // unique_violation
			switch pqErr.Constraint {
			case "members_email_key",
				"members_student_id_key",
				"members_kattis_acct_link_key",
				"members_tg_username_key":
				return ErrMemberConflict
			}
		case "23503": // foreign_key_violation
			if pqErr.Constraint == "members_team_id_fkey" {
				return ErrMemberTeamInvalid
			}
		}
	}
	return err
}
