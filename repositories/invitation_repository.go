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
	ErrInvitationNotFound      = errors.New("invitation not found")
	ErrInvitationMemberInvalid = errors.New("invitation member reference invalid")
	ErrInvitationTeamInvalid   = errors.New("invitation team reference invalid")
	// ErrInvitationNotPending is returned by UpdateStatus when the row exists
	// but has already left the pending state.
	ErrInvitationNotPending = errors.New("invitation is not pending")
)

type InvitationRepository interface {
	Create(ctx context.Context, invitation *models.Invitation) error
	GetByID(ctx context.Context, id int) (*models.Invitation, error)
	ListByMemberID(ctx context.Context, memberID int) ([]models.Invitation, error)
	// UpdateStatus transitions a pending invitation. The WHERE guard makes
	// the pending -> resolved transition race-safe.
	UpdateStatus(ctx context.Context, exec SQLExecutor, id int, status models.InvitationStatus) error
	CountPending(ctx context.Context) (int, error)
}

type postgresInvitationRepository struct {
	db *sql.DB
}

func NewPostgresInvitationRepository(db *sql.DB) InvitationRepository {
	return &postgresInvitationRepository{db: db}
}

const invitationColumns = `id, member_id, invitor_id, team_id, team_name, status, created_at`

func (r *postgresInvitationRepository) Create(ctx context.Context, inv *models.Invitation) error {
	query := `
		INSERT INTO invitations (member_id, invitor_id, team_id, team_name, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		inv.MemberID,
		inv.InvitorID,
		inv.TeamID,
		inv.TeamName,
		inv.Status,
	).Scan(&inv.ID, &inv.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			switch pqErr.Constraint {
			case "invitations_member_id_fkey", "invitations_invitor_id_fkey":
				return ErrInvitationMemberInvalid
			case "invitations_team_id_fkey":
				return ErrInvitationTeamInvalid
			}
		}
		return fmt.Errorf("failed to create invitation: %w", err)
	}
	return nil
}

func (r *postgresInvitationRepository) GetByID(ctx context.Context, id int) (*models.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE id = $1`

	inv := &models.Invitation{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&inv.ID,
		&inv.MemberID,
		&inv.InvitorID,
		&inv.TeamID,
		&inv.TeamName,
		&inv.Status,
		&inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *postgresInvitationRepository) ListByMemberID(ctx context.Context, memberID int) ([]models.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE member_id = $1`

	rows, err := r.db.QueryContext(ctx, query, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invitations := make([]models.Invitation, 0)
	for rows.Next() {
		var inv models.Invitation
		if err := rows.Scan(
			&inv.ID,
			&inv.MemberID,
			&inv.InvitorID,
			&inv.TeamID,
			&inv.TeamName,
			&inv.Status,
			&inv.CreatedAt,
		); err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}
	return invitations, rows.Err()
}

func (r *postgresInvitationRepository) UpdateStatus(ctx context.Context, exec SQLExecutor, id int, status models.InvitationStatus) error {
	if exec == nil {
		exec = r.db
	}
	query := `UPDATE invitations SET status = $1 WHERE id = $2 AND status = 'pending'`
	result, err := exec.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrInvitationNotPending)
}

func (r *postgresInvitationRepository) CountPending(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM invitations WHERE status = 'pending'`).Scan(&count)
	return count, err
}
