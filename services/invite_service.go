package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/acm-club/esports-backend/models"
	"github.com/acm-club/esports-backend/notifications"
	"github.com/acm-club/esports-backend/repositories"
)

const decisionAccept = "accept"

type InviteService interface {
	// Invite creates a pending invitation for the member matching the
	// identifier (student id, email or telegram username).
	Invite(ctx context.Context, invitorID int, teamName, identifier string) (*models.Invitation, error)
	ListNotifications(ctx context.Context, memberID int) ([]models.Invitation, error)
	// Resolve transitions a pending invitation: decision "accept" joins the
	// member to the invitation's team, anything else declines.
	Resolve(ctx context.Context, memberID, invitationID int, decision string) error
}

type inviteService struct {
	db         *sql.DB
	inviteRepo repositories.InvitationRepository
	teamRepo   repositories.TeamRepository
	memberRepo repositories.MemberRepository
	hub        *notifications.Hub
}

// NewInviteService takes the db handle for the accept transaction and an
// optional hub (nil disables websocket pushes).
func NewInviteService(
	db *sql.DB,
	inviteRepo repositories.InvitationRepository,
	teamRepo repositories.TeamRepository,
	memberRepo repositories.MemberRepository,
	hub *notifications.Hub,
) InviteService {
	return &inviteService{
		db:         db,
		inviteRepo: inviteRepo,
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		hub:        hub,
	}
}

func (s *inviteService) Invite(ctx context.Context, invitorID int, teamName, identifier string) (*models.Invitation, error) {
	if invitorID <= 0 || teamName == "" || identifier == "" {
		return nil, ErrIncompleteInput
	}

	target, err := s.memberRepo.FindByAnyHandle(ctx, identifier)
	if err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve invite target %q: %w", identifier, err)
	}

	// Resolve the team id once, here, so the invitation survives renames.
	team, err := s.teamRepo.GetByName(ctx, teamName)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to resolve team %q: %w", teamName, err)
	}

	invitation := &models.Invitation{
		MemberID:  target.ID,
		InvitorID: invitorID,
		TeamID:    team.ID,
		TeamName:  team.Name,
		Status:    models.InvitationPending,
	}
	if err := s.inviteRepo.Create(ctx, invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	if s.hub != nil {
		s.hub.NotifyMember(target.ID, notifications.Event{
			Type:    notifications.EventInvitationCreated,
			Payload: invitation,
		})
	}
	return invitation, nil
}

func (s *inviteService) ListNotifications(ctx context.Context, memberID int) ([]models.Invitation, error) {
	if memberID <= 0 {
		return nil, ErrIncompleteInput
	}
	// All invitations addressed to the member, resolved ones included.
	invitations, err := s.inviteRepo.ListByMemberID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations for member %d: %w", memberID, err)
	}
	return invitations, nil
}

func (s *inviteService) Resolve(ctx context.Context, memberID, invitationID int, decision string) error {
	if memberID <= 0 || invitationID <= 0 || decision == "" {
		return ErrIncompleteInput
	}

	invitation, err := s.inviteRepo.GetByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, repositories.ErrInvitationNotFound) {
			return ErrInviteNotFound
		}
		return fmt.Errorf("failed to get invitation %d: %w", invitationID, err)
	}
	if invitation.Status != models.InvitationPending {
		return ErrInviteAlreadyResolved
	}

	if decision != decisionAccept {
		if err := s.inviteRepo.UpdateStatus(ctx, nil, invitationID, models.InvitationDeclined); err != nil {
			if errors.Is(err, repositories.ErrInvitationNotPending) {
				return ErrInviteAlreadyResolved
			}
			return fmt.Errorf("failed to decline invitation %d: %w", invitationID, err)
		}
		return nil
	}

	// Accept: status flip and team link stand or fall together.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.inviteRepo.UpdateStatus(ctx, tx, invitationID, models.InvitationAccepted); err != nil {
		if errors.Is(err, repositories.ErrInvitationNotPending) {
			return ErrInviteAlreadyResolved
		}
		return fmt.Errorf("failed to accept invitation %d: %w", invitationID, err)
	}

	if err := s.memberRepo.UpdateTeamID(ctx, tx, memberID, &invitation.TeamID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMemberNotFound):
			return ErrUserNotFound
		case errors.Is(err, repositories.ErrMemberTeamInvalid):
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to link member %d to team %d: %w", memberID, invitation.TeamID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit invitation accept: %w", err)
	}
	return nil
}
