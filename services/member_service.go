package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/acm-club/esports-backend/models"
	"github.com/acm-club/esports-backend/repositories"
	"golang.org/x/crypto/bcrypt"
)

type UpdateProfileInput struct {
	FirstName  string `json:"fname"`
	LastName   string `json:"lname"`
	StudentID  string `json:"student_id"`
	KattisLink string `json:"kattis_acct_link"`
	TgUsername string `json:"tg_username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

type MemberService interface {
	GetByID(ctx context.Context, id int) (*models.Member, error)
	UpdateProfile(ctx context.Context, id int, input UpdateProfileInput) error
}

type memberService struct {
	memberRepo repositories.MemberRepository
}

func NewMemberService(memberRepo repositories.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

func (s *memberService) GetByID(ctx context.Context, id int) (*models.Member, error) {
	if id <= 0 {
		return nil, ErrIncompleteInput
	}
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get member %d: %w", id, err)
	}
	return member, nil
}

func (s *memberService) UpdateProfile(ctx context.Context, id int, input UpdateProfileInput) error {
	if id <= 0 || input.FirstName == "" || input.LastName == "" || input.StudentID == "" ||
		input.KattisLink == "" || input.TgUsername == "" || input.Email == "" || input.Password == "" {
		return ErrIncompleteInput
	}

	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to get member %d: %w", id, err)
	}

	// Re-check uniqueness of the new values against everyone else. The row
	// being updated is excluded so an unchanged unique field cannot collide
	// with itself.
	count, err := s.memberRepo.CountConflicts(ctx, input.StudentID, input.KattisLink, input.TgUsername, input.Email, id)
	if err != nil {
		return fmt.Errorf("failed to check for conflicting members: %w", err)
	}
	if count > 0 {
		return ErrUserExists
	}

	// The password is re-hashed with a fresh salt on every update, even when
	// the submitted value is unchanged.
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	member.FirstName = input.FirstName
	member.LastName = input.LastName
	member.StudentID = input.StudentID
	member.KattisLink = input.KattisLink
	member.TgUsername = input.TgUsername
	member.Email = input.Email
	member.PasswordHash = string(hash)

	if err := s.memberRepo.Update(ctx, member); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMemberConflict):
			return ErrUserExists
		case errors.Is(err, repositories.ErrMemberNotFound):
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to update member %d: %w", id, err)
	}
	return nil
}
