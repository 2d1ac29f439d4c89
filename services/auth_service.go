package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/acm-club/esports-backend/models"
	"github.com/acm-club/esports-backend/repositories"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	FirstName  string `json:"fname"`
	LastName   string `json:"lname"`
	StudentID  string `json:"student_id"`
	KattisLink string `json:"kattis_acct_link"`
	TgUsername string `json:"tg_username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

type LoginInput struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.Member, error)
	Login(ctx context.Context, input LoginInput) (*models.Member, error)
}

type authService struct {
	memberRepo repositories.MemberRepository
}

func NewAuthService(memberRepo repositories.MemberRepository) AuthService {
	return &authService{memberRepo: memberRepo}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.Member, error) {
	if input.FirstName == "" || input.LastName == "" || input.StudentID == "" ||
		input.KattisLink == "" || input.TgUsername == "" || input.Email == "" || input.Password == "" {
		return nil, ErrIncompleteInput
	}

	// Early exit; the unique constraints remain the backstop for the race
	// between this count and the insert.
	count, err := s.memberRepo.CountConflicts(ctx, input.StudentID, input.KattisLink, input.TgUsername, input.Email, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing members: %w", err)
	}
	if count > 0 {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	member := &models.Member{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		StudentID:    input.StudentID,
		KattisLink:   input.KattisLink,
		TgUsername:   input.TgUsername,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		TeamID:       nil,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		if errors.Is(err, repositories.ErrMemberConflict) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	return member, nil
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*models.Member, error) {
	if input.Identifier == "" || input.Password == "" {
		return nil, ErrIncompleteInput
	}

	member, err := s.memberRepo.FindByLoginIdentifier(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find member by identifier: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(input.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare password hash: %w", err)
	}

	return member, nil
}
