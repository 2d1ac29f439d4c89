package services

import (
	"context"
	"errors"
	"testing"

	"github.com/acm-club/esports-backend/models"
)

func applyFixtures() (*fakeApplicationRepo, ApplicationService) {
	appRepo := newFakeApplicationRepo()
	tournamentRepo := newFakeTournamentRepo(
		&models.Tournament{ID: 1, Name: "Spring Open", Type: models.TournamentCup},
		&models.Tournament{ID: 2, Name: "Winter League", Type: models.TournamentLeague},
	)
	return appRepo, NewApplicationService(appRepo, tournamentRepo)
}

func intPtr(v int) *int { return &v }

func TestApplyCupAsIndividual(t *testing.T) {
	_, svc := applyFixtures()

	app, err := svc.Apply(context.Background(), 5, 1, nil)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if app.MemberID == nil || *app.MemberID != 5 {
		t.Errorf("expected member application for member 5, got %v", app.MemberID)
	}
	if app.TeamID != nil {
		t.Errorf("expected no team on a cup application, got %v", *app.TeamID)
	}
}

func TestApplyLeagueAsTeam(t *testing.T) {
	_, svc := applyFixtures()

	app, err := svc.Apply(context.Background(), 5, 2, intPtr(3))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if app.TeamID == nil || *app.TeamID != 3 {
		t.Errorf("expected team application for team 3, got %v", app.TeamID)
	}
	if app.MemberID != nil {
		t.Errorf("expected no member on a league application, got %v", *app.MemberID)
	}
}

func TestApplyEligibilityMismatch(t *testing.T) {
	_, svc := applyFixtures()

	tests := []struct {
		name         string
		tournamentID int
		teamID       *int
	}{
		{"team id on a cup", 1, intPtr(3)},
		{"no team id on a league", 2, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Apply(context.Background(), 5, tc.tournamentID, tc.teamID)
			if !errors.Is(err, ErrIncompleteInput) {
				t.Errorf("expected ErrIncompleteInput, got %v", err)
			}
		})
	}
}

func TestApplyUnknownTournament(t *testing.T) {
	_, svc := applyFixtures()

	_, err := svc.Apply(context.Background(), 5, 99, nil)
	if !errors.Is(err, ErrTournamentNotFound) {
		t.Errorf("expected ErrTournamentNotFound, got %v", err)
	}
}

func TestApplyTwiceConflicts(t *testing.T) {
	_, svc := applyFixtures()

	if _, err := svc.Apply(context.Background(), 5, 1, nil); err != nil {
		t.Fatalf("first Apply failed: %v", err)
	}
	_, err := svc.Apply(context.Background(), 5, 1, nil)
	if !errors.Is(err, ErrRegistrationConflict) {
		t.Errorf("expected ErrRegistrationConflict, got %v", err)
	}

	if _, err := svc.Apply(context.Background(), 6, 2, intPtr(3)); err != nil {
		t.Fatalf("first team Apply failed: %v", err)
	}
	_, err = svc.Apply(context.Background(), 7, 2, intPtr(3))
	if !errors.Is(err, ErrRegistrationConflict) {
		t.Errorf("expected ErrRegistrationConflict, got %v", err)
	}
}
