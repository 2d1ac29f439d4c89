package services

import (
	"context"
	"testing"

	"github.com/acm-club/esports-backend/models"
)

func adminFixtures(t *testing.T) (*fakeMemberRepo, *fakeTeamRepo, AdminService) {
	t.Helper()
	memberRepo := newFakeMemberRepo()
	for _, m := range []*models.Member{
		{FirstName: "Alice", LastName: "Smith", StudentID: "2021001", KattisLink: "https://open.kattis.com/users/asmith", TgUsername: "asmith", Email: "alice@example.com", PasswordHash: "hash-a", Role: models.RoleUser},
		{FirstName: "Bob", LastName: "Jones", StudentID: "2021002", KattisLink: "https://open.kattis.com/users/bjones", TgUsername: "bjones", Email: "bob@example.com", PasswordHash: "hash-b", Role: models.RoleUser},
		{FirstName: "Carol", LastName: "Smithers", StudentID: "2021003", KattisLink: "https://open.kattis.com/users/carol", TgUsername: "carol", Email: "carol@example.com", PasswordHash: "hash-c", Role: models.RoleAdmin},
	} {
		if err := memberRepo.Create(context.Background(), m); err != nil {
			t.Fatalf("seeding member failed: %v", err)
		}
	}

	teamRepo := newFakeTeamRepo()
	seedTeam(t, teamRepo, "Alpha")
	seedTeam(t, teamRepo, "Beta")

	tournamentRepo := newFakeTournamentRepo(
		&models.Tournament{ID: 1, Name: "Spring Open", Type: models.TournamentCup},
		&models.Tournament{ID: 2, Name: "Winter League", Type: models.TournamentLeague},
	)
	return memberRepo, teamRepo, NewAdminService(memberRepo, teamRepo, tournamentRepo)
}

func TestListMembersStripsPasswordHash(t *testing.T) {
	_, _, svc := adminFixtures(t)

	members, err := svc.ListMembers(context.Background(), models.ListFilter{})
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(members))
	}
	for _, m := range members {
		if m.PasswordHash != "" {
			t.Errorf("member %d leaked password hash", m.ID)
		}
	}
}

func TestListMembersSearch(t *testing.T) {
	_, _, svc := adminFixtures(t)

	tests := []struct {
		name   string
		search string
		want   int
	}{
		{"by last name fragment", "Smith", 2},
		{"by student id", "2021002", 1},
		{"by telegram username", "carol", 1},
		{"no match", "zeta", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			members, err := svc.ListMembers(context.Background(), models.ListFilter{Search: tc.search})
			if err != nil {
				t.Fatalf("ListMembers failed: %v", err)
			}
			if len(members) != tc.want {
				t.Errorf("expected %d members, got %d", tc.want, len(members))
			}
		})
	}
}

func TestListMembersPagination(t *testing.T) {
	_, _, svc := adminFixtures(t)

	take, skip := 1, 1
	members, err := svc.ListMembers(context.Background(), models.ListFilter{Take: &take, Skip: &skip})
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(members) != 1 {
		t.Fatalf("expected a single page entry, got %d", len(members))
	}
	if members[0].FirstName != "Bob" {
		t.Errorf("expected second member on page, got %q", members[0].FirstName)
	}

	desc, err := svc.ListMembers(context.Background(), models.ListFilter{OrderBy: "desc"})
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if desc[0].FirstName != "Carol" {
		t.Errorf("expected descending order to lead with Carol, got %q", desc[0].FirstName)
	}
}

func TestListTeamsAndTournaments(t *testing.T) {
	_, _, svc := adminFixtures(t)

	teams, err := svc.ListTeams(context.Background(), models.ListFilter{Search: "Alp"})
	if err != nil {
		t.Fatalf("ListTeams failed: %v", err)
	}
	if len(teams) != 1 || teams[0].Name != "Alpha" {
		t.Errorf("expected only Alpha, got %v", teams)
	}

	tournaments, err := svc.ListTournaments(context.Background(), models.ListFilter{Search: "league"})
	if err != nil {
		t.Fatalf("ListTournaments failed: %v", err)
	}
	if len(tournaments) != 1 || tournaments[0].Name != "Winter League" {
		t.Errorf("expected only Winter League, got %v", tournaments)
	}
}
