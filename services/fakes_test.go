package services

import (
	"context"
	"sort"
	"strings"

	"github.com/acm-club/esports-backend/models"
	"github.com/acm-club/esports-backend/repositories"
)

// In-memory fakes for the repository interfaces. The transactional paths
// (team creation, invitation accept) are exercised against a real database in
// integration_test.go; everything else runs on these.

type fakeMemberRepo struct {
	members map[int]*models.Member
	nextID  int
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[int]*models.Member), nextID: 1}
}

func (f *fakeMemberRepo) Create(_ context.Context, m *models.Member) error {
	for _, existing := range f.members {
		if existing.Email == m.Email || existing.StudentID == m.StudentID ||
			existing.KattisLink == m.KattisLink || existing.TgUsername == m.TgUsername {
			return repositories.ErrMemberConflict
		}
	}
	m.ID = f.nextID
	f.nextID++
	clone := *m
	f.members[m.ID] = &clone
	return nil
}

func (f *fakeMemberRepo) GetByID(_ context.Context, id int) (*models.Member, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, repositories.ErrMemberNotFound
	}
	clone := *m
	return &clone, nil
}

func (f *fakeMemberRepo) FindByLoginIdentifier(_ context.Context, identifier string) (*models.Member, error) {
	for _, m := range f.members {
		if m.Email == identifier || m.StudentID == identifier {
			clone := *m
			return &clone, nil
		}
	}
	return nil, repositories.ErrMemberNotFound
}

func (f *fakeMemberRepo) FindByAnyHandle(_ context.Context, identifier string) (*models.Member, error) {
	for _, m := range f.members {
		if m.StudentID == identifier || m.Email == identifier || m.TgUsername == identifier {
			clone := *m
			return &clone, nil
		}
	}
	return nil, repositories.ErrMemberNotFound
}

func (f *fakeMemberRepo) CountConflicts(_ context.Context, studentID, kattisLink, tgUsername, email string, excludeID int) (int, error) {
	count := 0
	for _, m := range f.members {
		if m.ID == excludeID {
			continue
		}
		if m.StudentID == studentID || m.KattisLink == kattisLink ||
			m.TgUsername == tgUsername || m.Email == email {
			count++
		}
	}
	return count, nil
}

func (f *fakeMemberRepo) Update(_ context.Context, m *models.Member) error {
	if _, ok := f.members[m.ID]; !ok {
		return repositories.ErrMemberNotFound
	}
	clone := *m
	f.members[m.ID] = &clone
	return nil
}

func (f *fakeMemberRepo) UpdateTeamID(_ context.Context, _ repositories.SQLExecutor, memberID int, teamID *int) error {
	m, ok := f.members[memberID]
	if !ok {
		return repositories.ErrMemberNotFound
	}
	m.TeamID = teamID
	return nil
}

func (f *fakeMemberRepo) List(_ context.Context, filter models.ListFilter) ([]models.Member, error) {
	ids := make([]int, 0, len(f.members))
	for id := range f.members {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	if filter.OrderBy == "desc" {
		sort.Sort(sort.Reverse(sort.IntSlice(ids)))
	}

	matched := make([]models.Member, 0)
	for _, id := range ids {
		m := f.members[id]
		if filter.Search != "" &&
			!strings.Contains(m.FirstName, filter.Search) &&
			!strings.Contains(m.LastName, filter.Search) &&
			!strings.Contains(m.StudentID, filter.Search) &&
			!strings.Contains(m.Email, filter.Search) &&
			!strings.Contains(m.TgUsername, filter.Search) {
			continue
		}
		matched = append(matched, *m)
	}

	if filter.Skip != nil {
		if *filter.Skip >= len(matched) {
			return []models.Member{}, nil
		}
		matched = matched[*filter.Skip:]
	}
	if filter.Take != nil && *filter.Take < len(matched) {
		matched = matched[:*filter.Take]
	}
	return matched, nil
}

func (f *fakeMemberRepo) Count(_ context.Context) (int, error) {
	return len(f.members), nil
}

type fakeTeamRepo struct {
	teams  map[int]*models.Team
	nextID int
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[int]*models.Team), nextID: 1}
}

func (f *fakeTeamRepo) Create(_ context.Context, _ repositories.SQLExecutor, team *models.Team) error {
	for _, existing := range f.teams {
		if existing.Name == team.Name {
			return repositories.ErrTeamNameConflict
		}
	}
	team.ID = f.nextID
	f.nextID++
	clone := *team
	f.teams[team.ID] = &clone
	return nil
}

func (f *fakeTeamRepo) GetByID(_ context.Context, id int) (*models.Team, error) {
	t, ok := f.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	clone := *t
	return &clone, nil
}

func (f *fakeTeamRepo) GetByName(_ context.Context, name string) (*models.Team, error) {
	for _, t := range f.teams {
		if t.Name == name {
			clone := *t
			return &clone, nil
		}
	}
	return nil, repositories.ErrTeamNotFound
}

func (f *fakeTeamRepo) CountByName(_ context.Context, name string, excludeID int) (int, error) {
	count := 0
	for _, t := range f.teams {
		if t.ID != excludeID && t.Name == name {
			count++
		}
	}
	return count, nil
}

func (f *fakeTeamRepo) Update(_ context.Context, team *models.Team) error {
	if _, ok := f.teams[team.ID]; !ok {
		return repositories.ErrTeamNotFound
	}
	clone := *team
	f.teams[team.ID] = &clone
	return nil
}

func (f *fakeTeamRepo) UpdateLogo(_ context.Context, teamID int, logoKey, logoURL *string) error {
	t, ok := f.teams[teamID]
	if !ok {
		return repositories.ErrTeamNotFound
	}
	t.LogoKey = logoKey
	t.LogoURL = logoURL
	return nil
}

func (f *fakeTeamRepo) List(_ context.Context, filter models.ListFilter) ([]models.Team, error) {
	ids := make([]int, 0, len(f.teams))
	for id := range f.teams {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	matched := make([]models.Team, 0)
	for _, id := range ids {
		t := f.teams[id]
		if filter.Search != "" && !strings.Contains(t.Name, filter.Search) {
			continue
		}
		matched = append(matched, *t)
	}
	return matched, nil
}

func (f *fakeTeamRepo) Count(_ context.Context) (int, error) {
	return len(f.teams), nil
}

type fakeInvitationRepo struct {
	invitations map[int]*models.Invitation
	nextID      int
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{invitations: make(map[int]*models.Invitation), nextID: 1}
}

func (f *fakeInvitationRepo) Create(_ context.Context, inv *models.Invitation) error {
	inv.ID = f.nextID
	f.nextID++
	clone := *inv
	f.invitations[inv.ID] = &clone
	return nil
}

func (f *fakeInvitationRepo) GetByID(_ context.Context, id int) (*models.Invitation, error) {
	inv, ok := f.invitations[id]
	if !ok {
		return nil, repositories.ErrInvitationNotFound
	}
	clone := *inv
	return &clone, nil
}

func (f *fakeInvitationRepo) ListByMemberID(_ context.Context, memberID int) ([]models.Invitation, error) {
	ids := make([]int, 0, len(f.invitations))
	for id := range f.invitations {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	result := make([]models.Invitation, 0)
	for _, id := range ids {
		if f.invitations[id].MemberID == memberID {
			result = append(result, *f.invitations[id])
		}
	}
	return result, nil
}

func (f *fakeInvitationRepo) UpdateStatus(_ context.Context, _ repositories.SQLExecutor, id int, status models.InvitationStatus) error {
	inv, ok := f.invitations[id]
	if !ok || inv.Status != models.InvitationPending {
		return repositories.ErrInvitationNotPending
	}
	inv.Status = status
	return nil
}

func (f *fakeInvitationRepo) CountPending(_ context.Context) (int, error) {
	count := 0
	for _, inv := range f.invitations {
		if inv.Status == models.InvitationPending {
			count++
		}
	}
	return count, nil
}

type fakeTournamentRepo struct {
	tournaments map[int]*models.Tournament
}

func newFakeTournamentRepo(tournaments ...*models.Tournament) *fakeTournamentRepo {
	f := &fakeTournamentRepo{tournaments: make(map[int]*models.Tournament)}
	for _, t := range tournaments {
		f.tournaments[t.ID] = t
	}
	return f
}

func (f *fakeTournamentRepo) GetByID(_ context.Context, id int) (*models.Tournament, error) {
	t, ok := f.tournaments[id]
	if !ok {
		return nil, repositories.ErrTournamentNotFound
	}
	clone := *t
	return &clone, nil
}

func (f *fakeTournamentRepo) List(_ context.Context, filter models.ListFilter) ([]models.Tournament, error) {
	ids := make([]int, 0, len(f.tournaments))
	for id := range f.tournaments {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	matched := make([]models.Tournament, 0)
	for _, id := range ids {
		t := f.tournaments[id]
		if filter.Search != "" &&
			!strings.Contains(t.Name, filter.Search) &&
			!strings.Contains(string(t.Type), filter.Search) {
			continue
		}
		matched = append(matched, *t)
	}
	return matched, nil
}

func (f *fakeTournamentRepo) Count(_ context.Context) (int, error) {
	return len(f.tournaments), nil
}

type fakeApplicationRepo struct {
	applications []*models.Application
	nextID       int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{nextID: 1}
}

func (f *fakeApplicationRepo) Create(_ context.Context, a *models.Application) error {
	for _, existing := range f.applications {
		if existing.TournamentID != a.TournamentID {
			continue
		}
		if a.MemberID != nil && existing.MemberID != nil && *existing.MemberID == *a.MemberID {
			return repositories.ErrApplicationConflict
		}
		if a.TeamID != nil && existing.TeamID != nil && *existing.TeamID == *a.TeamID {
			return repositories.ErrApplicationConflict
		}
	}
	a.ID = f.nextID
	f.nextID++
	clone := *a
	f.applications = append(f.applications, &clone)
	return nil
}

func (f *fakeApplicationRepo) Count(_ context.Context) (int, error) {
	return len(f.applications), nil
}
