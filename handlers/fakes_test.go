package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"

	"github.com/acm-club/esports-backend/models"
	"github.com/acm-club/esports-backend/services"
)

type fakeAuthService struct {
	registerFn func(ctx context.Context, input services.RegisterInput) (*models.Member, error)
	loginFn    func(ctx context.Context, input services.LoginInput) (*models.Member, error)
}

func (f *fakeAuthService) Register(ctx context.Context, input services.RegisterInput) (*models.Member, error) {
	return f.registerFn(ctx, input)
}

func (f *fakeAuthService) Login(ctx context.Context, input services.LoginInput) (*models.Member, error) {
	return f.loginFn(ctx, input)
}

type fakeMemberService struct {
	getByIDFn       func(ctx context.Context, id int) (*models.Member, error)
	updateProfileFn func(ctx context.Context, id int, input services.UpdateProfileInput) error
}

func (f *fakeMemberService) GetByID(ctx context.Context, id int) (*models.Member, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeMemberService) UpdateProfile(ctx context.Context, id int, input services.UpdateProfileInput) error {
	return f.updateProfileFn(ctx, id, input)
}

type fakeTeamService struct {
	createFn     func(ctx context.Context, creatorID int, input services.TeamInput) (*models.Team, error)
	updateFn     func(ctx context.Context, teamID int, input services.TeamInput) error
	uploadLogoFn func(ctx context.Context, teamID int, contentType string, file io.Reader) (*models.Team, error)
}

func (f *fakeTeamService) Create(ctx context.Context, creatorID int, input services.TeamInput) (*models.Team, error) {
	return f.createFn(ctx, creatorID, input)
}

func (f *fakeTeamService) Update(ctx context.Context, teamID int, input services.TeamInput) error {
	return f.updateFn(ctx, teamID, input)
}

func (f *fakeTeamService) UploadLogo(ctx context.Context, teamID int, contentType string, file io.Reader) (*models.Team, error) {
	return f.uploadLogoFn(ctx, teamID, contentType, file)
}

type fakeInviteService struct {
	inviteFn  func(ctx context.Context, invitorID int, teamName, identifier string) (*models.Invitation, error)
	listFn    func(ctx context.Context, memberID int) ([]models.Invitation, error)
	resolveFn func(ctx context.Context, memberID, invitationID int, decision string) error
}

func (f *fakeInviteService) Invite(ctx context.Context, invitorID int, teamName, identifier string) (*models.Invitation, error) {
	return f.inviteFn(ctx, invitorID, teamName, identifier)
}

func (f *fakeInviteService) ListNotifications(ctx context.Context, memberID int) ([]models.Invitation, error) {
	return f.listFn(ctx, memberID)
}

func (f *fakeInviteService) Resolve(ctx context.Context, memberID, invitationID int, decision string) error {
	return f.resolveFn(ctx, memberID, invitationID, decision)
}

type fakeApplicationService struct {
	applyFn func(ctx context.Context, memberID, tournamentID int, teamID *int) (*models.Application, error)
}

func (f *fakeApplicationService) Apply(ctx context.Context, memberID, tournamentID int, teamID *int) (*models.Application, error) {
	return f.applyFn(ctx, memberID, tournamentID, teamID)
}

type fakeAdminService struct {
	listMembersFn     func(ctx context.Context, filter models.ListFilter) ([]models.Member, error)
	listTeamsFn       func(ctx context.Context, filter models.ListFilter) ([]models.Team, error)
	listTournamentsFn func(ctx context.Context, filter models.ListFilter) ([]models.Tournament, error)
}

func (f *fakeAdminService) ListMembers(ctx context.Context, filter models.ListFilter) ([]models.Member, error) {
	return f.listMembersFn(ctx, filter)
}

func (f *fakeAdminService) ListTeams(ctx context.Context, filter models.ListFilter) ([]models.Team, error) {
	return f.listTeamsFn(ctx, filter)
}

func (f *fakeAdminService) ListTournaments(ctx context.Context, filter models.ListFilter) ([]models.Tournament, error) {
	return f.listTournamentsFn(ctx, filter)
}

type fakeDashboardService struct {
	getStatsFn func(ctx context.Context) (models.DashboardStats, error)
}

func (f *fakeDashboardService) GetStats(ctx context.Context) (models.DashboardStats, error) {
	return f.getStatsFn(ctx)
}

// serveWithURLParam runs a single handler through a throwaway chi route so
// chi.URLParam resolves.
func serveWithURLParam(method, pattern, target string, body io.Reader, handler http.HandlerFunc) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.MethodFunc(method, pattern, handler)

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
