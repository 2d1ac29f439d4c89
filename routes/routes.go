package routes

import (
	"github.com/acm-club/esports-backend/handlers"
	"github.com/acm-club/esports-backend/middleware"
	"github.com/acm-club/esports-backend/models"
	"github.com/go-chi/chi/v5"
)

// SetupRoutes wires every endpoint. Member routes are public (auth lives in
// the tokens the frontend carries); admin routes sit behind the JWT role
// gate.
func SetupRoutes(
	router chi.Router,
	authHandler *handlers.AuthHandler,
	memberHandler *handlers.MemberHandler,
	teamHandler *handlers.TeamHandler,
	inviteHandler *handlers.InviteHandler,
	applicationHandler *handlers.ApplicationHandler,
	adminHandler *handlers.AdminHandler,
	webSocketHandler *handlers.WebSocketHandler,
	jwtSecret []byte,
) {
	router.Route("/member", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)

		r.Get("/{id}", memberHandler.GetMember)
		r.Put("/update/{id}", memberHandler.UpdateProfile)

		r.Post("/create/{id}", teamHandler.CreateTeam)
		r.Put("/update/team/{id}", teamHandler.UpdateTeam)
		r.Post("/team/logo/{id}", teamHandler.UploadLogo)

		r.Post("/add_member/{id}", inviteHandler.Invite)
		r.Get("/notifications/{id}", inviteHandler.ListNotifications)
		r.Put("/resolve/{id}", inviteHandler.Resolve)

		r.Post("/apply/tournament/{id}", applicationHandler.Apply)
	})

	router.Route("/admin", func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))
		r.Use(middleware.Authorize(models.RoleAdmin))

		r.Get("/members", adminHandler.ListMembers)
		r.Get("/teams", adminHandler.ListTeams)
		r.Get("/tournaments", adminHandler.ListTournaments)
		r.Get("/dashboard", adminHandler.Dashboard)
	})

	router.Get("/ws/notifications/{id}", webSocketHandler.ServeNotifications)
}
