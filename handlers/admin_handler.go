package handlers

import (
	"net/http"

	"github.com/acm-club/esports-backend/models"
	"github.com/acm-club/esports-backend/services"
)

type AdminHandler struct {
	adminService     services.AdminService
	dashboardService services.DashboardService
}

func NewAdminHandler(adminService services.AdminService, dashboardService services.DashboardService) *AdminHandler {
	return &AdminHandler{
		adminService:     adminService,
		dashboardService: dashboardService,
	}
}

// listFilterFromQuery pulls take/skip/searchString/orderBy off the request.
// Missing or invalid take/skip mean no limit/offset; searchString is a
// case-sensitive substring match.
func listFilterFromQuery(r *http.Request) models.ListFilter {
	q := r.URL.Query()
	return models.ListFilter{
		Search:  q.Get("searchString"),
		Take:    queryInt(r, "take"),
		Skip:    queryInt(r, "skip"),
		OrderBy: q.Get("orderBy"),
	}
}

func (h *AdminHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.adminService.ListMembers(r.Context(), listFilterFromQuery(r))
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"data": members}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AdminHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.adminService.ListTeams(r.Context(), listFilterFromQuery(r))
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"data": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AdminHandler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.adminService.ListTournaments(r.Context(), listFilterFromQuery(r))
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"data": tournaments}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetStats(r.Context())
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"data": stats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
