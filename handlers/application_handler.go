package handlers

import (
	"net/http"

	"github.com/acm-club/esports-backend/services"
)

type ApplicationHandler struct {
	applicationService services.ApplicationService
}

func NewApplicationHandler(applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// Apply handles POST /member/apply/tournament/{id}: the member in the path
// applies themselves (cup) or their team (league) to a tournament.
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	memberID, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		TeamID       *int `json:"team_id"`
		TournamentID int  `json:"tournament_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if _, err := h.applicationService.Apply(r.Context(), memberID, input.TournamentID, input.TeamID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusAccepted, jsonResponse{"message": "application submitted"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
