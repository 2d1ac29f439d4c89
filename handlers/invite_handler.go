package handlers

import (
	"net/http"

	"github.com/acm-club/esports-backend/services"
)

type InviteHandler struct {
	inviteService services.InviteService
}

func NewInviteHandler(inviteService services.InviteService) *InviteHandler {
	return &InviteHandler{inviteService: inviteService}
}

// Invite handles POST /member/add_member/{id}: the member in the path invites
// another member, by identifier, to the named team.
func (h *InviteHandler) Invite(w http.ResponseWriter, r *http.Request) {
	invitorID, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		TeamName   string `json:"team_name"`
		Identifier string `json:"identifier"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if _, err := h.inviteService.Invite(r.Context(), invitorID, input.TeamName, input.Identifier); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"message": "invitation sent"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *InviteHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	memberID, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	invitations, err := h.inviteService.ListNotifications(r.Context(), memberID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"data": invitations}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *InviteHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	memberID, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		InvitationID int    `json:"invitation_id"`
		Decision     string `json:"decision"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.inviteService.Resolve(r.Context(), memberID, input.InvitationID, input.Decision); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusAccepted, jsonResponse{"message": "invitation resolved"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
