package handlers

import (
	"net/http"

	"github.com/acm-club/esports-backend/services"
)

type MemberHandler struct {
	memberService services.MemberService
}

func NewMemberHandler(memberService services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

func (h *MemberHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	memberID, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	member, err := h.memberService.GetByID(r.Context(), memberID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"user": member}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MemberHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	memberID, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateProfileInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.memberService.UpdateProfile(r.Context(), memberID, input); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusAccepted, jsonResponse{"message": "profile updated"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
