package models

import "time"

// InvitationStatus matches the invitation_status ENUM in the database.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
)

// Invitation asks a member to join a team. TeamID is resolved from the team
// name once, at invite time, so later team renames cannot detach it.
type Invitation struct {
	ID        int              `json:"id" db:"id"`
	MemberID  int              `json:"member_id" db:"member_id"`
	InvitorID int              `json:"invitor_id" db:"invitor_id"`
	TeamID    int              `json:"team_id" db:"team_id"`
	TeamName  string           `json:"team_name" db:"team_name"`
	Status    InvitationStatus `json:"status" db:"status"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}
