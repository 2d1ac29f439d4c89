package models

import "time"

// MemberRole matches the role ENUM in the members table.
type MemberRole string

const (
	RoleUser  MemberRole = "user"
	RoleAdmin MemberRole = "admin"
)

// Member is a registered club member. StudentID, KattisLink, TgUsername and
// Email each carry a unique constraint in the database.
type Member struct {
	ID           int        `json:"id" db:"id"`
	FirstName    string     `json:"fname" db:"fname"`
	LastName     string     `json:"lname" db:"lname"`
	StudentID    string     `json:"student_id" db:"student_id"`
	KattisLink   string     `json:"kattis_acct_link" db:"kattis_acct_link"`
	TgUsername   string     `json:"tg_username" db:"tg_username"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Role         MemberRole `json:"role" db:"role"`
	TeamID       *int       `json:"team_id,omitempty" db:"team_id"`
	RegisteredAt time.Time  `json:"registered_at" db:"registered_at"`

	Team *Team `json:"team,omitempty" db:"-"`
}
