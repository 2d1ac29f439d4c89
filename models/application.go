package models

import "time"

// Application is an entry into a tournament. Exactly one of MemberID/TeamID
// is set: member for cup tournaments, team for league tournaments.
type Application struct {
	ID           int       `json:"id" db:"id"`
	MemberID     *int      `json:"member_id,omitempty" db:"member_id"`
	TeamID       *int      `json:"team_id,omitempty" db:"team_id"`
	TournamentID int       `json:"tournament_id" db:"tournament_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
