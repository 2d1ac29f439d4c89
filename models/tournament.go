package models

import "time"

// TournamentType decides who may apply: cup tournaments take individual
// members, league tournaments take whole teams.
type TournamentType string

const (
	TournamentCup    TournamentType = "cup"
	TournamentLeague TournamentType = "league"
)

// Tournament is read-mostly here: rows are populated externally, this service
// only looks them up and lists them.
type Tournament struct {
	ID        int            `json:"id" db:"id"`
	Name      string         `json:"name" db:"name"`
	Type      TournamentType `json:"type" db:"type"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}
