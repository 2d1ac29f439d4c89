package models

import "time"

type Team struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	LogoURL   *string   `json:"logo_url,omitempty" db:"logo_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Members []Member `json:"members,omitempty" db:"-"`

	// LogoKey is the object key in R2 when the logo was uploaded through the
	// storage layer rather than supplied as an external URL.
	LogoKey *string `json:"-" db:"logo_key"`
}
