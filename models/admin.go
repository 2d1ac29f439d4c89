package models

// ListFilter carries the paging and search parameters of the admin listing
// endpoints. Nil Take/Skip mean no limit/offset; OrderBy is "asc" or "desc"
// on id, anything else keeps insertion order.
type ListFilter struct {
	Search  string
	Take    *int
	Skip    *int
	OrderBy string
}

// DashboardStats is the admin landing page summary.
type DashboardStats struct {
	MembersTotal       int `json:"members_total"`
	TeamsTotal         int `json:"teams_total"`
	TournamentsTotal   int `json:"tournaments_total"`
	ApplicationsTotal  int `json:"applications_total"`
	PendingInvitations int `json:"pending_invitations"`
}
