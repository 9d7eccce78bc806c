package domain

// Profile maps an auth identity to its role and sacco. It is resolved once
// per session to pick the dashboard. The ID equals the auth identity id.
type Profile struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	SaccoID string `json:"sacco_id"`
}
