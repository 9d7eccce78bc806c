package domain

// AuditLog rows are written by the data service, never by this application.
type AuditLog struct {
	ID      string `json:"id"`
	SaccoID string `json:"sacco_id"`
	Action  string `json:"action"`
	Details string `json:"details"`
	Date    string `json:"date"`
	User    string `json:"user"`
}
