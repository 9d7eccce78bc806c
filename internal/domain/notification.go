package domain

// Notification is a broadcast to all members of a sacco. One row represents
// the whole broadcast; per-member delivery is the data service's concern.
type Notification struct {
	ID        string `json:"id"`
	SaccoID   string `json:"sacco_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}
