package domain

type SaccoStatus string

const (
	SaccoStatusActive    SaccoStatus = "active"
	SaccoStatusSuspended SaccoStatus = "suspended"
)

// Sacco is one cooperative organization on the platform, the unit of data
// isolation. Every member, transaction, loan and notification row belongs
// to exactly one sacco.
type Sacco struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"` // admin contact email
	Location  string      `json:"location"`
	NIN       string      `json:"nin"` // national ID / registration number
	Status    SaccoStatus `json:"status"`
	CreatedAt string      `json:"created_at"`
}

// Toggled returns the opposite status. Toggling twice restores the original.
func (s SaccoStatus) Toggled() SaccoStatus {
	if s == SaccoStatusActive {
		return SaccoStatusSuspended
	}
	return SaccoStatusActive
}
