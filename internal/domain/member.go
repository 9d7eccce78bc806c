package domain

type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "Active"
	MemberStatusInactive MemberStatus = "Inactive"
)

type Member struct {
	ID         string       `json:"id"`
	SaccoID    string       `json:"sacco_id"`
	ProfileID  string       `json:"profile_id,omitempty"` // auth identity created for the member
	Name       string       `json:"name"`
	Phone      string       `json:"phone"`
	Email      string       `json:"email"`
	NIN        string       `json:"nin"`
	Status     MemberStatus `json:"status"`
	DateJoined string       `json:"date_joined"`
}
