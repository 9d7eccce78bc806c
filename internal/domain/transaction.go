package domain

type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
)

// Transaction is immutable once created: the UI offers no update or delete.
type Transaction struct {
	ID        string          `json:"id"`
	SaccoID   string          `json:"sacco_id"`
	MemberID  string          `json:"member_id"`
	Type      TransactionType `json:"type"`
	Amount    int64           `json:"amount"`
	Date      string          `json:"date"`
	Note      string          `json:"note"`
	CreatedBy string          `json:"created_by"` // identity that recorded it
}
