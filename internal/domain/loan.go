package domain

type LoanStatus string

const (
	LoanStatusPending  LoanStatus = "pending"
	LoanStatusApproved LoanStatus = "approved"
	LoanStatusRejected LoanStatus = "rejected"
	// active and completed exist in stored data but no operation in this
	// application sets them.
	LoanStatusActive    LoanStatus = "active"
	LoanStatusCompleted LoanStatus = "completed"
)

type Loan struct {
	ID            string     `json:"id"`
	SaccoID       string     `json:"sacco_id"`
	MemberID      string     `json:"member_id"`
	Amount        int64      `json:"amount"`
	Purpose       string     `json:"purpose"`
	Status        LoanStatus `json:"status"`
	Date          string     `json:"date"` // applied date
	RepaymentDate string     `json:"repayment_date"`
}
