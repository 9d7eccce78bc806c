package view

import "saccoflow/internal/domain"

const unknownMemberName = "Unknown"

// TransactionView is a transaction row with the member name joined in for
// display. The name is derived, never stored on the transaction.
type TransactionView struct {
	domain.Transaction
	MemberName string `json:"member_name"`
}

// LoanView is a loan row with the member name joined in for display.
type LoanView struct {
	domain.Loan
	MemberName string `json:"member_name"`
}

func memberNameIndex(members []domain.Member) map[string]string {
	idx := make(map[string]string, len(members))
	for _, m := range members {
		idx[m.ID] = m.Name
	}
	return idx
}

// JoinTransactionMembers projects transactions against the member list,
// attaching each row's member name. Unmatched member ids display as Unknown.
func JoinTransactionMembers(txns []domain.Transaction, members []domain.Member) []TransactionView {
	idx := memberNameIndex(members)
	out := make([]TransactionView, 0, len(txns))
	for _, t := range txns {
		name, ok := idx[t.MemberID]
		if !ok {
			name = unknownMemberName
		}
		out = append(out, TransactionView{Transaction: t, MemberName: name})
	}
	return out
}

// JoinLoanMembers projects loans against the member list the same way.
func JoinLoanMembers(loans []domain.Loan, members []domain.Member) []LoanView {
	idx := memberNameIndex(members)
	out := make([]LoanView, 0, len(loans))
	for _, l := range loans {
		name, ok := idx[l.MemberID]
		if !ok {
			name = unknownMemberName
		}
		out = append(out, LoanView{Loan: l, MemberName: name})
	}
	return out
}
