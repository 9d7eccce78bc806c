package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"saccoflow/internal/domain"
	"saccoflow/internal/logger"
	"saccoflow/internal/repository"
	"saccoflow/internal/view"
)

// MemberHome is the member's dashboard: personal savings and loan
// summaries, transaction history, and the sacco's announcements.
type MemberHome struct {
	memberRepo repository.MemberRepository
	txnRepo    repository.TransactionRepository
	loanRepo   repository.LoanRepository
	noteRepo   repository.NotificationRepository
	profileID  string

	// mu guards the dashboard state below. Apply holds it across the
	// length check and the merge so filed applications keep sequential
	// identifiers under concurrent requests.
	mu           sync.Mutex
	member       *domain.Member
	transactions []domain.Transaction
	loans        []domain.Loan
	reminders    []domain.Notification
}

func NewMemberHome(store StoreSlices, profileID string) *MemberHome {
	return &MemberHome{
		memberRepo: store.Members,
		txnRepo:    store.Transactions,
		loanRepo:   store.Loans,
		noteRepo:   store.Notifications,
		profileID:  profileID,
	}
}

// StoreSlices names the repositories the member home draws on.
type StoreSlices struct {
	Members       repository.MemberRepository
	Transactions  repository.TransactionRepository
	Loans         repository.LoanRepository
	Notifications repository.NotificationRepository
}

// Load resolves the member row for the signed-in profile and fetches the
// member's transactions and loans plus the sacco's announcements. Any
// read failure is logged and leaves that panel empty. The fetched panels
// are installed together once all the reads are done.
func (h *MemberHome) Load(ctx context.Context) {
	member, err := h.memberRepo.GetByProfile(ctx, h.profileID)
	if err != nil {
		logger.Error("Failed to resolve member record", "profile_id", h.profileID, "error", err)
		h.mu.Lock()
		h.member = nil
		h.transactions, h.loans, h.reminders = nil, nil, nil
		h.mu.Unlock()
		return
	}

	transactions, err := h.txnRepo.ListByMember(ctx, member.ID)
	if err != nil {
		logger.Error("Failed to load member transactions", "member_id", member.ID, "error", err)
		transactions = nil
	}
	loans, err := h.loanRepo.ListByMember(ctx, member.ID)
	if err != nil {
		logger.Error("Failed to load member loans", "member_id", member.ID, "error", err)
		loans = nil
	}
	reminders, err := h.noteRepo.ListBySacco(ctx, member.SaccoID)
	if err != nil {
		logger.Error("Failed to load reminders", "sacco_id", member.SaccoID, "error", err)
		reminders = nil
	}

	h.mu.Lock()
	h.member = member
	h.transactions = transactions
	h.loans = loans
	h.reminders = reminders
	h.mu.Unlock()
}

// Member returns the resolved member row, nil when the profile has none.
func (h *MemberHome) Member() *domain.Member {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.member
}

// NetSavings is deposits minus withdrawals over the full history.
func (h *MemberHome) NetSavings() int64 {
	var net int64
	for _, t := range h.history() {
		switch t.Type {
		case domain.TransactionDeposit:
			net += t.Amount
		case domain.TransactionWithdrawal:
			net -= t.Amount
		}
	}
	return net
}

// OutstandingLoan sums the amounts of approved loans.
func (h *MemberHome) OutstandingLoan() int64 {
	var total int64
	for _, l := range h.Loans() {
		if l.Status == domain.LoanStatusApproved {
			total += l.Amount
		}
	}
	return total
}

// NextDeadline is the earliest repayment date among approved loans, empty
// when there are none. Dates are YYYY-MM-DD so string order is date order.
func (h *MemberHome) NextDeadline() string {
	deadline := ""
	for _, l := range h.Loans() {
		if l.Status != domain.LoanStatusApproved || l.RepaymentDate == "" {
			continue
		}
		if deadline == "" || l.RepaymentDate < deadline {
			deadline = l.RepaymentDate
		}
	}
	return deadline
}

// Transactions returns the history inside the inclusive [from, to] range.
func (h *MemberHome) Transactions(from, to string) []domain.Transaction {
	return view.FilterByDateRange(h.history(), from, to, transactionDate)
}

// Loans returns a snapshot of the member's loan history.
func (h *MemberHome) Loans() []domain.Loan {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loans
}

// Reminders returns the sacco's announcements addressed to the member.
func (h *MemberHome) Reminders() []domain.Notification {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.reminders
}

// Apply files a loan application locally: the identifier is the next
// sequential position in the member's list, the status starts pending and
// the applied date is today. Amount, purpose and repayment deadline are
// all required.
func (h *MemberHome) Apply(form LoanApplicationForm) (*domain.Loan, error) {
	if err := checkForm(form); err != nil {
		return nil, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.member == nil {
		return nil, ErrNoSession
	}
	loan := domain.Loan{
		ID:            strconv.Itoa(len(h.loans) + 1),
		SaccoID:       h.member.SaccoID,
		MemberID:      h.member.ID,
		Amount:        form.Amount,
		Purpose:       form.Purpose,
		Status:        domain.LoanStatusPending,
		Date:          time.Now().Format("2006-01-02"),
		RepaymentDate: form.RepaymentDate,
	}
	h.loans = view.MergeInsert(h.loans, loan)
	return &loan, nil
}

func (h *MemberHome) history() []domain.Transaction {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.transactions
}
