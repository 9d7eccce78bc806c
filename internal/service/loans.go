package service

import (
	"context"
	"sync"

	"saccoflow/internal/domain"
	"saccoflow/internal/logger"
	"saccoflow/internal/repository"
	"saccoflow/internal/view"
)

// LoanDesk is the tenant admin's loans slice: the sacco's loan book with
// approve/reject decisions over pending applications.
type LoanDesk struct {
	loanRepo repository.LoanRepository
	saccoID  string

	// mu guards the loans slice header; the reducers replace the slice
	// wholesale so accessor snapshots stay safe to read unlocked.
	mu    sync.Mutex
	loans []domain.Loan
}

func NewLoanDesk(loanRepo repository.LoanRepository, saccoID string) *LoanDesk {
	return &LoanDesk{loanRepo: loanRepo, saccoID: saccoID}
}

// Load fetches the sacco's loans; failures are logged and leave an empty
// book.
func (d *LoanDesk) Load(ctx context.Context) {
	loans, err := d.loanRepo.ListBySacco(ctx, d.saccoID)
	if err != nil {
		logger.Error("Failed to load loans", "sacco_id", d.saccoID, "error", err)
		loans = nil
	}
	d.mu.Lock()
	d.loans = loans
	d.mu.Unlock()
}

// Loans returns a snapshot of the raw loan rows.
func (d *LoanDesk) Loans() []domain.Loan {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loans
}

// List returns the loan book with applicant names joined in for display.
func (d *LoanDesk) List(members []domain.Member) []view.LoanView {
	return view.JoinLoanMembers(d.Loans(), members)
}

// ActiveCount counts loans currently out with members, meaning approved
// or active.
func (d *LoanDesk) ActiveCount() int {
	n := 0
	for _, l := range d.Loans() {
		if l.Status == domain.LoanStatusApproved || l.Status == domain.LoanStatusActive {
			n++
		}
	}
	return n
}

// Approve moves a pending loan to approved. A loan that is not pending
// locally is declined without a call.
func (d *LoanDesk) Approve(ctx context.Context, id string) (*domain.Loan, error) {
	return d.decide(ctx, id, domain.LoanStatusApproved)
}

// Reject moves a pending loan to rejected under the same rule.
func (d *LoanDesk) Reject(ctx context.Context, id string) (*domain.Loan, error) {
	return d.decide(ctx, id, domain.LoanStatusRejected)
}

func (d *LoanDesk) decide(ctx context.Context, id string, status domain.LoanStatus) (*domain.Loan, error) {
	current, ok := d.find(id)
	if !ok || current.Status != domain.LoanStatusPending {
		return nil, ErrNotPending
	}
	if err := d.loanRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	updated := *current
	updated.Status = status
	d.mu.Lock()
	d.loans = view.MergeUpdate(d.loans, updated, loanKey)
	d.mu.Unlock()
	return &updated, nil
}

func (d *LoanDesk) find(id string) (*domain.Loan, bool) {
	loans := d.Loans()
	for i := range loans {
		if loans[i].ID == id {
			return &loans[i], true
		}
	}
	return nil, false
}

func loanKey(l domain.Loan) string { return l.ID }
