package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"saccoflow/internal/domain"
)

func loadedMemberHome(t *testing.T, txns []domain.Transaction, loans []domain.Loan, notes []domain.Notification) *MemberHome {
	t.Helper()
	mockMemberRepo := new(MockMemberRepo)
	mockTxnRepo := new(MockTransactionRepo)
	mockLoanRepo := new(MockLoanRepo)
	mockNoteRepo := new(MockNotificationRepo)

	home := NewMemberHome(StoreSlices{
		Members:       mockMemberRepo,
		Transactions:  mockTxnRepo,
		Loans:         mockLoanRepo,
		Notifications: mockNoteRepo,
	}, "ident-1")

	member := &domain.Member{ID: "m1", SaccoID: "s1", ProfileID: "ident-1", Name: "Jane Doe"}
	mockMemberRepo.On("GetByProfile", mock.Anything, "ident-1").Return(member, nil).Once()
	mockTxnRepo.On("ListByMember", mock.Anything, "m1").Return(txns, nil).Once()
	mockLoanRepo.On("ListByMember", mock.Anything, "m1").Return(loans, nil).Once()
	mockNoteRepo.On("ListBySacco", mock.Anything, "s1").Return(notes, nil).Once()

	home.Load(context.Background())
	return home
}

func TestMemberHome_NetSavings(t *testing.T) {
	home := loadedMemberHome(t, []domain.Transaction{
		{ID: "t1", Type: domain.TransactionDeposit, Amount: 2000},
		{ID: "t2", Type: domain.TransactionWithdrawal, Amount: 500},
		{ID: "t3", Type: domain.TransactionDeposit, Amount: 300},
	}, nil, nil)

	assert.Equal(t, int64(1800), home.NetSavings())
}

func TestMemberHome_LoanSummary(t *testing.T) {
	home := loadedMemberHome(t, nil, []domain.Loan{
		{ID: "l1", Status: domain.LoanStatusApproved, Amount: 4000, RepaymentDate: "2025-09-01"},
		{ID: "l2", Status: domain.LoanStatusApproved, Amount: 1000, RepaymentDate: "2025-07-15"},
		{ID: "l3", Status: domain.LoanStatusPending, Amount: 9999, RepaymentDate: "2025-01-01"},
		{ID: "l4", Status: domain.LoanStatusRejected, Amount: 8888, RepaymentDate: "2025-01-02"},
	}, nil)

	assert.Equal(t, int64(5000), home.OutstandingLoan())
	assert.Equal(t, "2025-07-15", home.NextDeadline())
}

func TestMemberHome_NextDeadlineEmptyWithoutApprovedLoans(t *testing.T) {
	home := loadedMemberHome(t, nil, []domain.Loan{
		{ID: "l1", Status: domain.LoanStatusPending, RepaymentDate: "2025-01-01"},
	}, nil)

	assert.Equal(t, "", home.NextDeadline())
}

func TestMemberHome_TransactionsRangeFilter(t *testing.T) {
	home := loadedMemberHome(t, []domain.Transaction{
		{ID: "t1", Date: "2025-03-01"},
		{ID: "t2", Date: "2025-03-20"},
		{ID: "t3", Date: "2025-04-02"},
	}, nil, nil)

	assert.Len(t, home.Transactions("2025-03-01", "2025-03-31"), 2)
	assert.Len(t, home.Transactions("", ""), 3)
}

func TestMemberHome_ApplyAssignsSequentialIdentifier(t *testing.T) {
	home := loadedMemberHome(t, nil, []domain.Loan{
		{ID: "1", Status: domain.LoanStatusApproved},
	}, nil)

	loan, err := home.Apply(LoanApplicationForm{Amount: 3000, Purpose: "School fees", RepaymentDate: "2025-12-01"})

	assert.NoError(t, err)
	assert.Equal(t, "2", loan.ID)
	assert.Equal(t, domain.LoanStatusPending, loan.Status)
	assert.NotEmpty(t, loan.Date)
	assert.Equal(t, "m1", loan.MemberID)
	assert.Equal(t, "2", home.Loans()[0].ID)
}

func TestMemberHome_ConcurrentApplicationsStaySequential(t *testing.T) {
	home := loadedMemberHome(t, nil, nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := home.Apply(LoanApplicationForm{Amount: 1000, Purpose: "Stock", RepaymentDate: "2025-12-01"})
			if err != nil {
				t.Errorf("Apply: %v", err)
			}
		}()
	}
	wg.Wait()

	loans := home.Loans()
	assert.Len(t, loans, 10)
	ids := make(map[string]bool, len(loans))
	for _, l := range loans {
		ids[l.ID] = true
	}
	assert.Len(t, ids, 10, "every application gets its own identifier")
}

func TestMemberHome_ApplyValidatesForm(t *testing.T) {
	home := loadedMemberHome(t, nil, nil, nil)

	_, err := home.Apply(LoanApplicationForm{Amount: 0, Purpose: "x", RepaymentDate: "2025-12-01"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = home.Apply(LoanApplicationForm{Amount: 100, Purpose: "", RepaymentDate: "2025-12-01"})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestMemberHome_Reminders(t *testing.T) {
	home := loadedMemberHome(t, nil, nil, []domain.Notification{
		{ID: "n1", SaccoID: "s1", Title: "Meeting", Message: "Saturday 10am"},
	})

	reminders := home.Reminders()
	assert.Len(t, reminders, 1)
	assert.Equal(t, "Meeting", reminders[0].Title)
}
