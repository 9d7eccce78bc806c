package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"saccoflow/internal/domain"
)

func loadedLoanDesk(t *testing.T, loans []domain.Loan) (*LoanDesk, *MockLoanRepo) {
	t.Helper()
	mockLoanRepo := new(MockLoanRepo)
	desk := NewLoanDesk(mockLoanRepo, "s1")
	mockLoanRepo.On("ListBySacco", mock.Anything, "s1").Return(loans, nil).Once()
	desk.Load(context.Background())
	return desk, mockLoanRepo
}

func TestLoanDesk_ApprovePendingLoan(t *testing.T) {
	desk, mockLoanRepo := loadedLoanDesk(t, []domain.Loan{
		{ID: "l1", MemberID: "m1", Status: domain.LoanStatusPending, Amount: 5000},
	})
	ctx := context.Background()

	mockLoanRepo.On("UpdateStatus", ctx, "l1", domain.LoanStatusApproved).Return(nil).Once()

	updated, err := desk.Approve(ctx, "l1")

	assert.NoError(t, err)
	assert.Equal(t, domain.LoanStatusApproved, updated.Status)
	assert.Equal(t, domain.LoanStatusApproved, desk.Loans()[0].Status)
	mockLoanRepo.AssertExpectations(t)
}

func TestLoanDesk_DecisionsOnlyApplyToPendingLoans(t *testing.T) {
	desk, mockLoanRepo := loadedLoanDesk(t, []domain.Loan{
		{ID: "l1", Status: domain.LoanStatusApproved},
		{ID: "l2", Status: domain.LoanStatusRejected},
	})
	ctx := context.Background()

	_, err := desk.Approve(ctx, "l1")
	assert.ErrorIs(t, err, ErrNotPending)

	_, err = desk.Reject(ctx, "l2")
	assert.ErrorIs(t, err, ErrNotPending)

	_, err = desk.Approve(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotPending)

	mockLoanRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoanDesk_ListJoinsMemberNames(t *testing.T) {
	desk, _ := loadedLoanDesk(t, []domain.Loan{
		{ID: "l1", MemberID: "m1", Status: domain.LoanStatusPending},
		{ID: "l2", MemberID: "ghost", Status: domain.LoanStatusPending},
	})

	rows := desk.List([]domain.Member{{ID: "m1", Name: "Jane Doe"}})

	assert.Equal(t, "Jane Doe", rows[0].MemberName)
	assert.Equal(t, "Unknown", rows[1].MemberName)
}

func TestLoanDesk_ActiveCount(t *testing.T) {
	desk, _ := loadedLoanDesk(t, []domain.Loan{
		{ID: "l1", Status: domain.LoanStatusApproved},
		{ID: "l2", Status: domain.LoanStatusActive},
		{ID: "l3", Status: domain.LoanStatusPending},
		{ID: "l4", Status: domain.LoanStatusCompleted},
	})

	assert.Equal(t, 2, desk.ActiveCount())
}
