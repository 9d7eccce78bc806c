package rest

import (
	"context"

	"saccoflow/internal/domain"
)

const tableLoans = "loans"

type loanRepository struct {
	client *Client
}

func (r *loanRepository) ListBySacco(ctx context.Context, saccoID string) ([]domain.Loan, error) {
	return r.list(ctx, "sacco_id", saccoID)
}

func (r *loanRepository) ListByMember(ctx context.Context, memberID string) ([]domain.Loan, error) {
	return r.list(ctx, "member_id", memberID)
}

func (r *loanRepository) list(ctx context.Context, column, value string) ([]domain.Loan, error) {
	var loans []domain.Loan
	err := r.client.From(tableLoans).Eq(column, value).OrderDesc("date").Select(ctx, &loans)
	if err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *loanRepository) Create(ctx context.Context, loan *domain.Loan) (*domain.Loan, error) {
	row := map[string]any{
		"sacco_id":       loan.SaccoID,
		"member_id":      loan.MemberID,
		"amount":         loan.Amount,
		"purpose":        loan.Purpose,
		"status":         loan.Status,
		"date":           loan.Date,
		"repayment_date": loan.RepaymentDate,
	}
	var created domain.Loan
	if err := r.client.From(tableLoans).Insert(ctx, row, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *loanRepository) UpdateStatus(ctx context.Context, id string, status domain.LoanStatus) error {
	return r.client.From(tableLoans).Eq("id", id).Update(ctx, map[string]any{"status": status})
}
