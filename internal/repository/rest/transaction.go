package rest

import (
	"context"

	"saccoflow/internal/domain"
)

const tableTransactions = "transactions"

type transactionRepository struct {
	client *Client
}

func (r *transactionRepository) ListBySacco(ctx context.Context, saccoID string) ([]domain.Transaction, error) {
	return r.list(ctx, "sacco_id", saccoID)
}

func (r *transactionRepository) ListByMember(ctx context.Context, memberID string) ([]domain.Transaction, error) {
	return r.list(ctx, "member_id", memberID)
}

func (r *transactionRepository) list(ctx context.Context, column, value string) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	err := r.client.From(tableTransactions).Eq(column, value).OrderDesc("date").Select(ctx, &txns)
	if err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *transactionRepository) Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	row := map[string]any{
		"sacco_id":   txn.SaccoID,
		"member_id":  txn.MemberID,
		"type":       txn.Type,
		"amount":     txn.Amount,
		"note":       txn.Note,
		"created_by": txn.CreatedBy,
	}
	if txn.Date != "" {
		row["date"] = txn.Date
	}
	var created domain.Transaction
	if err := r.client.From(tableTransactions).Insert(ctx, row, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
