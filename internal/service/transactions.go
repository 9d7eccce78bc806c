package service

import (
	"context"
	"sync"
	"time"

	"saccoflow/internal/domain"
	"saccoflow/internal/logger"
	"saccoflow/internal/repository"
	"saccoflow/internal/view"
)

// TransactionLog is the tenant admin's transactions slice: the sacco's
// deposit/withdrawal history with an inclusive date-range filter.
type TransactionLog struct {
	txnRepo    repository.TransactionRepository
	saccoID    string
	recordedBy string // identity stamped onto every recorded transaction

	// mu guards the transactions slice header; the reducers replace the
	// slice wholesale so accessor snapshots stay safe to read unlocked.
	mu           sync.Mutex
	transactions []domain.Transaction
}

func NewTransactionLog(txnRepo repository.TransactionRepository, saccoID, recordedBy string) *TransactionLog {
	return &TransactionLog{txnRepo: txnRepo, saccoID: saccoID, recordedBy: recordedBy}
}

// Load fetches the sacco's transactions; failures are logged and leave an
// empty log.
func (l *TransactionLog) Load(ctx context.Context) {
	txns, err := l.txnRepo.ListBySacco(ctx, l.saccoID)
	if err != nil {
		logger.Error("Failed to load transactions", "sacco_id", l.saccoID, "error", err)
		txns = nil
	}
	l.mu.Lock()
	l.transactions = txns
	l.mu.Unlock()
}

// Filtered returns the rows inside the inclusive [from, to] range, with
// member names joined in for display. Either bound may be empty.
func (l *TransactionLog) Filtered(from, to string, members []domain.Member) []view.TransactionView {
	rows := view.FilterByDateRange(l.Transactions(), from, to, transactionDate)
	return view.JoinTransactionMembers(rows, members)
}

// Transactions returns a snapshot of the unfiltered rows.
func (l *TransactionLog) Transactions() []domain.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.transactions
}

// TotalSavings sums all deposit amounts.
func (l *TransactionLog) TotalSavings() int64 {
	var total int64
	for _, t := range l.Transactions() {
		if t.Type == domain.TransactionDeposit {
			total += t.Amount
		}
	}
	return total
}

// Record inserts a transaction. A missing member or amount declines the
// operation; the row is stamped with the recording identity.
func (l *TransactionLog) Record(ctx context.Context, form TransactionForm) (*domain.Transaction, error) {
	if err := checkForm(form); err != nil {
		return nil, err
	}
	created, err := l.txnRepo.Create(ctx, &domain.Transaction{
		SaccoID:   l.saccoID,
		MemberID:  form.MemberID,
		Type:      domain.TransactionType(form.Type),
		Amount:    form.Amount,
		Date:      time.Now().Format("2006-01-02"),
		Note:      form.Note,
		CreatedBy: l.recordedBy,
	})
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.transactions = view.MergeInsert(l.transactions, *created)
	l.mu.Unlock()
	return created, nil
}

func transactionDate(t domain.Transaction) string { return t.Date }
