package repository

import (
	"context"

	"saccoflow/internal/domain"
)

// Repositories wrap the data service's generic table interface. The service
// enforces row-level security; a caller only ever sees rows its tenant and
// role permit. Write calls return the authoritative row so dashboards can
// merge it into local state without a re-fetch.

type SaccoRepository interface {
	List(ctx context.Context) ([]domain.Sacco, error) // newest first
	Create(ctx context.Context, sacco *domain.Sacco) (*domain.Sacco, error)
	UpdateStatus(ctx context.Context, id string, status domain.SaccoStatus) error
	Delete(ctx context.Context, id string) error
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
}

type MemberRepository interface {
	ListBySacco(ctx context.Context, saccoID string) ([]domain.Member, error)
	GetByProfile(ctx context.Context, profileID string) (*domain.Member, error)
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	Update(ctx context.Context, id string, fields MemberFields) error
	Delete(ctx context.Context, id string) error
}

// MemberFields is the targeted-update shape for a member row. The sacco id,
// profile id and join date are never reassigned.
type MemberFields struct {
	Name   string              `json:"name"`
	Phone  string              `json:"phone"`
	Email  string              `json:"email"`
	NIN    string              `json:"nin"`
	Status domain.MemberStatus `json:"status"`
}

type TransactionRepository interface {
	ListBySacco(ctx context.Context, saccoID string) ([]domain.Transaction, error)
	ListByMember(ctx context.Context, memberID string) ([]domain.Transaction, error)
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
}

type LoanRepository interface {
	ListBySacco(ctx context.Context, saccoID string) ([]domain.Loan, error)
	ListByMember(ctx context.Context, memberID string) ([]domain.Loan, error)
	Create(ctx context.Context, loan *domain.Loan) (*domain.Loan, error)
	UpdateStatus(ctx context.Context, id string, status domain.LoanStatus) error
}

type NotificationRepository interface {
	ListBySacco(ctx context.Context, saccoID string) ([]domain.Notification, error)
	Create(ctx context.Context, note *domain.Notification) (*domain.Notification, error)
}

// AuditLogRepository is read-only: audit rows are written by the data
// service, never by this application.
type AuditLogRepository interface {
	ListBySacco(ctx context.Context, saccoID string) ([]domain.AuditLog, error)
}
