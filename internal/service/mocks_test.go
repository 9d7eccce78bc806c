package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"saccoflow/internal/auth"
	"saccoflow/internal/domain"
	"saccoflow/internal/repository"
)

type MockSaccoRepo struct{ mock.Mock }

func (m *MockSaccoRepo) List(ctx context.Context) ([]domain.Sacco, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sacco), args.Error(1)
}

func (m *MockSaccoRepo) Create(ctx context.Context, sacco *domain.Sacco) (*domain.Sacco, error) {
	args := m.Called(ctx, sacco)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sacco), args.Error(1)
}

func (m *MockSaccoRepo) UpdateStatus(ctx context.Context, id string, status domain.SaccoStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockSaccoRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockProfileRepo struct{ mock.Mock }

func (m *MockProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) List(ctx context.Context) ([]domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

type MockMemberRepo struct{ mock.Mock }

func (m *MockMemberRepo) ListBySacco(ctx context.Context, saccoID string) ([]domain.Member, error) {
	args := m.Called(ctx, saccoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepo) GetByProfile(ctx context.Context, profileID string) (*domain.Member, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepo) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	args := m.Called(ctx, member)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepo) Update(ctx context.Context, id string, fields repository.MemberFields) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *MockMemberRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockTransactionRepo struct{ mock.Mock }

func (m *MockTransactionRepo) ListBySacco(ctx context.Context, saccoID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, saccoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) ListByMember(ctx context.Context, memberID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

type MockLoanRepo struct{ mock.Mock }

func (m *MockLoanRepo) ListBySacco(ctx context.Context, saccoID string) ([]domain.Loan, error) {
	args := m.Called(ctx, saccoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepo) ListByMember(ctx context.Context, memberID string) ([]domain.Loan, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepo) Create(ctx context.Context, loan *domain.Loan) (*domain.Loan, error) {
	args := m.Called(ctx, loan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepo) UpdateStatus(ctx context.Context, id string, status domain.LoanStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockNotificationRepo struct{ mock.Mock }

func (m *MockNotificationRepo) ListBySacco(ctx context.Context, saccoID string) ([]domain.Notification, error) {
	args := m.Called(ctx, saccoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) (*domain.Notification, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

type MockAuditRepo struct{ mock.Mock }

func (m *MockAuditRepo) ListBySacco(ctx context.Context, saccoID string) ([]domain.AuditLog, error) {
	args := m.Called(ctx, saccoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLog), args.Error(1)
}

type MockIdentityCreator struct{ mock.Mock }

func (m *MockIdentityCreator) CreateIdentity(ctx context.Context, email string, metadata map[string]any) (*auth.Identity, error) {
	args := m.Called(ctx, email, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Identity), args.Error(1)
}

// stubSessionSource satisfies SessionSource without a live auth client.
type stubSessionSource struct {
	session *auth.Session
	hub     func(fn func(auth.Event, *auth.Session)) *auth.Subscription
}

func (s *stubSessionSource) Session() *auth.Session { return s.session }

func (s *stubSessionSource) OnStateChange(fn func(auth.Event, *auth.Session)) *auth.Subscription {
	if s.hub != nil {
		return s.hub(fn)
	}
	return nil
}
