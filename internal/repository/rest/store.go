package rest

import "saccoflow/internal/repository"

// Store bundles one repository per data service table, all sharing a client.
type Store struct {
	SaccoRepository        repository.SaccoRepository
	ProfileRepository      repository.ProfileRepository
	MemberRepository       repository.MemberRepository
	TransactionRepository  repository.TransactionRepository
	LoanRepository         repository.LoanRepository
	NotificationRepository repository.NotificationRepository
	AuditLogRepository     repository.AuditLogRepository
}

func NewStore(client *Client) *Store {
	return &Store{
		SaccoRepository:        &saccoRepository{client: client},
		ProfileRepository:      &profileRepository{client: client},
		MemberRepository:       &memberRepository{client: client},
		TransactionRepository:  &transactionRepository{client: client},
		LoanRepository:         &loanRepository{client: client},
		NotificationRepository: &notificationRepository{client: client},
		AuditLogRepository:     &auditLogRepository{client: client},
	}
}
