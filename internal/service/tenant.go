package service

import (
	"context"

	"saccoflow/internal/repository/rest"
)

// TenantOverview is the tenant dashboard's headline numbers, recomputed
// from the slices' local state.
type TenantOverview struct {
	TotalMembers int   `json:"total_members"`
	TotalSavings int64 `json:"total_savings"`
	ActiveLoans  int   `json:"active_loans"`
}

// TenantDashboard groups the tenant admin's feature slices. The sacco id
// is resolved once from the signed-in profile and fixed at construction;
// each slice owns only its own rows.
type TenantDashboard struct {
	Members      *MemberDirectory
	Transactions *TransactionLog
	Loans        *LoanDesk
	Reports      *ReportBuilder
	Audit        *AuditTrail
	Broadcasts   *Broadcaster
}

// NewTenantDashboard wires the slices for one sacco. actedBy is the
// signed-in identity stamped onto rows the admin creates.
func NewTenantDashboard(store *rest.Store, identities IdentityCreator, saccoID, actedBy string) *TenantDashboard {
	members := NewMemberDirectory(store.MemberRepository, identities, saccoID)
	transactions := NewTransactionLog(store.TransactionRepository, saccoID, actedBy)
	loans := NewLoanDesk(store.LoanRepository, saccoID)
	return &TenantDashboard{
		Members:      members,
		Transactions: transactions,
		Loans:        loans,
		Reports:      NewReportBuilder(members, transactions, loans),
		Audit:        NewAuditTrail(store.AuditLogRepository, saccoID),
		Broadcasts:   NewBroadcaster(store.NotificationRepository, saccoID, actedBy),
	}
}

// Load refreshes every slice. Each slice logs its own read failures and
// falls back to an empty list, so a partial outage degrades a panel, not
// the dashboard.
func (d *TenantDashboard) Load(ctx context.Context) {
	d.Members.Load(ctx)
	d.Transactions.Load(ctx)
	d.Loans.Load(ctx)
	d.Audit.Load(ctx)
	d.Broadcasts.Load(ctx)
}

// Overview recomputes the headline numbers from local state.
func (d *TenantDashboard) Overview() TenantOverview {
	return TenantOverview{
		TotalMembers: len(d.Members.Members()),
		TotalSavings: d.Transactions.TotalSavings(),
		ActiveLoans:  d.Loans.ActiveCount(),
	}
}
