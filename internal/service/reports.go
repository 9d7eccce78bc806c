package service

import (
	"fmt"

	"saccoflow/internal/domain"
	"saccoflow/internal/view"
)

// ReportType selects which table a report covers.
type ReportType string

const (
	ReportMembers      ReportType = "members"
	ReportTransactions ReportType = "transactions"
	ReportLoans        ReportType = "loans"
)

// Report is a prepared export: the selected rows plus the declared intent
// to export them. Rendering the file is an external collaborator's job;
// this application only assembles the data set.
type Report struct {
	Type     ReportType `json:"type"`
	From     string     `json:"from,omitempty"`
	To       string     `json:"to,omitempty"`
	RowCount int        `json:"row_count"`
	Rows     any        `json:"rows"`
}

// ReportBuilder is the tenant admin's reports slice. It draws on the
// other slices' already-loaded state instead of fetching again.
type ReportBuilder struct {
	members      *MemberDirectory
	transactions *TransactionLog
	loans        *LoanDesk
}

func NewReportBuilder(members *MemberDirectory, transactions *TransactionLog, loans *LoanDesk) *ReportBuilder {
	return &ReportBuilder{members: members, transactions: transactions, loans: loans}
}

// Build assembles a report for the selected type over an optional
// inclusive date range. The range does not apply to the members report,
// which has no row date.
func (b *ReportBuilder) Build(reportType ReportType, from, to string) (*Report, error) {
	report := &Report{Type: reportType, From: from, To: to}
	switch reportType {
	case ReportMembers:
		rows := b.members.Members()
		report.Rows, report.RowCount = rows, len(rows)
	case ReportTransactions:
		rows := b.transactions.Filtered(from, to, b.members.Members())
		report.Rows, report.RowCount = rows, len(rows)
	case ReportLoans:
		rows := view.FilterByDateRange(b.loans.Loans(), from, to, loanDate)
		joined := view.JoinLoanMembers(rows, b.members.Members())
		report.Rows, report.RowCount = joined, len(joined)
	default:
		return nil, fmt.Errorf("unknown report type %q", reportType)
	}
	return report, nil
}

func loanDate(l domain.Loan) string { return l.Date }
