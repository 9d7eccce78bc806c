package service

import (
	"context"
	"strings"
	"sync"

	"saccoflow/internal/domain"
	"saccoflow/internal/logger"
	"saccoflow/internal/repository"
	"saccoflow/internal/view"
)

// AuditTrail is the tenant admin's read-only view over the audit rows the
// data service records for the sacco.
type AuditTrail struct {
	auditRepo repository.AuditLogRepository
	saccoID   string

	// mu guards the entries slice header; Load replaces it wholesale so
	// accessor snapshots stay safe to read unlocked.
	mu      sync.Mutex
	entries []domain.AuditLog
}

func NewAuditTrail(auditRepo repository.AuditLogRepository, saccoID string) *AuditTrail {
	return &AuditTrail{auditRepo: auditRepo, saccoID: saccoID}
}

// Load fetches the sacco's audit entries; failures are logged and leave an
// empty trail.
func (t *AuditTrail) Load(ctx context.Context) {
	entries, err := t.auditRepo.ListBySacco(ctx, t.saccoID)
	if err != nil {
		logger.Error("Failed to load audit trail", "sacco_id", t.saccoID, "error", err)
		entries = nil
	}
	t.mu.Lock()
	t.entries = entries
	t.mu.Unlock()
}

// Entries returns a snapshot of the unfiltered trail, newest first.
func (t *AuditTrail) Entries() []domain.AuditLog {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.entries
}

// Filter narrows the trail by an action keyword (case-insensitive
// substring) and an inclusive date range. Empty parameters are open.
func (t *AuditTrail) Filter(keyword, from, to string) []domain.AuditLog {
	rows := view.FilterByDateRange(t.Entries(), from, to, auditDate)
	if keyword == "" {
		return rows
	}
	q := strings.ToLower(keyword)
	out := make([]domain.AuditLog, 0, len(rows))
	for _, e := range rows {
		if strings.Contains(strings.ToLower(e.Action), q) {
			out = append(out, e)
		}
	}
	return out
}

func auditDate(e domain.AuditLog) string { return e.Date }
