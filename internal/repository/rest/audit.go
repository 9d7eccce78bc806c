package rest

import (
	"context"

	"saccoflow/internal/domain"
)

const tableAuditLogs = "audit_logs"

type auditLogRepository struct {
	client *Client
}

func (r *auditLogRepository) ListBySacco(ctx context.Context, saccoID string) ([]domain.AuditLog, error) {
	var logs []domain.AuditLog
	err := r.client.From(tableAuditLogs).Eq("sacco_id", saccoID).OrderDesc("date").Select(ctx, &logs)
	if err != nil {
		return nil, err
	}
	return logs, nil
}
