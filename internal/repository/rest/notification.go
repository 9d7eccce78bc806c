package rest

import (
	"context"

	"saccoflow/internal/domain"
)

const tableNotifications = "notifications"

type notificationRepository struct {
	client *Client
}

func (r *notificationRepository) ListBySacco(ctx context.Context, saccoID string) ([]domain.Notification, error) {
	var notes []domain.Notification
	err := r.client.From(tableNotifications).Eq("sacco_id", saccoID).OrderDesc("created_at").Select(ctx, &notes)
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *notificationRepository) Create(ctx context.Context, note *domain.Notification) (*domain.Notification, error) {
	row := map[string]any{
		"sacco_id":   note.SaccoID,
		"title":      note.Title,
		"message":    note.Message,
		"created_by": note.CreatedBy,
	}
	var created domain.Notification
	if err := r.client.From(tableNotifications).Insert(ctx, row, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
