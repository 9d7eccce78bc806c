package service

import (
	"context"
	"sync"

	"saccoflow/internal/domain"
	"saccoflow/internal/logger"
	"saccoflow/internal/repository"
	"saccoflow/internal/view"
)

// Broadcaster is the tenant admin's notifications slice: announcements
// sent to every member of the sacco.
type Broadcaster struct {
	noteRepo repository.NotificationRepository
	saccoID  string
	sentBy   string

	// mu guards the notifications slice header; the reducers replace the
	// slice wholesale so accessor snapshots stay safe to read unlocked.
	mu            sync.Mutex
	notifications []domain.Notification
}

func NewBroadcaster(noteRepo repository.NotificationRepository, saccoID, sentBy string) *Broadcaster {
	return &Broadcaster{noteRepo: noteRepo, saccoID: saccoID, sentBy: sentBy}
}

// Load fetches the sacco's sent announcements; failures are logged and
// leave an empty history.
func (b *Broadcaster) Load(ctx context.Context) {
	notes, err := b.noteRepo.ListBySacco(ctx, b.saccoID)
	if err != nil {
		logger.Error("Failed to load notifications", "sacco_id", b.saccoID, "error", err)
		notes = nil
	}
	b.mu.Lock()
	b.notifications = notes
	b.mu.Unlock()
}

// Notifications returns a snapshot of the sent history, newest first.
func (b *Broadcaster) Notifications() []domain.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.notifications
}

// Send broadcasts an announcement. Title and message are both required;
// the row is stamped with the sending identity.
func (b *Broadcaster) Send(ctx context.Context, form NotificationForm) (*domain.Notification, error) {
	if err := checkForm(form); err != nil {
		return nil, err
	}
	created, err := b.noteRepo.Create(ctx, &domain.Notification{
		SaccoID:   b.saccoID,
		Title:     form.Title,
		Message:   form.Message,
		CreatedBy: b.sentBy,
	})
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	b.notifications = view.MergeInsert(b.notifications, *created)
	b.mu.Unlock()
	return created, nil
}
