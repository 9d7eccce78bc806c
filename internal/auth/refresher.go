package auth

import (
	"context"

	"saccoflow/internal/logger"

	"github.com/robfig/cron/v3"
)

// Refresher renews the access token on a schedule so a long-lived session
// never goes stale between user actions. It is the client-side analog of
// the hosted SDK's automatic token refresh.
type Refresher struct {
	client *Client
	cron   *cron.Cron
}

func NewRefresher(client *Client) *Refresher {
	return &Refresher{
		client: client,
		cron:   cron.New(),
	}
}

// Start schedules the refresh job. Schedule uses cron syntax, typically
// "@every 5m".
func (r *Refresher) Start(schedule string) error {
	_, err := r.cron.AddFunc(schedule, r.run)
	if err != nil {
		return err
	}
	r.cron.Start()
	logger.Info("Session refresher started", "schedule", schedule)
	return nil
}

func (r *Refresher) Stop() {
	r.cron.Stop()
}

func (r *Refresher) run() {
	r.client.mu.Lock()
	session := r.client.current
	r.client.mu.Unlock()
	if session == nil || !session.Expired() {
		return
	}
	if _, err := r.client.Refresh(context.Background()); err != nil {
		logger.Warn("Scheduled session refresh failed", "error", err)
	}
}
