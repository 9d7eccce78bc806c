package service

import (
	"context"
	"time"

	"saccoflow/internal/auth"
	"saccoflow/internal/domain"
	"saccoflow/internal/logger"
	"saccoflow/internal/repository"
)

// defaultProfileRetryDelay is the fixed wait before the single profile
// fetch retry. One retry only; there is no backoff ladder.
const defaultProfileRetryDelay = 500 * time.Millisecond

// SessionSource is the slice of the auth client the resolver needs.
type SessionSource interface {
	Session() *auth.Session
	OnStateChange(fn func(auth.Event, *auth.Session)) *auth.Subscription
}

// Resolution is the outcome of session bootstrap: exactly one role, plus
// the profile when one was found.
type Resolution struct {
	Role     domain.Role
	Identity auth.Identity
	Profile  *domain.Profile
}

// Resolver turns the current session into a dashboard role. A missing or
// failing profile fetch is retried exactly once after a fixed delay and
// then deliberately falls through to the member role; that fallback is a
// product decision, not a swallowed error.
type Resolver struct {
	sessions   SessionSource
	profiles   repository.ProfileRepository
	retryDelay time.Duration
}

func NewResolver(sessions SessionSource, profiles repository.ProfileRepository) *Resolver {
	return &Resolver{
		sessions:   sessions,
		profiles:   profiles,
		retryDelay: defaultProfileRetryDelay,
	}
}

// Resolve maps the current auth state to a Resolution. No session means
// the anonymous landing role.
func (r *Resolver) Resolve(ctx context.Context) Resolution {
	session := r.sessions.Session()
	if session == nil {
		return Resolution{Role: domain.RoleAnonymous}
	}
	return r.resolveIdentity(ctx, session.User)
}

func (r *Resolver) resolveIdentity(ctx context.Context, identity auth.Identity) Resolution {
	profile, err := r.fetchProfileOnce(ctx, identity.ID)
	if err != nil {
		logger.Warn("Profile fetch failed, retrying once", "identity", identity.ID, "error", err)
		select {
		case <-time.After(r.retryDelay):
		case <-ctx.Done():
			return Resolution{Role: domain.RoleMember, Identity: identity}
		}
		profile, err = r.fetchProfileOnce(ctx, identity.ID)
	}
	if err != nil {
		logger.Warn("Profile unresolved, defaulting to member view", "identity", identity.ID, "error", err)
		return Resolution{Role: domain.RoleMember, Identity: identity}
	}
	return Resolution{
		Role:     domain.RoleFromProfile(profile.Role),
		Identity: identity,
		Profile:  profile,
	}
}

func (r *Resolver) fetchProfileOnce(ctx context.Context, id string) (*domain.Profile, error) {
	return r.profiles.GetByID(ctx, id)
}

// Watch re-resolves on every sign-in and reverts to the anonymous role on
// sign-out, for the lifetime of the returned subscription.
func (r *Resolver) Watch(ctx context.Context, onChange func(Resolution)) *auth.Subscription {
	return r.sessions.OnStateChange(func(event auth.Event, session *auth.Session) {
		switch event {
		case auth.EventSignedIn:
			onChange(r.resolveIdentity(ctx, session.User))
		case auth.EventSignedOut:
			onChange(Resolution{Role: domain.RoleAnonymous})
		}
	})
}
