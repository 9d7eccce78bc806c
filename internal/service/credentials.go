package service

import (
	"context"

	"saccoflow/internal/auth"
)

// Authenticator is the slice of the auth client the credential flows use.
type Authenticator interface {
	SignInWithPassword(ctx context.Context, email, password string) (*auth.Session, error)
	SignOut(ctx context.Context) error
	UpdatePassword(ctx context.Context, newPassword string) error
	Session() *auth.Session
}

// CredentialService backs the login and password-reset forms.
type CredentialService struct {
	auth     Authenticator
	resolver *Resolver
}

func NewCredentialService(authClient Authenticator, resolver *Resolver) *CredentialService {
	return &CredentialService{auth: authClient, resolver: resolver}
}

// Login signs in and resolves the role for the new session, with the
// resolver's single-retry policy. Sign-in failures carry the auth
// service's message verbatim so the form can display it and allow
// resubmission.
func (s *CredentialService) Login(ctx context.Context, form LoginForm) (Resolution, error) {
	if err := ValidateCredentials(form); err != nil {
		return Resolution{}, err
	}
	session, err := s.auth.SignInWithPassword(ctx, form.Email, form.Password)
	if err != nil {
		return Resolution{}, err
	}
	return s.resolver.resolveIdentity(ctx, session.User), nil
}

// Logout signs the session out; the resolver's watcher reverts the caller
// to the landing view.
func (s *CredentialService) Logout(ctx context.Context) error {
	return s.auth.SignOut(ctx)
}

// ResetReady reports whether the recovery session the emailed link
// establishes is in place; the reset form stays disabled until it is.
func (s *CredentialService) ResetReady() bool {
	return s.auth.Session() != nil
}

// ResetPassword validates the new password (minimum six characters,
// confirmation must match) and submits the update against the recovery
// session.
func (s *CredentialService) ResetPassword(ctx context.Context, form PasswordResetForm) error {
	if err := ValidateCredentials(form); err != nil {
		return err
	}
	if !s.ResetReady() {
		return ErrNoSession
	}
	return s.auth.UpdatePassword(ctx, form.Password)
}
