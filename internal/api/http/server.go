// Package http is the thin HTTP shell over the dashboard services. Handlers
// translate requests to service calls and JSON responses; all business rules
// live in the service layer.
package http

import (
	"context"
	"sync"

	"saccoflow/internal/auth"
	"saccoflow/internal/domain"
	"saccoflow/internal/repository/rest"
	"saccoflow/internal/service"
)

// Server holds the signed-in identity's dashboard state. The resolver's
// role decides which dashboard exists; the others are nil.
type Server struct {
	creds *service.CredentialService
	authn *auth.Client
	admin *auth.AdminClient
	store *rest.Store
	watch *auth.Subscription

	mu         sync.Mutex
	resolution service.Resolution
	registry   *service.RegistryService
	tenant     *service.TenantDashboard
	home       *service.MemberHome
}

// NewServer resolves the current session once and then follows auth state
// changes for its lifetime, swapping the dashboard on every sign-in and
// sign-out. State changes are delivered synchronously, so a credential
// call returns with the dashboard already swapped.
func NewServer(creds *service.CredentialService, resolver *service.Resolver, authn *auth.Client, admin *auth.AdminClient, store *rest.Store) *Server {
	s := &Server{
		creds: creds,
		authn: authn,
		admin: admin,
		store: store,
	}
	s.apply(context.Background(), resolver.Resolve(context.Background()))
	s.watch = resolver.Watch(context.Background(), func(res service.Resolution) {
		s.apply(context.Background(), res)
	})
	return s
}

// Close detaches the server from auth state changes.
func (s *Server) Close() {
	s.watch.Unsubscribe()
}

// apply swaps the dashboard state to match a freshly resolved role. The
// switch is exhaustive over the role variant; each arm loads its own
// dashboard so a signed-in user lands on warm state.
func (s *Server) apply(ctx context.Context, res service.Resolution) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resolution = res
	s.registry, s.tenant, s.home = nil, nil, nil

	switch res.Role {
	case domain.RoleAnonymous:
		// landing view, no dashboard
	case domain.RolePlatformAdmin:
		s.registry = service.NewRegistryService(s.store.SaccoRepository, s.store.ProfileRepository)
		s.registry.Load(ctx)
	case domain.RoleTenantAdmin:
		s.tenant = service.NewTenantDashboard(s.store, s.admin, res.Profile.SaccoID, res.Identity.ID)
		s.tenant.Load(ctx)
	case domain.RoleMember:
		s.home = service.NewMemberHome(service.StoreSlices{
			Members:       s.store.MemberRepository,
			Transactions:  s.store.TransactionRepository,
			Loans:         s.store.LoanRepository,
			Notifications: s.store.NotificationRepository,
		}, res.Identity.ID)
		s.home.Load(ctx)
	}
}

func (s *Server) current() service.Resolution {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolution
}

func (s *Server) registryState() *service.RegistryService {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry
}

func (s *Server) tenantState() *service.TenantDashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tenant
}

func (s *Server) homeState() *service.MemberHome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.home
}
