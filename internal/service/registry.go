package service

import (
	"context"
	"sync"

	"saccoflow/internal/domain"
	"saccoflow/internal/logger"
	"saccoflow/internal/repository"
	"saccoflow/internal/view"
)

// SaccoView is a registry row with the live user count joined in. The
// count is derived from the profiles table, never stored on the sacco.
type SaccoView struct {
	domain.Sacco
	UsersCount int `json:"users_count"`
}

// RegistryMetrics are the platform-overview headline numbers, recomputed
// from local state rather than fetched.
type RegistryMetrics struct {
	RegisteredSaccos  int `json:"registered_saccos"`
	LivePlatformUsers int `json:"live_platform_users"`
}

// RegistryService is the platform admin's sacco registry. It loads every
// organization with its user count and mutates rows one at a time,
// merging each authoritative result into local state.
type RegistryService struct {
	saccoRepo   repository.SaccoRepository
	profileRepo repository.ProfileRepository

	// mu guards the saccos slice header; concurrent handlers share one
	// registry. The reducers replace the slice wholesale, so a snapshot
	// returned by an accessor stays safe to read after the lock is gone.
	mu     sync.Mutex
	saccos []SaccoView
}

func NewRegistryService(saccoRepo repository.SaccoRepository, profileRepo repository.ProfileRepository) *RegistryService {
	return &RegistryService{saccoRepo: saccoRepo, profileRepo: profileRepo}
}

// Load fetches all sacco rows (newest first) and all profile rows, and
// computes each sacco's user count. Read failures are logged and leave an
// empty registry; they are never surfaced to the user.
func (s *RegistryService) Load(ctx context.Context) {
	saccos, err := s.saccoRepo.List(ctx)
	if err != nil {
		logger.Error("Failed to load sacco registry", "error", err)
		s.replace(nil)
		return
	}
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		logger.Error("Failed to load profiles for user counts", "error", err)
		profiles = nil
	}

	counts := make(map[string]int, len(saccos))
	for _, p := range profiles {
		counts[p.SaccoID]++
	}

	views := make([]SaccoView, 0, len(saccos))
	for _, sacco := range saccos {
		views = append(views, SaccoView{Sacco: sacco, UsersCount: counts[sacco.ID]})
	}
	s.replace(views)
}

// Saccos returns a snapshot of the current registry rows.
func (s *RegistryService) Saccos() []SaccoView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saccos
}

// Metrics recomputes the headline numbers from local state.
func (s *RegistryService) Metrics() RegistryMetrics {
	saccos := s.Saccos()
	m := RegistryMetrics{RegisteredSaccos: len(saccos)}
	for _, sv := range saccos {
		m.LivePlatformUsers += sv.UsersCount
	}
	return m
}

// Create registers a new sacco. A blank name or email declines the
// operation outright; nothing is inserted and the registry is unchanged.
// On success the new row is prepended with an active status and a zero
// user count.
func (s *RegistryService) Create(ctx context.Context, form SaccoForm) (*SaccoView, error) {
	if err := checkForm(form); err != nil {
		return nil, err
	}
	created, err := s.saccoRepo.Create(ctx, &domain.Sacco{
		Name:     form.Name,
		Email:    form.Email,
		Location: form.Location,
		NIN:      form.NIN,
		Status:   domain.SaccoStatusActive,
	})
	if err != nil {
		return nil, err
	}
	sv := SaccoView{Sacco: *created, UsersCount: 0}
	s.mu.Lock()
	s.saccos = view.MergeInsert(s.saccos, sv)
	s.mu.Unlock()
	return &sv, nil
}

// ToggleStatus flips a sacco between active and suspended. Toggling twice
// restores the original status.
func (s *RegistryService) ToggleStatus(ctx context.Context, id string) (*SaccoView, error) {
	current, ok := s.find(id)
	if !ok {
		return nil, ErrMissingFields
	}
	next := current.Status.Toggled()
	if err := s.saccoRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	updated := *current
	updated.Status = next
	s.mu.Lock()
	s.saccos = view.MergeUpdate(s.saccos, updated, saccoKey)
	s.mu.Unlock()
	return &updated, nil
}

// Delete removes a sacco. Without explicit confirmation nothing happens
// and the registry is left unchanged.
func (s *RegistryService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := s.saccoRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.saccos = view.MergeDelete(s.saccos, id, saccoKey)
	s.mu.Unlock()
	return nil
}

func (s *RegistryService) replace(saccos []SaccoView) {
	s.mu.Lock()
	s.saccos = saccos
	s.mu.Unlock()
}

func (s *RegistryService) find(id string) (*SaccoView, bool) {
	saccos := s.Saccos()
	for i := range saccos {
		if saccos[i].ID == id {
			return &saccos[i], true
		}
	}
	return nil, false
}

func saccoKey(sv SaccoView) string { return sv.ID }
