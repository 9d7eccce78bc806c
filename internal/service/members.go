package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"saccoflow/internal/auth"
	"saccoflow/internal/domain"
	"saccoflow/internal/logger"
	"saccoflow/internal/repository"
	"saccoflow/internal/view"
)

// IdentityCreator is the privileged admin slice that can create a login
// identity for a new member out-of-band of self-registration.
type IdentityCreator interface {
	CreateIdentity(ctx context.Context, email string, metadata map[string]any) (*auth.Identity, error)
}

// MemberDirectory is the tenant admin's members slice: directory listing
// with substring search, plus add/edit/remove.
type MemberDirectory struct {
	memberRepo repository.MemberRepository
	identities IdentityCreator
	saccoID    string

	// mu guards the members slice header; the reducers replace the slice
	// wholesale so accessor snapshots stay safe to read unlocked.
	mu      sync.Mutex
	members []domain.Member
}

// NewMemberDirectory builds the directory for one sacco. identities may be
// an unconfigured (nil) admin client; adding members then fails with a
// recoverable configuration error.
func NewMemberDirectory(memberRepo repository.MemberRepository, identities IdentityCreator, saccoID string) *MemberDirectory {
	return &MemberDirectory{memberRepo: memberRepo, identities: identities, saccoID: saccoID}
}

// Load fetches the sacco's members. Read failures are logged and leave an
// empty directory.
func (d *MemberDirectory) Load(ctx context.Context) {
	members, err := d.memberRepo.ListBySacco(ctx, d.saccoID)
	if err != nil {
		logger.Error("Failed to load members", "sacco_id", d.saccoID, "error", err)
		members = nil
	}
	d.mu.Lock()
	d.members = members
	d.mu.Unlock()
}

// Search filters the directory by a case-insensitive substring across
// name, phone and email. An empty query returns everything.
func (d *MemberDirectory) Search(query string) []domain.Member {
	members := d.Members()
	out := make([]domain.Member, 0, len(members))
	for _, m := range members {
		if view.MatchesMemberSearch(query, m.Name, m.Phone, m.Email) {
			out = append(out, m)
		}
	}
	return out
}

// Members returns a snapshot of the unfiltered directory.
func (d *MemberDirectory) Members() []domain.Member {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.members
}

// Add creates a login identity through the privileged interface and then
// inserts the member row. If identity creation fails the member row is
// not created and the error is surfaced with remediation context.
func (d *MemberDirectory) Add(ctx context.Context, form MemberForm) (*domain.Member, error) {
	if err := checkForm(form); err != nil {
		return nil, err
	}

	identity, err := d.identities.CreateIdentity(ctx, form.Email, map[string]any{
		"role":      domain.ProfileRoleMember,
		"full_name": form.Name,
		"sacco_id":  d.saccoID,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create the member's login identity: %w", err)
	}

	dateJoined := form.DateJoined
	if dateJoined == "" {
		dateJoined = time.Now().Format("2006-01-02")
	}
	created, err := d.memberRepo.Create(ctx, &domain.Member{
		SaccoID:    d.saccoID,
		ProfileID:  identity.ID,
		Name:       form.Name,
		Phone:      form.Phone,
		Email:      form.Email,
		NIN:        form.NIN,
		Status:     memberStatus(form.Status),
		DateJoined: dateJoined,
	})
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	d.members = view.MergeInsert(d.members, *created)
	d.mu.Unlock()
	return created, nil
}

// Update edits the targeted fields of an existing member.
func (d *MemberDirectory) Update(ctx context.Context, id string, form MemberForm) (*domain.Member, error) {
	if err := checkForm(form); err != nil {
		return nil, err
	}
	current, ok := d.find(id)
	if !ok {
		return nil, ErrMissingFields
	}
	fields := repository.MemberFields{
		Name:   form.Name,
		Phone:  form.Phone,
		Email:  form.Email,
		NIN:    form.NIN,
		Status: memberStatus(form.Status),
	}
	if err := d.memberRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	updated := *current
	updated.Name = fields.Name
	updated.Phone = fields.Phone
	updated.Email = fields.Email
	updated.NIN = fields.NIN
	updated.Status = fields.Status
	d.mu.Lock()
	d.members = view.MergeUpdate(d.members, updated, memberKey)
	d.mu.Unlock()
	return &updated, nil
}

// Delete removes a member after explicit confirmation.
func (d *MemberDirectory) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := d.memberRepo.Delete(ctx, id); err != nil {
		return err
	}
	d.mu.Lock()
	d.members = view.MergeDelete(d.members, id, memberKey)
	d.mu.Unlock()
	return nil
}

func (d *MemberDirectory) find(id string) (*domain.Member, bool) {
	members := d.Members()
	for i := range members {
		if members[i].ID == id {
			return &members[i], true
		}
	}
	return nil, false
}

func memberStatus(s string) domain.MemberStatus {
	if s == string(domain.MemberStatusInactive) {
		return domain.MemberStatusInactive
	}
	return domain.MemberStatusActive
}

func memberKey(m domain.Member) string { return m.ID }
