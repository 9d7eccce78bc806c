package rest

import (
	"context"

	"saccoflow/internal/domain"
	"saccoflow/internal/repository"
)

const tableMembers = "members"

type memberRepository struct {
	client *Client
}

func (r *memberRepository) ListBySacco(ctx context.Context, saccoID string) ([]domain.Member, error) {
	var members []domain.Member
	err := r.client.From(tableMembers).Eq("sacco_id", saccoID).OrderDesc("date_joined").Select(ctx, &members)
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) GetByProfile(ctx context.Context, profileID string) (*domain.Member, error) {
	var member domain.Member
	err := r.client.From(tableMembers).Eq("profile_id", profileID).Single().Select(ctx, &member)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	row := map[string]any{
		"sacco_id":    member.SaccoID,
		"profile_id":  member.ProfileID,
		"name":        member.Name,
		"phone":       member.Phone,
		"email":       member.Email,
		"nin":         member.NIN,
		"status":      member.Status,
		"date_joined": member.DateJoined,
	}
	var created domain.Member
	if err := r.client.From(tableMembers).Insert(ctx, row, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *memberRepository) Update(ctx context.Context, id string, fields repository.MemberFields) error {
	return r.client.From(tableMembers).Eq("id", id).Update(ctx, fields)
}

func (r *memberRepository) Delete(ctx context.Context, id string) error {
	return r.client.From(tableMembers).Eq("id", id).Delete(ctx)
}
