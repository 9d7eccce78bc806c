package rest

import (
	"context"

	"saccoflow/internal/domain"
)

const tableProfiles = "profiles"

type profileRepository struct {
	client *Client
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.client.From(tableProfiles).Eq("id", id).Single().Select(ctx, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	var profiles []domain.Profile
	if err := r.client.From(tableProfiles).Select(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
