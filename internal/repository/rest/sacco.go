package rest

import (
	"context"

	"saccoflow/internal/domain"
)

const tableSaccos = "saccos"

type saccoRepository struct {
	client *Client
}

func (r *saccoRepository) List(ctx context.Context) ([]domain.Sacco, error) {
	var saccos []domain.Sacco
	err := r.client.From(tableSaccos).OrderDesc("created_at").Select(ctx, &saccos)
	if err != nil {
		return nil, err
	}
	return saccos, nil
}

func (r *saccoRepository) Create(ctx context.Context, sacco *domain.Sacco) (*domain.Sacco, error) {
	row := map[string]any{
		"name":     sacco.Name,
		"email":    sacco.Email,
		"location": sacco.Location,
		"nin":      sacco.NIN,
		"status":   sacco.Status,
	}
	var created domain.Sacco
	if err := r.client.From(tableSaccos).Insert(ctx, row, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *saccoRepository) UpdateStatus(ctx context.Context, id string, status domain.SaccoStatus) error {
	return r.client.From(tableSaccos).Eq("id", id).Update(ctx, map[string]any{"status": status})
}

func (r *saccoRepository) Delete(ctx context.Context, id string) error {
	return r.client.From(tableSaccos).Eq("id", id).Delete(ctx)
}
