package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"saccoflow/internal/domain"
)

func TestRegistryService_Load(t *testing.T) {
	mockSaccoRepo := new(MockSaccoRepo)
	mockProfileRepo := new(MockProfileRepo)
	svc := NewRegistryService(mockSaccoRepo, mockProfileRepo)
	ctx := context.Background()

	saccos := []domain.Sacco{
		{ID: "s2", Name: "Newer", Status: domain.SaccoStatusActive},
		{ID: "s1", Name: "Older", Status: domain.SaccoStatusActive},
	}
	profiles := []domain.Profile{
		{ID: "p1", SaccoID: "s1"},
		{ID: "p2", SaccoID: "s1"},
		{ID: "p3", SaccoID: "s2"},
	}
	mockSaccoRepo.On("List", ctx).Return(saccos, nil).Once()
	mockProfileRepo.On("List", ctx).Return(profiles, nil).Once()

	svc.Load(ctx)

	rows := svc.Saccos()
	assert.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].UsersCount)
	assert.Equal(t, 2, rows[1].UsersCount)

	metrics := svc.Metrics()
	assert.Equal(t, 2, metrics.RegisteredSaccos)
	assert.Equal(t, 3, metrics.LivePlatformUsers)
	mockSaccoRepo.AssertExpectations(t)
}

func TestRegistryService_LoadFailureYieldsEmptyRegistry(t *testing.T) {
	mockSaccoRepo := new(MockSaccoRepo)
	mockProfileRepo := new(MockProfileRepo)
	svc := NewRegistryService(mockSaccoRepo, mockProfileRepo)
	ctx := context.Background()

	mockSaccoRepo.On("List", ctx).Return(nil, assert.AnError).Once()

	svc.Load(ctx)

	assert.Empty(t, svc.Saccos())
	assert.Equal(t, RegistryMetrics{}, svc.Metrics())
	mockProfileRepo.AssertNotCalled(t, "List", mock.Anything)
}

func TestRegistryService_CreateBlankIsNoOp(t *testing.T) {
	mockSaccoRepo := new(MockSaccoRepo)
	svc := NewRegistryService(mockSaccoRepo, new(MockProfileRepo))
	ctx := context.Background()

	_, err := svc.Create(ctx, SaccoForm{Name: "", Email: ""})

	assert.ErrorIs(t, err, ErrMissingFields)
	assert.Empty(t, svc.Saccos())
	mockSaccoRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegistryService_CreatePrependsNewSacco(t *testing.T) {
	mockSaccoRepo := new(MockSaccoRepo)
	mockProfileRepo := new(MockProfileRepo)
	svc := NewRegistryService(mockSaccoRepo, mockProfileRepo)
	ctx := context.Background()

	mockSaccoRepo.On("List", ctx).Return([]domain.Sacco{{ID: "s1", Name: "Existing"}}, nil).Once()
	mockProfileRepo.On("List", ctx).Return([]domain.Profile{}, nil).Once()
	svc.Load(ctx)

	created := &domain.Sacco{ID: "s2", Name: "Skyline Savings Group", Email: "admin@sacco.com", Status: domain.SaccoStatusActive}
	mockSaccoRepo.On("Create", ctx, mock.MatchedBy(func(s *domain.Sacco) bool {
		return s.Name == "Skyline Savings Group" && s.Status == domain.SaccoStatusActive
	})).Return(created, nil).Once()

	sv, err := svc.Create(ctx, SaccoForm{Name: "Skyline Savings Group", Email: "admin@sacco.com"})

	assert.NoError(t, err)
	assert.Equal(t, 0, sv.UsersCount)
	rows := svc.Saccos()
	assert.Len(t, rows, 2)
	assert.Equal(t, "Skyline Savings Group", rows[0].Name)
	mockSaccoRepo.AssertExpectations(t)
}

func TestRegistryService_ConcurrentCreateAndRead(t *testing.T) {
	mockSaccoRepo := new(MockSaccoRepo)
	mockProfileRepo := new(MockProfileRepo)
	svc := NewRegistryService(mockSaccoRepo, mockProfileRepo)
	ctx := context.Background()

	mockSaccoRepo.On("List", ctx).Return([]domain.Sacco{}, nil).Once()
	mockProfileRepo.On("List", ctx).Return([]domain.Profile{}, nil).Once()
	svc.Load(ctx)

	mockSaccoRepo.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Sacco{ID: "s-new", Status: domain.SaccoStatusActive}, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("Sacco %d", i)
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := svc.Create(ctx, SaccoForm{Name: name, Email: "admin@sacco.com"}); err != nil {
				t.Errorf("Create: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			for _, sv := range svc.Saccos() {
				_ = sv.UsersCount
			}
			_ = svc.Metrics()
		}()
	}
	wg.Wait()

	assert.Len(t, svc.Saccos(), 8)
	assert.Equal(t, 8, svc.Metrics().RegisteredSaccos)
}

func TestRegistryService_ToggleTwiceRestoresStatus(t *testing.T) {
	mockSaccoRepo := new(MockSaccoRepo)
	mockProfileRepo := new(MockProfileRepo)
	svc := NewRegistryService(mockSaccoRepo, mockProfileRepo)
	ctx := context.Background()

	mockSaccoRepo.On("List", ctx).Return([]domain.Sacco{{ID: "s1", Status: domain.SaccoStatusActive}}, nil).Once()
	mockProfileRepo.On("List", ctx).Return([]domain.Profile{}, nil).Once()
	svc.Load(ctx)

	mockSaccoRepo.On("UpdateStatus", ctx, "s1", domain.SaccoStatusSuspended).Return(nil).Once()
	mockSaccoRepo.On("UpdateStatus", ctx, "s1", domain.SaccoStatusActive).Return(nil).Once()

	first, err := svc.ToggleStatus(ctx, "s1")
	assert.NoError(t, err)
	assert.Equal(t, domain.SaccoStatusSuspended, first.Status)

	second, err := svc.ToggleStatus(ctx, "s1")
	assert.NoError(t, err)
	assert.Equal(t, domain.SaccoStatusActive, second.Status)
	mockSaccoRepo.AssertExpectations(t)
}

func TestRegistryService_DeleteRequiresConfirmation(t *testing.T) {
	mockSaccoRepo := new(MockSaccoRepo)
	mockProfileRepo := new(MockProfileRepo)
	svc := NewRegistryService(mockSaccoRepo, mockProfileRepo)
	ctx := context.Background()

	mockSaccoRepo.On("List", ctx).Return([]domain.Sacco{{ID: "s1"}}, nil).Once()
	mockProfileRepo.On("List", ctx).Return([]domain.Profile{}, nil).Once()
	svc.Load(ctx)

	err := svc.Delete(ctx, "s1", false)
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Len(t, svc.Saccos(), 1)
	mockSaccoRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	mockSaccoRepo.On("Delete", ctx, "s1").Return(nil).Once()
	err = svc.Delete(ctx, "s1", true)
	assert.NoError(t, err)
	assert.Empty(t, svc.Saccos())
	mockSaccoRepo.AssertExpectations(t)
}
