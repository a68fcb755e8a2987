package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/techhr/ad-manager-api/infrastructure/repository/mocks"
	"github.com/techhr/ad-manager-api/internal/domain"
	"github.com/techhr/ad-manager-api/internal/usecases/advertising"
	"go.uber.org/mock/gomock"
)

func newTestSnapshotService(
	userRepo *mocks.MockUserRepository,
	snapshotRepo *mocks.MockDashboardSnapshotRepository,
	adRepo *mocks.MockAdRepository,
	enabled bool,
) *DashboardSnapshotService {
	return &DashboardSnapshotService{
		scheduler: gocron.NewScheduler(time.Local),
		config: DashboardSnapshotConfig{
			CronSchedule: "0 2 * * *",
			Enabled:      enabled,
		},
		userRepo:     userRepo,
		snapshotRepo: snapshotRepo,
		adService:    advertising.NewService(adRepo),
	}
}

func TestDashboardSnapshotService_SnapshotAllUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockDashboardSnapshotRepository(ctrl)
	mockAdRepo := mocks.NewMockAdRepository(ctrl)

	service := newTestSnapshotService(mockUserRepo, mockSnapshotRepo, mockAdRepo, true)

	mockUserRepo.EXPECT().
		ListUserIDs().
		Return([]int{1, 2}, nil)

	mockAdRepo.EXPECT().
		ListByUser(domain.AdQuery{UserID: 1}).
		Return([]*domain.Ad{
			{Platform: domain.PlatformFacebook, Spent: 100, Leads: 4, Clicks: 9},
		}, nil)

	mockAdRepo.EXPECT().
		ListByUser(domain.AdQuery{UserID: 2}).
		Return([]*domain.Ad{}, nil)

	captured := make(map[int]*domain.DashboardSnapshot)
	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Times(2).
		DoAndReturn(func(snapshot *domain.DashboardSnapshot) error {
			captured[snapshot.UserID] = snapshot
			return nil
		})

	service.snapshotAllUsers()

	assert.Len(t, captured, 2)
	assert.Equal(t, 100.0, captured[1].TotalSpent)
	assert.Equal(t, 1, captured[1].TotalAds)
	assert.Equal(t, 100.0, captured[1].PlatformStats[domain.PlatformFacebook].Spent)
	assert.Equal(t, 0.0, captured[2].TotalSpent)
	assert.Equal(t, 0, captured[2].TotalAds)
}

func TestDashboardSnapshotService_SnapshotAllUsers_ContinuesOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockDashboardSnapshotRepository(ctrl)
	mockAdRepo := mocks.NewMockAdRepository(ctrl)

	service := newTestSnapshotService(mockUserRepo, mockSnapshotRepo, mockAdRepo, true)

	mockUserRepo.EXPECT().
		ListUserIDs().
		Return([]int{1, 2}, nil)

	// Falha no primeiro usuário não impede o segundo
	mockAdRepo.EXPECT().
		ListByUser(domain.AdQuery{UserID: 1}).
		Return(nil, assert.AnError)

	mockAdRepo.EXPECT().
		ListByUser(domain.AdQuery{UserID: 2}).
		Return([]*domain.Ad{}, nil)

	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(snapshot *domain.DashboardSnapshot) error {
			assert.Equal(t, 2, snapshot.UserID)
			return nil
		})

	service.snapshotAllUsers()
}

func TestDashboardSnapshotService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockDashboardSnapshotRepository(ctrl)
	mockAdRepo := mocks.NewMockAdRepository(ctrl)

	service := newTestSnapshotService(mockUserRepo, mockSnapshotRepo, mockAdRepo, false)

	err := service.Start(context.Background())
	assert.NoError(t, err)

	status := service.Status()
	assert.Equal(t, false, status["enabled"])
	assert.Equal(t, false, status["running"])
}
