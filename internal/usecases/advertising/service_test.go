package advertising

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/techhr/ad-manager-api/infrastructure/repository/mocks"
	"github.com/techhr/ad-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// Data de referência fixa para os testes: 10 de junho de 2025, 15h
var testNow = time.Date(2025, 6, 10, 15, 0, 0, 0, time.Local)

func newTestService(adRepo *mocks.MockAdRepository) *Service {
	return &Service{
		adRepo: adRepo,
		now:    func() time.Time { return testNow },
	}
}

func intPtr(v int) *int {
	return &v
}

func timePtr(v time.Time) *time.Time {
	return &v
}

func validTestAd() *domain.Ad {
	return &domain.Ad{
		Title:     "Campanha Inverno",
		Platform:  domain.PlatformFacebook,
		Audience:  domain.AudienceCold,
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local),
		Budget:    500,
	}
}

func TestService_ResolveStartBounds(t *testing.T) {
	tests := []struct {
		name     string
		filters  *domain.AdFilters
		validate func(t *testing.T, from, to *time.Time, inclusive bool)
	}{
		{
			name:    "Sem filtros de data - sem limites",
			filters: &domain.AdFilters{},
			validate: func(t *testing.T, from, to *time.Time, inclusive bool) {
				assert.Nil(t, from)
				assert.Nil(t, to)
				assert.False(t, inclusive)
			},
		},
		{
			name:    "Apenas ano - janela do ano inteiro",
			filters: &domain.AdFilters{Year: intPtr(2024)},
			validate: func(t *testing.T, from, to *time.Time, inclusive bool) {
				assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), *from)
				assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), *to)
				assert.False(t, inclusive)
			},
		},
		{
			name:    "Ano e mês - janela do mês com limite superior exclusivo",
			filters: &domain.AdFilters{Year: intPtr(2025), Month: intPtr(3)},
			validate: func(t *testing.T, from, to *time.Time, inclusive bool) {
				assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local), *from)
				assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local), *to)
				assert.False(t, inclusive)
			},
		},
		{
			name:    "Mês sem ano - assume o ano corrente",
			filters: &domain.AdFilters{Month: intPtr(2)},
			validate: func(t *testing.T, from, to *time.Time, inclusive bool) {
				assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local), *from)
				assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local), *to)
			},
		},
		{
			name:    "Dezembro - limite superior vira janeiro do ano seguinte",
			filters: &domain.AdFilters{Year: intPtr(2025), Month: intPtr(12)},
			validate: func(t *testing.T, from, to *time.Time, inclusive bool) {
				assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.Local), *from)
				assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local), *to)
			},
		},
		{
			name:    "Apenas dia - assume mês e ano correntes",
			filters: &domain.AdFilters{Day: intPtr(15)},
			validate: func(t *testing.T, from, to *time.Time, inclusive bool) {
				assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local), *from)
				assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local), *to)
			},
		},
		{
			name: "Dia sobrepõe a janela do mês",
			filters: &domain.AdFilters{
				Year:  intPtr(2025),
				Month: intPtr(3),
				Day:   intPtr(15),
			},
			validate: func(t *testing.T, from, to *time.Time, inclusive bool) {
				assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local), *from)
				assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.Local), *to)
			},
		},
		{
			name: "Intervalo explícito ignora componentes e inclui o limite superior",
			filters: &domain.AdFilters{
				Year:      intPtr(2020),
				StartDate: timePtr(time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)),
				EndDate:   timePtr(time.Date(2025, 1, 31, 0, 0, 0, 0, time.Local)),
			},
			validate: func(t *testing.T, from, to *time.Time, inclusive bool) {
				assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), *from)
				assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.Local), *to)
				assert.True(t, inclusive)
			},
		},
		{
			name: "Apenas startDate sem endDate - intervalo explícito não se aplica",
			filters: &domain.AdFilters{
				StartDate: timePtr(time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)),
			},
			validate: func(t *testing.T, from, to *time.Time, inclusive bool) {
				assert.Nil(t, from)
				assert.Nil(t, to)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, inclusive := resolveStartBounds(tt.filters, testNow)
			tt.validate(t, from, to, inclusive)
		})
	}
}

func TestService_ListAds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdRepo := mocks.NewMockAdRepository(ctrl)
	service := newTestService(mockAdRepo)

	var captured domain.AdQuery
	mockAdRepo.EXPECT().
		ListByUser(gomock.Any()).
		DoAndReturn(func(query domain.AdQuery) ([]*domain.Ad, error) {
			captured = query
			return []*domain.Ad{}, nil
		})

	_, err := service.ListAds(7, &domain.AdFilters{
		Platform: domain.PlatformGoogle,
		Year:     intPtr(2025),
		Month:    intPtr(3),
	})

	assert.NoError(t, err)
	assert.Equal(t, 7, captured.UserID)
	assert.Equal(t, domain.PlatformGoogle, captured.Platform)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local), *captured.StartFrom)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local), *captured.StartTo)
	assert.False(t, captured.StartToInclusive)
}

func TestService_GetAd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdRepo := mocks.NewMockAdRepository(ctrl)
	service := newTestService(mockAdRepo)

	t.Run("Anúncio de outro dono retorna não encontrado", func(t *testing.T) {
		mockAdRepo.EXPECT().
			GetByIDAndUser("ad123", 2).
			Return(nil, nil)

		ad, err := service.GetAd(2, "ad123")
		assert.Nil(t, ad)
		assert.ErrorIs(t, err, ErrAdNotFound)
	})

	t.Run("Anúncio do próprio dono é retornado", func(t *testing.T) {
		expected := &domain.Ad{ID: "ad123", UserID: 1, Title: "Campanha"}

		mockAdRepo.EXPECT().
			GetByIDAndUser("ad123", 1).
			Return(expected, nil)

		ad, err := service.GetAd(1, "ad123")
		assert.NoError(t, err)
		assert.Equal(t, expected, ad)
	})
}

func TestService_CreateAd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdRepo := mocks.NewMockAdRepository(ctrl)
	service := newTestService(mockAdRepo)

	tests := []struct {
		name     string
		ad       *domain.Ad
		setup    func()
		validate func(t *testing.T, created *domain.Ad, err error)
	}{
		{
			name: "Criação atribui dono, identidade e data de criação",
			ad:   validTestAd(),
			setup: func() {
				mockAdRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(ad *domain.Ad) (*domain.Ad, error) {
						return ad, nil
					})
			},
			validate: func(t *testing.T, created *domain.Ad, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, created.ID)
				assert.Equal(t, 1, created.UserID)
				assert.Equal(t, testNow, created.CreatedAt)
				assert.Equal(t, domain.AdStatusActive, created.Status)
			},
		},
		{
			name: "Título ausente",
			ad: func() *domain.Ad {
				ad := validTestAd()
				ad.Title = ""
				return ad
			}(),
			setup: func() {},
			validate: func(t *testing.T, created *domain.Ad, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
		{
			name: "Plataforma fora do enum",
			ad: func() *domain.Ad {
				ad := validTestAd()
				ad.Platform = "TikTok"
				return ad
			}(),
			setup: func() {},
			validate: func(t *testing.T, created *domain.Ad, err error) {
				assert.ErrorIs(t, err, ErrInvalidPlatform)
			},
		},
		{
			name: "Público fora do enum",
			ad: func() *domain.Ad {
				ad := validTestAd()
				ad.Audience = "morno"
				return ad
			}(),
			setup: func() {},
			validate: func(t *testing.T, created *domain.Ad, err error) {
				assert.ErrorIs(t, err, ErrInvalidAudience)
			},
		},
		{
			name: "Status fora do enum",
			ad: func() *domain.Ad {
				ad := validTestAd()
				ad.Status = "arquivado"
				return ad
			}(),
			setup: func() {},
			validate: func(t *testing.T, created *domain.Ad, err error) {
				assert.ErrorIs(t, err, ErrInvalidStatus)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			created, err := service.CreateAd(1, tt.ad)
			tt.validate(t, created, err)
		})
	}
}

func TestService_UpdateAd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdRepo := mocks.NewMockAdRepository(ctrl)
	service := newTestService(mockAdRepo)

	t.Run("Anúncio de outro dono retorna não encontrado", func(t *testing.T) {
		mockAdRepo.EXPECT().
			GetByIDAndUser("ad123", 99).
			Return(nil, nil)

		updated, err := service.UpdateAd(99, "ad123", validTestAd())
		assert.Nil(t, updated)
		assert.ErrorIs(t, err, ErrAdNotFound)
	})

	t.Run("Identidade, dono e data de criação são preservados", func(t *testing.T) {
		createdAt := time.Date(2025, 1, 5, 10, 0, 0, 0, time.Local)
		existing := &domain.Ad{
			ID:        "ad123",
			UserID:    1,
			Title:     "Original",
			CreatedAt: createdAt,
		}

		mockAdRepo.EXPECT().
			GetByIDAndUser("ad123", 1).
			Return(existing, nil)

		mockAdRepo.EXPECT().
			Update(gomock.Any()).
			Return(int64(1), nil)

		replacement := validTestAd()
		replacement.ID = "forged-id"
		replacement.UserID = 42
		replacement.CreatedAt = testNow

		updated, err := service.UpdateAd(1, "ad123", replacement)
		assert.NoError(t, err)
		assert.Equal(t, "ad123", updated.ID)
		assert.Equal(t, 1, updated.UserID)
		assert.Equal(t, createdAt, updated.CreatedAt)
		assert.Equal(t, "Campanha Inverno", updated.Title)
	})
}

func TestService_DeleteAd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdRepo := mocks.NewMockAdRepository(ctrl)
	service := newTestService(mockAdRepo)

	t.Run("Anúncio de outro dono retorna não encontrado", func(t *testing.T) {
		mockAdRepo.EXPECT().
			Delete("ad123", 99).
			Return(int64(0), nil)

		err := service.DeleteAd(99, "ad123")
		assert.ErrorIs(t, err, ErrAdNotFound)
	})

	t.Run("Remoção do próprio dono", func(t *testing.T) {
		mockAdRepo.EXPECT().
			Delete("ad123", 1).
			Return(int64(1), nil)

		err := service.DeleteAd(1, "ad123")
		assert.NoError(t, err)
	})
}

func TestService_DuplicateAd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdRepo := mocks.NewMockAdRepository(ctrl)
	service := newTestService(mockAdRepo)

	source := &domain.Ad{
		ID:        "ad123",
		UserID:    1,
		Title:     "Campanha Verão",
		Platform:  domain.PlatformFacebook,
		Audience:  domain.AudienceCold,
		Spent:     150,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local),
		Budget:    500,
		CreatedAt: time.Date(2025, 1, 1, 8, 0, 0, 0, time.Local),
	}

	mockAdRepo.EXPECT().
		GetByIDAndUser("ad123", 1).
		Return(source, nil)

	var captured *domain.Ad
	mockAdRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(ad *domain.Ad) (*domain.Ad, error) {
			captured = ad
			return ad, nil
		})

	duplicated, err := service.DuplicateAd(1, "ad123")

	assert.NoError(t, err)
	assert.NotEmpty(t, duplicated.ID)
	assert.NotEqual(t, source.ID, duplicated.ID)
	assert.Equal(t, "Campanha Verão (Cópia)", duplicated.Title)
	assert.True(t, duplicated.CreatedAt.After(source.CreatedAt))
	assert.Equal(t, source.UserID, duplicated.UserID)
	assert.Equal(t, source.Spent, duplicated.Spent)
	assert.Equal(t, captured, duplicated)

	// O original não pode ser alterado pela duplicação
	assert.Equal(t, "Campanha Verão", source.Title)
}

func TestService_DashboardStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdRepo := mocks.NewMockAdRepository(ctrl)
	service := newTestService(mockAdRepo)

	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		ads      []*domain.Ad
		validate func(t *testing.T, stats *domain.DashboardStats)
	}{
		{
			name: "Soma por plataforma e total geral",
			ads: []*domain.Ad{
				{Platform: domain.PlatformFacebook, Spent: 10, Leads: 2, Clicks: 5, StartDate: today.AddDate(0, -1, 0)},
				{Platform: domain.PlatformFacebook, Spent: 20, Leads: 3, Clicks: 7, StartDate: today.AddDate(0, -1, 0)},
				{Platform: domain.PlatformGoogle, Spent: 30, Leads: 1, Clicks: 4, StartDate: today.AddDate(0, -1, 0)},
			},
			validate: func(t *testing.T, stats *domain.DashboardStats) {
				assert.Equal(t, 60.0, stats.TotalSpent)
				assert.Equal(t, 3, stats.TotalAds)
				assert.Equal(t, 30.0, stats.PlatformStats[domain.PlatformFacebook].Spent)
				assert.Equal(t, 5, stats.PlatformStats[domain.PlatformFacebook].Leads)
				assert.Equal(t, 12, stats.PlatformStats[domain.PlatformFacebook].Clicks)
				assert.Equal(t, 30.0, stats.PlatformStats[domain.PlatformGoogle].Spent)
				assert.Equal(t, 0.0, stats.PlatformStats[domain.PlatformInstagram].Spent)
			},
		},
		{
			name: "Plataforma desconhecida entra no total mas não nas plataformas",
			ads: []*domain.Ad{
				{Platform: domain.PlatformFacebook, Spent: 10, StartDate: today.AddDate(0, -1, 0)},
				{Platform: "TikTok", Spent: 25, StartDate: today.AddDate(0, -1, 0)},
			},
			validate: func(t *testing.T, stats *domain.DashboardStats) {
				assert.Equal(t, 35.0, stats.TotalSpent)
				assert.Equal(t, 10.0, stats.PlatformStats[domain.PlatformFacebook].Spent)
				assert.Len(t, stats.PlatformStats, 3)
				assert.NotContains(t, stats.PlatformStats, "TikTok")
			},
		},
		{
			name: "todaySpent conta da meia-noite de hoje em diante, incluindo datas futuras",
			ads: []*domain.Ad{
				{Platform: domain.PlatformFacebook, Spent: 10, StartDate: today},                        // meia-noite de hoje: conta
				{Platform: domain.PlatformFacebook, Spent: 20, StartDate: today.Add(-time.Nanosecond)}, // ontem 23:59: não conta
				{Platform: domain.PlatformGoogle, Spent: 40, StartDate: today.AddDate(0, 0, 5)},        // futuro: conta
			},
			validate: func(t *testing.T, stats *domain.DashboardStats) {
				assert.Equal(t, 50.0, stats.TodaySpent)
				assert.Equal(t, 70.0, stats.TotalSpent)
			},
		},
		{
			name: "Sem anúncios - estatísticas zeradas com plataformas fixas",
			ads:  []*domain.Ad{},
			validate: func(t *testing.T, stats *domain.DashboardStats) {
				assert.Equal(t, 0.0, stats.TotalSpent)
				assert.Equal(t, 0.0, stats.TodaySpent)
				assert.Equal(t, 0, stats.TotalAds)
				assert.Len(t, stats.PlatformStats, 3)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAdRepo.EXPECT().
				ListByUser(domain.AdQuery{UserID: 1}).
				Return(tt.ads, nil)

			stats, err := service.DashboardStats(1)
			assert.NoError(t, err)
			tt.validate(t, stats)
		})
	}
}
