package advertising

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/techhr/ad-manager-api/infrastructure/repository"
	"github.com/techhr/ad-manager-api/internal/domain"
	"github.com/techhr/ad-manager-api/pkg/utils"
)

type AdService interface {
	ListAds(userID int, filters *domain.AdFilters) ([]*domain.Ad, error)
	GetAd(userID int, adID string) (*domain.Ad, error)
	CreateAd(userID int, ad *domain.Ad) (*domain.Ad, error)
	UpdateAd(userID int, adID string, ad *domain.Ad) (*domain.Ad, error)
	DeleteAd(userID int, adID string) error
	DuplicateAd(userID int, adID string) (*domain.Ad, error)
	DashboardStats(userID int) (*domain.DashboardStats, error)
}

type Service struct {
	adRepo repository.AdRepository
	now    func() time.Time
}

func NewService(adRepo repository.AdRepository) AdService {
	return &Service{
		adRepo: adRepo,
		now:    time.Now,
	}
}

// ListAds lista os anúncios do usuário, do mais recente para o mais antigo
func (s *Service) ListAds(userID int, filters *domain.AdFilters) ([]*domain.Ad, error) {
	query := domain.AdQuery{UserID: userID}

	if filters != nil {
		query.Platform = filters.Platform
		query.StartFrom, query.StartTo, query.StartToInclusive = resolveStartBounds(filters, s.now())
	}

	return s.adRepo.ListByUser(query)
}

// resolveStartBounds traduz os filtros de data em limites sobre start_date.
//
// Os componentes parciais são aplicados em sequência e cada componente
// posterior sobrepõe os limites do anterior: dia sem mês cai no mês corrente
// e mês sem ano cai no ano corrente. Esse comportamento vem do dashboard
// original e é mantido de propósito. Um intervalo explícito (startDate e
// endDate juntos) ignora os componentes e usa limite superior inclusivo.
func resolveStartBounds(filters *domain.AdFilters, now time.Time) (from, to *time.Time, inclusive bool) {
	if filters.Year != nil || filters.Month != nil || filters.Day != nil {
		var gte, lt time.Time

		if filters.Year != nil {
			gte = time.Date(*filters.Year, time.January, 1, 0, 0, 0, 0, now.Location())
			lt = time.Date(*filters.Year+1, time.January, 1, 0, 0, 0, 0, now.Location())
		}

		if filters.Month != nil {
			year := now.Year()
			if filters.Year != nil {
				year = *filters.Year
			}
			// time.Date normaliza mês 13 para janeiro do ano seguinte
			gte = time.Date(year, time.Month(*filters.Month), 1, 0, 0, 0, 0, now.Location())
			lt = time.Date(year, time.Month(*filters.Month+1), 1, 0, 0, 0, 0, now.Location())
		}

		if filters.Day != nil {
			year := now.Year()
			if filters.Year != nil {
				year = *filters.Year
			}
			month := int(now.Month())
			if filters.Month != nil {
				month = *filters.Month
			}
			gte = time.Date(year, time.Month(month), *filters.Day, 0, 0, 0, 0, now.Location())
			lt = time.Date(year, time.Month(month), *filters.Day+1, 0, 0, 0, 0, now.Location())
		}

		from, to = &gte, &lt
	}

	if filters.StartDate != nil && filters.EndDate != nil {
		from, to, inclusive = filters.StartDate, filters.EndDate, true
	}

	return from, to, inclusive
}

func (s *Service) GetAd(userID int, adID string) (*domain.Ad, error) {
	ad, err := s.adRepo.GetByIDAndUser(adID, userID)
	if err != nil {
		return nil, err
	}

	if ad == nil {
		return nil, ErrAdNotFound
	}

	return ad, nil
}

func (s *Service) CreateAd(userID int, ad *domain.Ad) (*domain.Ad, error) {
	if err := validateAd(ad); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	ad.ID = id
	ad.UserID = userID
	ad.CreatedAt = s.now()

	return s.adRepo.Create(ad)
}

// UpdateAd substitui o documento inteiro, preservando identidade, dono e
// data de criação. Anúncio de outro dono resulta em ErrAdNotFound.
func (s *Service) UpdateAd(userID int, adID string, ad *domain.Ad) (*domain.Ad, error) {
	if err := validateAd(ad); err != nil {
		return nil, err
	}

	existing, err := s.adRepo.GetByIDAndUser(adID, userID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		return nil, ErrAdNotFound
	}

	ad.ID = existing.ID
	ad.UserID = existing.UserID
	ad.CreatedAt = existing.CreatedAt

	affected, err := s.adRepo.Update(ad)
	if err != nil {
		return nil, err
	}

	if affected == 0 {
		return nil, ErrAdNotFound
	}

	return ad, nil
}

func (s *Service) DeleteAd(userID int, adID string) error {
	affected, err := s.adRepo.Delete(adID, userID)
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrAdNotFound
	}

	return nil
}

// DuplicateAd cria uma cópia do anúncio com nova identidade, nova data de
// criação e o sufixo de cópia no título
func (s *Service) DuplicateAd(userID int, adID string) (*domain.Ad, error) {
	source, err := s.adRepo.GetByIDAndUser(adID, userID)
	if err != nil {
		return nil, err
	}

	if source == nil {
		return nil, ErrAdNotFound
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	duplicate := *source
	duplicate.ID = id
	duplicate.Title = source.Title + domain.TitleCopySuffix
	duplicate.CreatedAt = s.now()

	logrus.WithFields(logrus.Fields{
		"source_ad_id": source.ID,
		"new_ad_id":    duplicate.ID,
	}).Info("Anúncio duplicado")

	return s.adRepo.Create(&duplicate)
}

// DashboardStats agrega as métricas de todos os anúncios do usuário.
//
// todaySpent soma os anúncios com data de início a partir da meia-noite
// local de hoje, o que inclui anúncios com data futura. Plataformas fora do
// enum entram em totalSpent mas ficam de fora de platformStats.
func (s *Service) DashboardStats(userID int) (*domain.DashboardStats, error) {
	ads, err := s.adRepo.ListByUser(domain.AdQuery{UserID: userID})
	if err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{
		PlatformStats: make(map[string]*domain.PlatformStat, len(domain.Platforms)),
		TotalAds:      len(ads),
	}

	for _, platform := range domain.Platforms {
		stats.PlatformStats[platform] = &domain.PlatformStat{}
	}

	today := utils.StartOfToday(s.now())

	for _, ad := range ads {
		stats.TotalSpent += ad.Spent

		if platformStat, ok := stats.PlatformStats[ad.Platform]; ok {
			platformStat.Spent += ad.Spent
			platformStat.Leads += ad.Leads
			platformStat.Clicks += ad.Clicks
		}

		if !ad.StartDate.Before(today) {
			stats.TodaySpent += ad.Spent
		}
	}

	stats.TotalSpent = utils.RoundWithTwoDecimalPlace(stats.TotalSpent)
	stats.TodaySpent = utils.RoundWithTwoDecimalPlace(stats.TodaySpent)
	for _, platformStat := range stats.PlatformStats {
		platformStat.Spent = utils.RoundWithTwoDecimalPlace(platformStat.Spent)
	}

	return stats, nil
}

func validateAd(ad *domain.Ad) error {
	if ad.Title == "" || ad.Platform == "" || ad.Audience == "" || ad.StartDate.IsZero() || ad.Budget == 0 {
		return ErrMissingRequiredData
	}

	if !domain.ValidPlatform(ad.Platform) {
		return ErrInvalidPlatform
	}

	if !domain.ValidAudience(ad.Audience) {
		return ErrInvalidAudience
	}

	if ad.Status == "" {
		ad.Status = domain.AdStatusActive
	}

	if !domain.ValidAdStatus(ad.Status) {
		return ErrInvalidStatus
	}

	return nil
}
