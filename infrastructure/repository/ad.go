package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/techhr/ad-manager-api/infrastructure/database/postgres"
	"github.com/techhr/ad-manager-api/internal/domain"
)

const (
	adsTable = "ads"
)

var adColumns = []string{
	"id", "user_id", "title", "platform", "spent", "audience", "leads",
	"cost_per_lead", "cost_per_click", "clicks", "impressions", "reach",
	"engagement", "start_date", "end_date", "status", "description",
	"description_en", "target_audience", "budget", "created_at",
}

type AdRepository interface {
	Create(ad *domain.Ad) (*domain.Ad, error)
	GetByIDAndUser(id string, userID int) (*domain.Ad, error)
	ListByUser(query domain.AdQuery) ([]*domain.Ad, error)
	Update(ad *domain.Ad) (int64, error)
	Delete(id string, userID int) (int64, error)
}

type adRepository struct {
	conn *postgres.Connection
}

func NewAdRepository(conn *postgres.Connection) AdRepository {
	return &adRepository{
		conn: conn,
	}
}

func (r *adRepository) Create(ad *domain.Ad) (*domain.Ad, error) {
	queryBuilder := squirrel.
		Insert(adsTable).
		Columns(adColumns...).
		Values(
			ad.ID, ad.UserID, ad.Title, ad.Platform, ad.Spent, ad.Audience,
			ad.Leads, ad.CostPerLead, ad.CostPerClick, ad.Clicks,
			ad.Impressions, ad.Reach, ad.Engagement, ad.StartDate, ad.EndDate,
			ad.Status, ad.Description, ad.DescriptionEn, ad.TargetAudience,
			ad.Budget, ad.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	adsSQL, adsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = r.conn.Exec(adsSQL, adsArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir anúncio: %w", err)
	}

	return ad, nil
}

// GetByIDAndUser retorna nil quando o anúncio não existe ou pertence a outro usuário
func (r *adRepository) GetByIDAndUser(id string, userID int) (*domain.Ad, error) {
	queryBuilder := squirrel.
		Select(adColumns...).
		From(adsTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	adsSQL, adsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	row := r.conn.QueryRow(adsSQL, adsArgs...)
	ad, err := scanAd(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear anúncio: %w", err)
	}

	return ad, nil
}

func (r *adRepository) ListByUser(query domain.AdQuery) ([]*domain.Ad, error) {
	queryBuilder := squirrel.
		Select(adColumns...).
		From(adsTable).
		Where(squirrel.Eq{"user_id": query.UserID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if query.Platform != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"platform": query.Platform})
	}

	if query.StartFrom != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"start_date": *query.StartFrom})
	}

	if query.StartTo != nil {
		if query.StartToInclusive {
			queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"start_date": *query.StartTo})
		} else {
			queryBuilder = queryBuilder.Where(squirrel.Lt{"start_date": *query.StartTo})
		}
	}

	adsSQL, adsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(adsSQL, adsArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar anúncios: %w", err)
	}
	defer rows.Close()

	ads := make([]*domain.Ad, 0)
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear anúncio: %w", err)
		}
		ads = append(ads, ad)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return ads, nil
}

// Update substitui o documento inteiro, sempre restrito a (id, user_id).
// Retorna o número de linhas afetadas; zero indica anúncio inexistente ou de outro dono.
func (r *adRepository) Update(ad *domain.Ad) (int64, error) {
	queryBuilder := squirrel.
		Update(adsTable).
		Set("title", ad.Title).
		Set("platform", ad.Platform).
		Set("spent", ad.Spent).
		Set("audience", ad.Audience).
		Set("leads", ad.Leads).
		Set("cost_per_lead", ad.CostPerLead).
		Set("cost_per_click", ad.CostPerClick).
		Set("clicks", ad.Clicks).
		Set("impressions", ad.Impressions).
		Set("reach", ad.Reach).
		Set("engagement", ad.Engagement).
		Set("start_date", ad.StartDate).
		Set("end_date", ad.EndDate).
		Set("status", ad.Status).
		Set("description", ad.Description).
		Set("description_en", ad.DescriptionEn).
		Set("target_audience", ad.TargetAudience).
		Set("budget", ad.Budget).
		Where(squirrel.Eq{"id": ad.ID, "user_id": ad.UserID}).
		PlaceholderFormat(squirrel.Dollar)

	adsSQL, adsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	result, err := r.conn.Exec(adsSQL, adsArgs...)
	if err != nil {
		return 0, fmt.Errorf("erro ao atualizar anúncio: %w", err)
	}

	return result.RowsAffected()
}

func (r *adRepository) Delete(id string, userID int) (int64, error) {
	queryBuilder := squirrel.
		Delete(adsTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	adsSQL, adsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	result, err := r.conn.Exec(adsSQL, adsArgs...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover anúncio: %w", err)
	}

	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAd(row rowScanner) (*domain.Ad, error) {
	var ad domain.Ad
	err := row.Scan(
		&ad.ID,
		&ad.UserID,
		&ad.Title,
		&ad.Platform,
		&ad.Spent,
		&ad.Audience,
		&ad.Leads,
		&ad.CostPerLead,
		&ad.CostPerClick,
		&ad.Clicks,
		&ad.Impressions,
		&ad.Reach,
		&ad.Engagement,
		&ad.StartDate,
		&ad.EndDate,
		&ad.Status,
		&ad.Description,
		&ad.DescriptionEn,
		&ad.TargetAudience,
		&ad.Budget,
		&ad.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &ad, nil
}
