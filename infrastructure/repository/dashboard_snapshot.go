package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/techhr/ad-manager-api/infrastructure/database/postgres"
	"github.com/techhr/ad-manager-api/internal/domain"
)

const (
	dashboardSnapshotsTable = "dashboard_snapshots"
)

type DashboardSnapshotRepository interface {
	SaveOrUpdate(snapshot *domain.DashboardSnapshot) error
	GetByUserAndDate(userID int, date time.Time) (*domain.DashboardSnapshot, error)
}

type dashboardSnapshotRepository struct {
	conn *postgres.Connection
}

func NewDashboardSnapshotRepository(conn *postgres.Connection) DashboardSnapshotRepository {
	return &dashboardSnapshotRepository{
		conn: conn,
	}
}

// SaveOrUpdate faz upsert do snapshot do dia, um registro por (user_id, date)
func (r *dashboardSnapshotRepository) SaveOrUpdate(snapshot *domain.DashboardSnapshot) error {
	statsJSON, err := json.Marshal(snapshot.PlatformStats)
	if err != nil {
		return fmt.Errorf("erro ao serializar métricas por plataforma: %w", err)
	}

	queryBuilder := squirrel.
		Insert(dashboardSnapshotsTable).
		Columns("user_id", "date", "total_spent", "today_spent", "total_ads", "platform_stats").
		Values(
			snapshot.UserID,
			snapshot.Date.Format("2006-01-02"),
			snapshot.TotalSpent,
			snapshot.TodaySpent,
			snapshot.TotalAds,
			statsJSON,
		).
		Suffix(`ON CONFLICT (user_id, date) DO UPDATE SET
			total_spent = EXCLUDED.total_spent,
			today_spent = EXCLUDED.today_spent,
			total_ads = EXCLUDED.total_ads,
			platform_stats = EXCLUDED.platform_stats,
			updated_at = NOW()`).
		PlaceholderFormat(squirrel.Dollar)

	snapshotSQL, snapshotArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = r.conn.Exec(snapshotSQL, snapshotArgs...)
	if err != nil {
		return fmt.Errorf("erro ao salvar snapshot: %w", err)
	}

	return nil
}

func (r *dashboardSnapshotRepository) GetByUserAndDate(userID int, date time.Time) (*domain.DashboardSnapshot, error) {
	queryBuilder := squirrel.
		Select("id", "user_id", "date", "total_spent", "today_spent", "total_ads", "platform_stats", "created_at", "updated_at").
		From(dashboardSnapshotsTable).
		Where(squirrel.Eq{"user_id": userID, "date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar)

	snapshotSQL, snapshotArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var snapshot domain.DashboardSnapshot
	var statsJSON []byte
	err = r.conn.QueryRow(snapshotSQL, snapshotArgs...).Scan(
		&snapshot.ID,
		&snapshot.UserID,
		&snapshot.Date,
		&snapshot.TotalSpent,
		&snapshot.TodaySpent,
		&snapshot.TotalAds,
		&statsJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar snapshot: %w", err)
	}

	if err := json.Unmarshal(statsJSON, &snapshot.PlatformStats); err != nil {
		return nil, fmt.Errorf("erro ao decodificar métricas por plataforma: %w", err)
	}

	return &snapshot, nil
}
