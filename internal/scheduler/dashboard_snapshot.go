package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/techhr/ad-manager-api/infrastructure/repository"
	"github.com/techhr/ad-manager-api/internal/config"
	"github.com/techhr/ad-manager-api/internal/domain"
	"github.com/techhr/ad-manager-api/internal/usecases/advertising"
)

// DashboardSnapshotConfig representa a configuração do agendador de snapshots
type DashboardSnapshotConfig struct {
	CronSchedule string
	Enabled      bool
}

// DashboardSnapshotService recalcula diariamente as métricas do dashboard de
// cada usuário e guarda o resultado em dashboard_snapshots
type DashboardSnapshotService struct {
	scheduler           *gocron.Scheduler
	config              DashboardSnapshotConfig
	userRepo            repository.UserRepository
	snapshotRepo        repository.DashboardSnapshotRepository
	adService           advertising.AdService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDashboardSnapshotService(
	userRepo repository.UserRepository,
	snapshotRepo repository.DashboardSnapshotRepository,
	adService advertising.AdService,
	appConfig *config.Config,
) *DashboardSnapshotService {
	snapshotConfig := DashboardSnapshotConfig{
		CronSchedule: appConfig.DashboardSnapshot.CronSchedule,
		Enabled:      appConfig.DashboardSnapshot.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
		"enabled":       snapshotConfig.Enabled,
	}).Info("Configuração do agendador de snapshots do dashboard carregada")

	return &DashboardSnapshotService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       snapshotConfig,
		userRepo:     userRepo,
		snapshotRepo: snapshotRepo,
		adService:    adService,
	}
}

// Start inicia o agendador
func (s *DashboardSnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Snapshot do dashboard desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.snapshotAllUsers()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara a geração de snapshots fora do horário agendado
func (s *DashboardSnapshotService) TriggerManualSync() {
	go s.snapshotAllUsers()
}

// Status retorna o estado atual do agendador
func (s *DashboardSnapshotService) Status() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron_schedule":     s.config.CronSchedule,
		"running":           s.syncRunning,
		"last_started_at":   s.lastSyncStartedAt,
		"last_completed_at": s.lastSyncCompletedAt,
	}
}

func (s *DashboardSnapshotService) snapshotAllUsers() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de snapshots já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando geração de snapshots do dashboard")

	userIDs, err := s.userRepo.ListUserIDs()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar usuários para geração de snapshots")
		return
	}

	if len(userIDs) == 0 {
		logrus.Info("Nenhum usuário encontrado para geração de snapshots")
		return
	}

	date := time.Now()
	successCount := 0
	errorCount := 0

	for _, userID := range userIDs {
		if err := s.snapshotUser(userID, date); err != nil {
			logrus.WithError(err).WithField("user_id", userID).Error("Erro ao gerar snapshot do usuário")
			errorCount++
			continue
		}
		successCount++
	}

	logrus.WithFields(logrus.Fields{
		"users":   len(userIDs),
		"success": successCount,
		"errors":  errorCount,
	}).Info("Geração de snapshots do dashboard concluída")
}

func (s *DashboardSnapshotService) snapshotUser(userID int, date time.Time) error {
	stats, err := s.adService.DashboardStats(userID)
	if err != nil {
		return err
	}

	return s.snapshotRepo.SaveOrUpdate(&domain.DashboardSnapshot{
		UserID:        userID,
		Date:          date,
		TotalSpent:    stats.TotalSpent,
		TodaySpent:    stats.TodaySpent,
		TotalAds:      stats.TotalAds,
		PlatformStats: stats.PlatformStats,
	})
}
