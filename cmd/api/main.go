package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/techhr/ad-manager-api/infrastructure/database/postgres"
	"github.com/techhr/ad-manager-api/infrastructure/repository"
	"github.com/techhr/ad-manager-api/internal/api"
	"github.com/techhr/ad-manager-api/internal/config"
	"github.com/techhr/ad-manager-api/internal/scheduler"
	"github.com/techhr/ad-manager-api/internal/usecases/advertising"
	"github.com/techhr/ad-manager-api/internal/usecases/authenticating"
	"github.com/techhr/ad-manager-api/internal/usecases/supporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := postgres.RunMigrations(cfg.Database.DSN); err != nil {
		logrus.WithError(err).Fatal("Erro ao executar migrações do banco de dados")
	}

	adRepo := repository.NewAdRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	faqRepo := repository.NewFAQRepository(pgConn)
	snapshotRepo := repository.NewDashboardSnapshotRepository(pgConn)

	adService := advertising.NewService(adRepo)
	authenticator := authenticating.NewService(userRepo, cfg)
	supportService := supporting.NewService(faqRepo)

	snapshotService := scheduler.NewDashboardSnapshotService(
		userRepo,
		snapshotRepo,
		adService,
		cfg,
	)

	if err := snapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots do dashboard")
	} else {
		logrus.Info("Agendador de snapshots do dashboard iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		adService,
		authenticator,
		supportService,
		snapshotService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
