package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-analytics-api/infrastructure/repository"
	"github.com/vfg2006/influencer-analytics-api/infrastructure/store"
	"github.com/vfg2006/influencer-analytics-api/internal/api"
	"github.com/vfg2006/influencer-analytics-api/internal/config"
	"github.com/vfg2006/influencer-analytics-api/internal/scheduler"
	"github.com/vfg2006/influencer-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/influencer-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/influencer-analytics-api/internal/usecases/ingesting"
	"github.com/vfg2006/influencer-analytics-api/internal/usecases/ranking"
	"github.com/vfg2006/influencer-analytics-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
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

	userRepo := repository.NewUserRepository(pgConn)
	datasetRepo := repository.NewDatasetRepository(pgConn)
	rankingSnapshotRepo := repository.NewRankingSnapshotRepository(pgConn)

	sessions := store.NewSessionStore()
	loadInitialDataset(sessions, datasetRepo)

	authenticator := authenticating.NewService(userRepo, cfg)
	analyzer := analyzing.NewService(cfg)
	ranker := ranking.NewService()
	ingester := ingesting.NewService(sessions, datasetRepo)
	reporter := reporting.NewService()

	// Inicializa o agendador de materialização do ranking mensal
	rankingSnapshotSyncService := scheduler.NewRankingSnapshotSyncService(
		sessions,
		analyzer,
		rankingSnapshotRepo,
		cfg,
	)

	// Inicia o agendador em background
	if err := rankingSnapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do ranking de influenciadores")
	} else {
		logrus.Info("Agendador do ranking de influenciadores iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		sessions,
		analyzer,
		ranker,
		ingester,
		reporter,
		authenticator,
		rankingSnapshotRepo,
		rankingSnapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// loadInitialDataset carrega o snapshot inicial a partir do banco; sem dados
// persistidos a sessão começa com o dataset de demonstração
func loadInitialDataset(sessions *store.SessionStore, datasetRepo repository.DatasetRepository) {
	dataset, err := datasetRepo.LoadDataset()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao carregar snapshot persistido, usando dataset de demonstração")
		sessions.Replace(ingesting.SeedDataset())
		return
	}

	if len(dataset.Influencers) == 0 {
		logrus.Info("Nenhum snapshot persistido, usando dataset de demonstração")
		sessions.Replace(ingesting.SeedDataset())
		return
	}

	sessions.Replace(dataset)

	logrus.WithFields(logrus.Fields{
		"influencers": len(dataset.Influencers),
		"posts":       len(dataset.Posts),
		"tracking":    len(dataset.Tracking),
		"payouts":     len(dataset.Payouts),
	}).Info("Snapshot persistido carregado para a sessão")
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

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
