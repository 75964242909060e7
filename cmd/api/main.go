package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/exchange"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/api"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/metrics"
	"github.com/vfg2006/ads-dashboard-api/internal/scheduler"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/currency"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/dashboarding"
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

	if err := pgConn.EnsureDashboardCacheTable(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar a tabela de cache do dashboard")
	}

	cacheRepo := repository.NewDashboardCacheRepository(pgConn)

	adsClient := adsclient.NewClient(cfg)
	adsIntegrator := googleads.New(cfg, adsClient)

	exchangeClient := exchange.NewClient(cfg)
	currencyService := currency.NewService(exchangeClient)

	// Tenta atualizar as cotações na partida; falha mantém a tabela estática
	currencyService.RefreshRates()

	pipelineMetrics := metrics.New("ads_dashboard")

	session := dashboarding.NewSession(
		cfg,
		adsIntegrator,
		cacheRepo,
		currencyService,
		aggregating.NewService(currencyService),
		analyzing.NewService(currencyService),
		pipelineMetrics,
	)

	// Carga inicial: cache rende a tela de imediato, revalidação segue em background
	if err := session.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro na carga inicial do dashboard")
	}

	autoRefreshService := scheduler.NewAutoRefreshService(session, cfg)
	if err := autoRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização automática")
	} else {
		logrus.Info("Agendador de atualização automática iniciado com sucesso")
	}

	server, err := api.New(cfg, session, autoRefreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
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
