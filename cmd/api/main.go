package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/funnel-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/funnel-metrics-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/funnel-metrics-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/funnel-metrics-api/infrastructure/repository"
	"github.com/vfg2006/funnel-metrics-api/internal/api"
	"github.com/vfg2006/funnel-metrics-api/internal/config"
	"github.com/vfg2006/funnel-metrics-api/internal/scheduler"
	"github.com/vfg2006/funnel-metrics-api/internal/usecases/authenticating"
	"github.com/vfg2006/funnel-metrics-api/internal/usecases/importing"
	"github.com/vfg2006/funnel-metrics-api/internal/usecases/reporting"
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

	authenticator := authenticating.NewService(cfg)
	importer := importing.NewService(cfg)

	reporter := reporting.NewService()

	// A persistência em PostgreSQL é opcional; sem banco o serviço opera
	// apenas com a coleção em memória
	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		recordRepo := repository.NewDailyRecordRepository(pgConn)
		reporter = reporter.WithRepository(recordRepo)

		if err := reporter.Hydrate(); err != nil {
			logrus.WithError(err).Error("Erro ao hidratar registros diários do banco")
		} else {
			logrus.Info("Registros diários hidratados do banco com sucesso")
		}
	}

	sheetsClient := sheetsclient.NewClient()
	sheetsService := sheets.New(cfg, sheetsClient, importer)

	sheetSyncService := scheduler.NewSheetSyncService(sheetsService, reporter, cfg)

	if err := sheetSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização da planilha")
	} else {
		logrus.Info("Agendador de sincronização da planilha iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		importer,
		reporter,
		sheetsService,
		authenticator,
		sheetSyncService,
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
