package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/rh-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/rh-dashboard-api/infrastructure/integrator/sheetsource"
	"github.com/vfg2006/rh-dashboard-api/infrastructure/integrator/sheetsource/google"
	"github.com/vfg2006/rh-dashboard-api/infrastructure/integrator/sheetsource/sheetclient"
	"github.com/vfg2006/rh-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/rh-dashboard-api/internal/api"
	"github.com/vfg2006/rh-dashboard-api/internal/config"
	"github.com/vfg2006/rh-dashboard-api/internal/scheduler"
	"github.com/vfg2006/rh-dashboard-api/internal/usecases/reporting"
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

	sheetClient := sheetclient.NewClient()

	// O cliente do Google Sheets só é criado se alguma fonte precisar dele
	var googleClient *google.Client
	if cfg.UsesGoogleSheets() {
		googleClient, err = google.NewClient(ctx, cfg.Google)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao criar o cliente do Google Sheets")
		}
	}

	source := sheetsource.New(cfg, sheetClient, googleClient)

	reportService := reporting.NewService(cfg, source)

	// O Postgres só entra em cena com o cache de snapshots ou a sincronização
	// agendada habilitados; sem eles o dashboard opera direto sobre as fontes
	var sheetSyncService *scheduler.SheetSyncService
	if cfg.Snapshot.Enabled || cfg.SheetSync.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		snapshotRepo := repository.NewSnapshotRepository(pgConn)

		if cfg.Snapshot.Enabled {
			reportService = reportService.(*reporting.Service).WithCache(snapshotRepo)
		}

		sheetSyncService = scheduler.NewSheetSyncService(source, snapshotRepo, cfg)
		if err := sheetSyncService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de planilhas")
		} else {
			logrus.Info("Agendador de sincronização de planilhas iniciado com sucesso")
		}
	}

	server, err := api.New(
		cfg,
		reportService,
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
