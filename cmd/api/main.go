package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/leadssu-webmaster/infrastructure/database/postgres"
	"github.com/vfg2006/leadssu-webmaster/infrastructure/integrator/leadssu"
	"github.com/vfg2006/leadssu-webmaster/infrastructure/integrator/leadssu/leadssuclient"
	"github.com/vfg2006/leadssu-webmaster/infrastructure/repository"
	"github.com/vfg2006/leadssu-webmaster/internal/api"
	"github.com/vfg2006/leadssu-webmaster/internal/api/handler"
	"github.com/vfg2006/leadssu-webmaster/internal/config"
	"github.com/vfg2006/leadssu-webmaster/internal/scheduler"
	"github.com/vfg2006/leadssu-webmaster/internal/usecases/authenticating"
	"github.com/vfg2006/leadssu-webmaster/internal/usecases/reporting"
	"github.com/vfg2006/leadssu-webmaster/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	leadRepo := repository.NewLeadRepository(pgConn)
	snapshotRepo := repository.NewCommissionSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	leadssuClient, err := leadssuclient.NewClient(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar o cliente do leads.su")
	}
	leadssuIntegrator := leadssu.New(cfg, leadssuClient)

	reportingService := reporting.NewService(leadRepo, snapshotRepo)

	leadSyncService := scheduler.NewLeadSyncService(leadRepo, leadssuIntegrator, cfg)
	commissionSnapshotService := scheduler.NewCommissionSnapshotService(snapshotRepo, leadssuIntegrator, cfg)

	if err := leadSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de leads")
	} else {
		logrus.Info("Agendador de sincronização de leads iniciado com sucesso")
	}

	if err := commissionSnapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshot de comissões")
	} else {
		logrus.Info("Agendador de snapshot de comissões iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		leadssuIntegrator,
		reportingService,
		authenticator,
		handler.CronJobServices{
			LeadSyncService:           leadSyncService,
			CommissionSnapshotService: commissionSnapshotService,
		},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource permite achar o .env quando executado com go run
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)
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
