package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/leadssu-webmaster/infrastructure/database/postgres"
	"github.com/vfg2006/leadssu-webmaster/internal/config"
	"github.com/vfg2006/leadssu-webmaster/pkg/log"
	"github.com/vfg2006/leadssu-webmaster/pkg/utils"
)

type migration struct {
	Name       string
	Statements []string
}

var migrations = []migration{
	{
		Name: "001_create_leadssu_lead",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS leadssu_lead (
				order_id    BIGINT PRIMARY KEY,
				offer_id    INTEGER NOT NULL,
				status      TEXT NOT NULL,
				commission  NUMERIC(14, 2) NOT NULL DEFAULT 0,
				subaccount  TEXT NOT NULL DEFAULT '',
				subaccount2 TEXT NOT NULL DEFAULT '',
				lead_time   BIGINT NOT NULL DEFAULT 0,
				created_at  TIMESTAMP NOT NULL DEFAULT NOW(),
				updated_at  TIMESTAMP NOT NULL DEFAULT NOW()
			)`,
			`CREATE INDEX IF NOT EXISTS idx_leadssu_lead_offer_time ON leadssu_lead (offer_id, lead_time)`,
		},
	},
	{
		Name: "002_create_leadssu_commission_snapshot",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS leadssu_commission_snapshot (
				id                  TEXT PRIMARY KEY,
				date                DATE NOT NULL,
				offer_id            INTEGER NOT NULL DEFAULT 0,
				commission_rejected NUMERIC(14, 2) NOT NULL DEFAULT 0,
				commission_open     NUMERIC(14, 2) NOT NULL DEFAULT 0,
				commission_approved NUMERIC(14, 2) NOT NULL DEFAULT 0,
				created_at          TIMESTAMP NOT NULL DEFAULT NOW(),
				updated_at          TIMESTAMP NOT NULL DEFAULT NOW(),
				CONSTRAINT uq_leadssu_commission_snapshot_date_offer UNIQUE (date, offer_id)
			)`,
		},
	},
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("migration: failed to load config")
	}
	log.Configure(cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("migration: failed to connect")
	}
	defer conn.Close()

	if err := run(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("migration: failed")
	}

	logrus.Info("migration: completed")
}

func run(ctx context.Context, conn postgres.Conn) error {
	_, err := conn.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migration (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		applied_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		applied, err := isApplied(ctx, conn, m.Name)
		if err != nil {
			return err
		}
		if applied {
			logrus.WithField("migration", m.Name).Debug("migration: already applied")
			continue
		}

		startTime := time.Now()
		err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			for _, stmt := range m.Statements {
				if _, err := tx.ExecContext(ctx, stmt); err != nil {
					return err
				}
			}

			id, err := utils.GenerateID()
			if err != nil {
				return err
			}

			_, err = tx.ExecContext(ctx, `INSERT INTO schema_migration (id, name) VALUES ($1, $2)`, id, m.Name)
			return err
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"migration": m.Name,
				"error":     err.Error(),
			}).Error("migration: failed to apply")
			return err
		}

		logrus.WithFields(logrus.Fields{
			"migration": m.Name,
			"elapsed":   time.Since(startTime).String(),
		}).Info("migration: applied")
	}

	return nil
}

func isApplied(ctx context.Context, conn postgres.Conn, name string) (bool, error) {
	var exists bool
	err := conn.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM schema_migration WHERE name = $1)`, name).Scan(&exists)
	return exists, err
}
