package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/leadssu-webmaster/infrastructure/database/postgres"
	"github.com/vfg2006/leadssu-webmaster/internal/domain"
	"github.com/vfg2006/leadssu-webmaster/pkg/utils"
)

const commissionSnapshotTable = "leadssu_commission_snapshot"

//go:generate mockgen -source=commission_snapshot.go -destination=mocks/commission_snapshot_mock.go -package=mocks
type CommissionSnapshotRepository interface {
	Save(ctx context.Context, snapshot *domain.CommissionSnapshot) error
	List(ctx context.Context, filters domain.CommissionFilters) ([]domain.CommissionSnapshot, error)
}

type commissionSnapshotRepository struct {
	conn postgres.Conn
}

func NewCommissionSnapshotRepository(conn postgres.Conn) CommissionSnapshotRepository {
	return &commissionSnapshotRepository{
		conn: conn,
	}
}

// Save grava o resumo do dia, substituindo o existente para a mesma data e offer
func (r *commissionSnapshotRepository) Save(ctx context.Context, snapshot *domain.CommissionSnapshot) error {
	if snapshot.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do snapshot: %w", err)
		}
		snapshot.ID = id
	}

	sqlQuery, args, err := buildSaveSnapshotQuery(snapshot).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *commissionSnapshotRepository) List(ctx context.Context, filters domain.CommissionFilters) ([]domain.CommissionSnapshot, error) {
	sqlQuery, args, err := buildListSnapshotsQuery(filters).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]domain.CommissionSnapshot, 0)
	for rows.Next() {
		var snapshot domain.CommissionSnapshot
		var date time.Time
		err := rows.Scan(
			&snapshot.ID,
			&date,
			&snapshot.OfferID,
			&snapshot.Summary.CommissionRejected,
			&snapshot.Summary.CommissionOpen,
			&snapshot.Summary.CommissionApproved,
			&snapshot.CreatedAt,
			&snapshot.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshot.Date = date.Format(time.DateOnly)
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func buildSaveSnapshotQuery(snapshot *domain.CommissionSnapshot) squirrel.InsertBuilder {
	return squirrel.StatementBuilder.
		Insert(commissionSnapshotTable).
		Columns(
			"id",
			"date",
			"offer_id",
			"commission_rejected",
			"commission_open",
			"commission_approved",
		).
		Values(
			snapshot.ID,
			snapshot.Date,
			snapshot.OfferID,
			snapshot.Summary.CommissionRejected,
			snapshot.Summary.CommissionOpen,
			snapshot.Summary.CommissionApproved,
		).
		Suffix(`
		ON CONFLICT (date, offer_id) DO UPDATE SET
			commission_rejected = EXCLUDED.commission_rejected,
			commission_open = EXCLUDED.commission_open,
			commission_approved = EXCLUDED.commission_approved,
			updated_at = CURRENT_TIMESTAMP
	`).
		PlaceholderFormat(squirrel.Dollar)
}

func buildListSnapshotsQuery(filters domain.CommissionFilters) squirrel.SelectBuilder {
	query := squirrel.
		Select(
			"id",
			"date",
			"offer_id",
			"commission_rejected",
			"commission_open",
			"commission_approved",
			"created_at",
			"updated_at",
		).
		From(commissionSnapshotTable).
		Where(squirrel.Eq{"offer_id": filters.OfferID}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if !filters.StartDate.IsZero() {
		query = query.Where(squirrel.GtOrEq{"date": utils.FormatDate(filters.StartDate)})
	}
	if !filters.EndDate.IsZero() {
		query = query.Where(squirrel.LtOrEq{"date": utils.FormatDate(filters.EndDate)})
	}

	return query
}
