// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/leadssu-webmaster/infrastructure/database/postgres"
	"github.com/vfg2006/leadssu-webmaster/internal/domain"
	"github.com/vfg2006/leadssu-webmaster/pkg/utils"
)

const (
	leadTable     = "leadssu_lead"
	leadBatchSize = 500
)

//go:generate mockgen -source=lead.go -destination=mocks/lead_mock.go -package=mocks
type LeadRepository interface {
	SaveOrUpdateLeads(ctx context.Context, leads []domain.Lead) (int, error)
	ListLeads(ctx context.Context, filters domain.LeadFilters) ([]domain.Lead, error)
}

type leadRepository struct {
	conn postgres.Conn
}

func NewLeadRepository(conn postgres.Conn) LeadRepository {
	return &leadRepository{
		conn: conn,
	}
}

// SaveOrUpdateLeads grava os leads em lotes, atualizando pelo order_id.
// Order_id repetido fica só com a última ocorrência.
func (r *leadRepository) SaveOrUpdateLeads(ctx context.Context, leads []domain.Lead) (int, error) {
	leads = dedupeLeads(leads)
	if len(leads) == 0 {
		return 0, nil
	}

	saved := 0
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(leads); start += leadBatchSize {
			end := min(start+leadBatchSize, len(leads))

			sqlQuery, args, err := buildUpsertLeadsQuery(leads[start:end]).ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir query de inserção: %w", err)
			}

			if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
				return fmt.Errorf("erro ao executar query de inserção: %w", err)
			}
			saved += end - start
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return saved, nil
}

func (r *leadRepository) ListLeads(ctx context.Context, filters domain.LeadFilters) ([]domain.Lead, error) {
	sqlQuery, args, err := buildListLeadsQuery(filters).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	leads := make([]domain.Lead, 0)
	for rows.Next() {
		var lead domain.Lead
		var status string
		err := rows.Scan(
			&lead.OrderID,
			&lead.OfferID,
			&status,
			&lead.Commission,
			&lead.Subaccount,
			&lead.Subaccount2,
			&lead.LeadTime,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lead: %w", err)
		}
		lead.Status = domain.LeadStatus(status)
		leads = append(leads, lead)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return leads, nil
}

// dedupeLeads mantém a posição da primeira ocorrência com os dados da última
func dedupeLeads(leads []domain.Lead) []domain.Lead {
	index := make(map[int64]int, len(leads))
	unique := make([]domain.Lead, 0, len(leads))
	for _, lead := range leads {
		if i, ok := index[lead.OrderID]; ok {
			unique[i] = lead
			continue
		}
		index[lead.OrderID] = len(unique)
		unique = append(unique, lead)
	}
	return unique
}

// buildUpsertLeadsQuery não aceita order_id repetido no mesmo lote, o postgres rejeita o ON CONFLICT
func buildUpsertLeadsQuery(leads []domain.Lead) squirrel.InsertBuilder {
	query := squirrel.StatementBuilder.
		Insert(leadTable).
		Columns(
			"order_id",
			"offer_id",
			"status",
			"commission",
			"subaccount",
			"subaccount2",
			"lead_time",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, lead := range dedupeLeads(leads) {
		query = query.Values(
			lead.OrderID,
			lead.OfferID,
			string(lead.Status),
			lead.Commission,
			lead.Subaccount,
			lead.Subaccount2,
			lead.LeadTime,
		)
	}

	return query.Suffix(`
		ON CONFLICT (order_id) DO UPDATE SET
			offer_id = EXCLUDED.offer_id,
			status = EXCLUDED.status,
			commission = EXCLUDED.commission,
			subaccount = EXCLUDED.subaccount,
			subaccount2 = EXCLUDED.subaccount2,
			lead_time = EXCLUDED.lead_time,
			updated_at = CURRENT_TIMESTAMP
	`)
}

// buildListLeadsQuery filtra por lead_time entre o início de StartDate e o fim de EndDate
func buildListLeadsQuery(filters domain.LeadFilters) squirrel.SelectBuilder {
	query := squirrel.
		Select(
			"order_id",
			"offer_id",
			"status",
			"commission",
			"subaccount",
			"subaccount2",
			"lead_time",
		).
		From(leadTable).
		OrderBy("lead_time DESC", "order_id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if !filters.StartDate.IsZero() {
		query = query.Where(squirrel.GtOrEq{"lead_time": utils.StartOfDay(filters.StartDate).UnixMilli()})
	}
	if !filters.EndDate.IsZero() {
		query = query.Where(squirrel.Lt{"lead_time": utils.StartOfDay(filters.EndDate).AddDate(0, 0, 1).UnixMilli()})
	}
	if filters.OfferID > 0 {
		query = query.Where(squirrel.Eq{"offer_id": filters.OfferID})
	}

	return query
}
