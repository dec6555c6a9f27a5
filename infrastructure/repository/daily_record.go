package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/funnel-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/funnel-metrics-api/internal/domain"
)

const (
	dailyRecordsTable = "daily_records dr"
)

type DailyRecordRepository interface {
	GetByDate(date string) (*domain.DailyRecord, error)
	ListAll() ([]*domain.DailyRecord, error)
	ListByRange(from, to string) ([]*domain.DailyRecord, error)
	SaveOrUpdate(record *domain.DailyRecord) error
	ReplaceAll(records []*domain.DailyRecord) error
}

type dailyRecordRepository struct {
	conn *postgres.Connection
}

func NewDailyRecordRepository(conn *postgres.Connection) DailyRecordRepository {
	return &dailyRecordRepository{
		conn: conn,
	}
}

func (r *dailyRecordRepository) GetByDate(date string) (*domain.DailyRecord, error) {
	query, args, err := squirrel.
		Select("dr.date, dr.metrics").
		From(dailyRecordsTable).
		Where(squirrel.Eq{"dr.date": date}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	record, err := scanRecord(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro diário: %w", err)
	}

	return record, nil
}

func (r *dailyRecordRepository) ListAll() ([]*domain.DailyRecord, error) {
	return r.list(squirrel.
		Select("dr.date, dr.metrics").
		From(dailyRecordsTable).
		OrderBy("dr.date ASC"))
}

func (r *dailyRecordRepository) ListByRange(from, to string) ([]*domain.DailyRecord, error) {
	builder := squirrel.
		Select("dr.date, dr.metrics").
		From(dailyRecordsTable)

	if from != "" {
		builder = builder.Where(squirrel.GtOrEq{"dr.date": from})
	}
	if to != "" {
		builder = builder.Where(squirrel.LtOrEq{"dr.date": to})
	}

	return r.list(builder.OrderBy("dr.date ASC"))
}

func (r *dailyRecordRepository) list(builder squirrel.SelectBuilder) ([]*domain.DailyRecord, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.DailyRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registros diários: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *dailyRecordRepository) SaveOrUpdate(record *domain.DailyRecord) error {
	metricsJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("erro ao serializar registro para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("daily_records").
		Columns("date", "metrics").
		Values(record.Date, metricsJSON).
		Suffix(`
			ON CONFLICT (date) DO UPDATE SET
				metrics = EXCLUDED.metrics,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// ReplaceAll substitui a coleção inteira numa única transação, usado após
// uma sincronização completa da planilha remota.
func (r *dailyRecordRepository) ReplaceAll(records []*domain.DailyRecord) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM daily_records"); err != nil {
			return fmt.Errorf("erro ao limpar registros diários: %w", err)
		}

		for _, record := range records {
			metricsJSON, err := json.Marshal(record)
			if err != nil {
				return fmt.Errorf("erro ao serializar registro para JSON: %w", err)
			}

			query, args, err := squirrel.StatementBuilder.
				Insert("daily_records").
				Columns("date", "metrics").
				Values(record.Date, metricsJSON).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.Exec(query, args...); err != nil {
				return fmt.Errorf("erro ao inserir registro diário: %w", err)
			}
		}

		return nil
	})
}

func scanRecord(scan func(dest ...any) error) (*domain.DailyRecord, error) {
	var dateStr string
	var metricsJSON []byte

	if err := scan(&dateStr, &metricsJSON); err != nil {
		return nil, err
	}

	record := &domain.DailyRecord{}
	if metricsJSON != nil {
		if err := json.Unmarshal(metricsJSON, record); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de metrics: %w", err)
		}
	}
	record.Date = dateStr

	return record, nil
}
