package database

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"app/config"
)

// MaxRows is the hard cap the backing store applies to a single query.
// Matching rows past the cap are never returned; FetchSalesPeriod reports
// when the cap was hit so callers can surface the loss.
const MaxRows = 10000

// SalesRecord is a single imported sale row. Rows are read-only inputs;
// the service never writes to the sales table.
type SalesRecord struct {
	SaleDate    time.Time
	Client      string
	Product     string
	Description string
	Quantity    float64
}

// SalesStore reads sales history for a single company from a single table.
type SalesStore struct {
	pool    *pgxpool.Pool
	company string
	table   string
}

// NewSalesStore creates a store bound to the configured company and table.
func NewSalesStore(pool *pgxpool.Pool, cfg config.Config) *SalesStore {
	return &SalesStore{pool: pool, company: cfg.Company, table: cfg.SalesTable}
}

// FetchSalesPeriod returns every sale for the company with data_venda in
// [start, end], ordered by date ascending so the most recent rows come
// last. The second return value is true when the result hit the row cap
// and may be missing data.
func (s *SalesStore) FetchSalesPeriod(ctx context.Context, start, end time.Time) ([]SalesRecord, bool, error) {
	query := fmt.Sprintf(`
		SELECT data_venda, COALESCE(cliente, ''), COALESCE(produto, ''),
		       COALESCE(descricao_item, ''), COALESCE(quantidade, 0)
		FROM %s
		WHERE empresa = $1 AND data_venda >= $2 AND data_venda <= $3
		ORDER BY data_venda
		LIMIT %d
	`, s.table, MaxRows)

	rows, err := s.pool.Query(ctx, query, s.company, start, end)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query sales period: %w", err)
	}
	defer rows.Close()

	var records []SalesRecord
	for rows.Next() {
		var rec SalesRecord
		if err := rows.Scan(&rec.SaleDate, &rec.Client, &rec.Product, &rec.Description, &rec.Quantity); err != nil {
			return nil, false, fmt.Errorf("failed to scan sales record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("failed to read sales records: %w", err)
	}

	return records, len(records) == MaxRows, nil
}

// ListRecentClients returns the distinct clients with any sale for the
// company in the trailing 60 days, sorted ascending.
func (s *SalesStore) ListRecentClients(ctx context.Context) ([]string, error) {
	cutoff := time.Now().AddDate(0, 0, -60)

	query := fmt.Sprintf(`
		SELECT DISTINCT cliente
		FROM %s
		WHERE empresa = $1 AND data_venda >= $2 AND cliente IS NOT NULL
		LIMIT %d
	`, s.table, MaxRows)

	rows, err := s.pool.Query(ctx, query, s.company, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	var clients []string
	for rows.Next() {
		var client string
		if err := rows.Scan(&client); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read clients: %w", err)
	}

	sort.Strings(clients)
	return clients, nil
}
