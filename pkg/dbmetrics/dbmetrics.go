package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/metrics"
)

// DBExecutor is the query surface shared by *sql.DB, *sql.Tx and the metric
// wrappers. Repositories depend on this interface only.
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// TxExecutor is a DBExecutor bound to an open transaction.
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// DB wraps *sql.DB, timing every query into the Prometheus collectors.
type DB struct {
	db *sql.DB
	m  *metrics.Metrics
}

// poolStatsInterval is how often the connection pool gauges are refreshed.
const poolStatsInterval = 15 * time.Second

// WrapWithDefault wraps db with query timing and starts a background goroutine
// publishing pool stats until stop is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, stop <-chan struct{}) *DB {
	wrapped := &DB{db: db, m: m}

	go func() {
		ticker := time.NewTicker(poolStatsInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				stats := db.Stats()
				m.SetDBPoolStats(stats.OpenConnections, stats.InUse, stats.Idle)
			case <-stop:
				return
			}
		}
	}()

	return wrapped
}

// operationOf reduces a SQL statement to its leading verb for the metric label.
func operationOf(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.m.ObserveDBQuery(operationOf(query), time.Since(start))
	return row
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.m.ObserveDBQuery(operationOf(query), time.Since(start))
	return rows, err
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := d.db.ExecContext(ctx, query, args...)
	d.m.ObserveDBQuery(operationOf(query), time.Since(start))
	return result, err
}

// BeginTx opens a transaction whose statements are timed like direct queries.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &timedTx{tx: tx, m: d.m}, nil
}

type timedTx struct {
	tx *sql.Tx
	m  *metrics.Metrics
}

func (t *timedTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.m.ObserveDBQuery(operationOf(query), time.Since(start))
	return row
}

func (t *timedTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.m.ObserveDBQuery(operationOf(query), time.Since(start))
	return rows, err
}

func (t *timedTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := t.tx.ExecContext(ctx, query, args...)
	t.m.ObserveDBQuery(operationOf(query), time.Since(start))
	return result, err
}

func (t *timedTx) Commit() error   { return t.tx.Commit() }
func (t *timedTx) Rollback() error { return t.tx.Rollback() }
