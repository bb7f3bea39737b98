package appointment

import (
	"context"
	"database/sql"

	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/dbmetrics"
)

// Database interfaces are shared with dbmetrics so repositories work both on
// the raw handle and on the metrics wrapper.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions; satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
