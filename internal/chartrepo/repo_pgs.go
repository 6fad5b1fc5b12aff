// Package chartrepo manages repository layer of charts of accounts.
package chartrepo

import (
	"context"
	"database/sql"

	"github.com/go-petr/coa-seeder/internal/accountrepo"
	"github.com/go-petr/coa-seeder/internal/chartservice"
	"github.com/go-petr/coa-seeder/internal/domain"
	"github.com/go-petr/coa-seeder/pkg/errorspkg"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates chart repository layer logic.
type RepoPGS struct {
	conn     *sql.DB
	accounts *accountrepo.RepoPGS
}

// NewRepoPGS returns chart RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		conn:     db,
		accounts: accountrepo.NewRepoPGS(db),
	}
}

// Seeds of one project are serialized; the lock is released on commit or rollback.
const lockQuery = `SELECT pg_advisory_xact_lock($1)`

// ExecTx runs fn with an account store bound to a single transaction.
//
// The transaction is committed only if fn returns nil.
func (r *RepoPGS) ExecTx(ctx context.Context, projectID int64, fn func(chartservice.AccountStore) error) error {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	if _, err := tx.ExecContext(ctx, lockQuery, projectID); err != nil {
		l.Error().Err(err).Int64("project_id", projectID).Send()
		return errorspkg.ErrInternal
	}

	if err := fn(accountrepo.NewRepoPGS(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}

// List returns the project's accounts ordered by full code.
func (r *RepoPGS) List(ctx context.Context, projectID int64) ([]domain.Account, error) {
	return r.accounts.List(ctx, projectID)
}
