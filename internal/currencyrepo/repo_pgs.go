// Package currencyrepo manages repository layer of currencies.
package currencyrepo

import (
	"context"
	"database/sql"

	"github.com/go-petr/coa-seeder/internal/domain"
	"github.com/go-petr/coa-seeder/pkg/dbpkg"
	"github.com/go-petr/coa-seeder/pkg/errorspkg"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates currency repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns currency RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const getQuery = `
SELECT id, code, name FROM currencies
WHERE id = $1 LIMIT 1
`

// Get returns the currency with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Currency, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var c domain.Currency

	err := row.Scan(
		&c.ID,
		&c.Code,
		&c.Name,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return c, domain.ErrCurrencyNotFound
		}

		return c, errorspkg.ErrInternal
	}

	return c, nil
}
