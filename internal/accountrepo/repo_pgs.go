// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-petr/coa-seeder/internal/domain"
	"github.com/go-petr/coa-seeder/pkg/dbpkg"
	"github.com/go-petr/coa-seeder/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const accountColumns = `
	id, project_id, code, full_code, parent_account_id, level, is_group,
	account_type, name_ar, name_en, currency_id, is_active, balance, created_at`

func scanAccount(row interface{ Scan(dest ...any) error }) (domain.Account, error) {
	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.ProjectID,
		&a.Code,
		&a.FullCode,
		&a.ParentAccountID,
		&a.Level,
		&a.IsGroup,
		&a.Type,
		&a.NameAr,
		&a.NameEn,
		&a.CurrencyID,
		&a.IsActive,
		&a.Balance,
		&a.CreatedAt,
	)

	return a, err
}

const createQuery = `
INSERT INTO
    accounts (project_id, code, full_code, parent_account_id, level, is_group,
              account_type, name_ar, name_en, currency_id)
VALUES
    ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING` + accountColumns

// Create creates the account and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.ProjectID,
		arg.Code,
		arg.FullCode,
		arg.ParentAccountID,
		arg.Level,
		arg.IsGroup,
		arg.Type,
		arg.NameAr,
		arg.NameEn,
		arg.CurrencyID,
	)

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx context.Context, %+v)", arg)

		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Constraint {
			case "accounts_project_id_full_code_key":
				return domain.Account{}, domain.ErrAccountAlreadyExists
			case "accounts_currency_id_fkey":
				return domain.Account{}, domain.ErrCurrencyNotFound
			case "accounts_parent_account_id_fkey":
				return domain.Account{}, domain.ErrParentNotFound
			}
		}

		return domain.Account{}, errorspkg.ErrInternal
	}

	return a, nil
}

const getByCodeQuery = `
SELECT` + accountColumns + `
FROM accounts
WHERE project_id = $1 AND code = $2
ORDER BY id
LIMIT 1
`

// GetByCode returns the project's earliest account with the given code.
func (r *RepoPGS) GetByCode(ctx context.Context, projectID int64, code string) (domain.Account, error) {
	return r.get(ctx, getByCodeQuery, projectID, code)
}

const getByFullCodeQuery = `
SELECT` + accountColumns + `
FROM accounts
WHERE project_id = $1 AND full_code = $2
`

// GetByFullCode returns the project's account with the given full code.
func (r *RepoPGS) GetByFullCode(ctx context.Context, projectID int64, fullCode string) (domain.Account, error) {
	return r.get(ctx, getByFullCodeQuery, projectID, fullCode)
}

func (r *RepoPGS) get(ctx context.Context, query string, projectID int64, code string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, query, projectID, code))
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Account{}, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return domain.Account{}, errorspkg.ErrInternal
	}

	return a, nil
}

const listQuery = `
SELECT` + accountColumns + `
FROM accounts
WHERE project_id = $1
ORDER BY full_code
`

// List returns all accounts of the project ordered by full code.
func (r *RepoPGS) List(ctx context.Context, projectID int64) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, projectID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, a)
	}

	if err := rows.Close(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
