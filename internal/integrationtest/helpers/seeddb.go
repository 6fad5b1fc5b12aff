// Package helpers provides db seeding helpers used in integration tests.
package helpers

import (
	"context"
	"testing"

	"github.com/go-petr/coa-seeder/internal/accountrepo"
	"github.com/go-petr/coa-seeder/internal/domain"
	"github.com/go-petr/coa-seeder/pkg/currencypkg"
	"github.com/go-petr/coa-seeder/pkg/dbpkg"
	"github.com/go-petr/coa-seeder/pkg/randompkg"
)

// RandomCreateAccountParams returns params for a random asset account under parent.
// A nil parent yields a root account.
func RandomCreateAccountParams(projectID int64, parent *domain.Account) domain.CreateAccountParams {
	code := randompkg.AccountCode(6)

	arg := domain.CreateAccountParams{
		ProjectID:  projectID,
		Code:       code,
		FullCode:   code,
		Level:      1,
		IsGroup:    true,
		Type:       domain.AccountTypeAsset,
		NameAr:     randompkg.String(10),
		NameEn:     randompkg.String(10),
		CurrencyID: currencypkg.DefaultCurrencyID,
	}

	if parent != nil {
		parentID := parent.ID
		arg.ParentAccountID = &parentID
		arg.FullCode = parent.FullCode + "." + code
		arg.Level = parent.Level + 1
	}

	return arg
}

// SeedAccount creates a random account inside a test transaction.
func SeedAccount(t *testing.T, tx dbpkg.SQLInterface, projectID int64, parent *domain.Account) domain.Account {
	t.Helper()

	arg := RandomCreateAccountParams(projectID, parent)

	accountRepo := accountrepo.NewRepoPGS(tx)

	account, err := accountRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("accountRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return account
}

// SeedAccountChain creates a root account and depth-1 nested descendants inside a test transaction.
func SeedAccountChain(t *testing.T, tx dbpkg.SQLInterface, projectID int64, depth int) []domain.Account {
	t.Helper()

	accounts := make([]domain.Account, 0, depth)

	var parent *domain.Account

	for i := 0; i < depth; i++ {
		a := SeedAccount(t, tx, projectID, parent)
		accounts = append(accounts, a)
		parent = &accounts[len(accounts)-1]
	}

	return accounts
}
