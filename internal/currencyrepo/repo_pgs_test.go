//go:build integration

package currencyrepo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/go-petr/coa-seeder/internal/currencyrepo"
	"github.com/go-petr/coa-seeder/internal/domain"
	"github.com/go-petr/coa-seeder/internal/integrationtest"
	"github.com/go-petr/coa-seeder/internal/middleware"
	"github.com/go-petr/coa-seeder/pkg/configpkg"
	"github.com/go-petr/coa-seeder/pkg/currencypkg"
	"github.com/google/go-cmp/cmp"
)

var (
	dbDriver string
	dbSource string
	ctx      context.Context
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	logger := middleware.CreateLogger(config)
	ctx = logger.WithContext(context.Background())

	os.Exit(m.Run())
}

func TestGet(t *testing.T) {
	testCases := []struct {
		name    string
		id      int64
		want    domain.Currency
		wantErr error
	}{
		{
			name: "Default",
			id:   currencypkg.DefaultCurrencyID,
			want: domain.Currency{ID: currencypkg.DefaultCurrencyID, Code: currencypkg.USD, Name: "US Dollar"},
		},
		{
			name:    "ErrCurrencyNotFound",
			id:      1_000_000,
			wantErr: domain.ErrCurrencyNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := integrationtest.SetupTX(t, dbDriver, dbSource)
			currencyRepo := currencyrepo.NewRepoPGS(tx)

			got, err := currencyRepo.Get(ctx, tc.id)
			if err != tc.wantErr {
				t.Fatalf(`currencyRepo.Get(ctx, %v) returned error %v, want %v`, tc.id, err, tc.wantErr)
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf(`currencyRepo.Get(ctx, %v) returned unexpected difference (-want +got):\n%s`, tc.id, diff)
			}
		})
	}
}
