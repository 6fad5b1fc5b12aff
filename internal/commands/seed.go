package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/go-petr/coa-seeder/internal/catalog"
	"github.com/go-petr/coa-seeder/internal/chartrepo"
	"github.com/go-petr/coa-seeder/internal/chartservice"
	"github.com/go-petr/coa-seeder/internal/currencyrepo"
	"github.com/go-petr/coa-seeder/internal/domain"
	"github.com/go-petr/coa-seeder/internal/middleware"
	"github.com/go-petr/coa-seeder/pkg/configpkg"
	"github.com/go-petr/coa-seeder/pkg/dbpkg"
)

func newSeedCommand(configPath *string) *cobra.Command {
	var (
		arg  domain.SeedParams
		file string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed a project's chart of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, *configPath, arg, file)
		},
	}

	cmd.Flags().Int64Var(&arg.ProjectID, "project", 0, "project id (required)")
	_ = cmd.MarkFlagRequired("project")
	cmd.Flags().StringVar(&arg.Industry, "industry", "", "industry key selecting the catalog extension")
	cmd.Flags().Int64Var(&arg.CurrencyID, "currency", 0, "currency id, the configured default when unset")
	cmd.Flags().StringVar(&arg.CompanySize, "company-size", "", "company size, recorded in the log")
	cmd.Flags().StringVar(&file, "file", "", "catalog CSV to seed instead of the industry catalog")

	return cmd
}

func runSeed(cmd *cobra.Command, configPath string, arg domain.SeedParams, file string) error {
	config, err := configpkg.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var nodes []domain.AccountNode
	if file != "" {
		if nodes, err = readCatalogFile(file); err != nil {
			return err
		}
	}

	logger := middleware.CreateLogger(config).
		Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.RFC3339})
	ctx := logger.WithContext(cmd.Context())

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	accounts, err := catalog.New()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	service := chartservice.New(chartrepo.NewRepoPGS(db), currencyrepo.NewRepoPGS(db), accounts, config.DefaultCurrencyID)

	var result domain.SeedResult
	if file != "" {
		result, err = service.SeedNodes(ctx, arg, nodes)
	} else {
		result, err = service.Seed(ctx, arg)
	}
	if err != nil {
		return fmt.Errorf("seeding project %d: %w", arg.ProjectID, err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(result)
}

func readCatalogFile(name string) ([]domain.AccountNode, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()

	nodes, err := catalog.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return nodes, nil
}
