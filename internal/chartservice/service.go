// Package chartservice manages business logic layer of charts of accounts.
package chartservice

import (
	"context"
	"errors"
	"sort"

	"github.com/go-petr/coa-seeder/internal/domain"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Assembler provides the catalog views needed by chart service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package chartservice
type Assembler interface {
	Assemble(industry string) []domain.AccountNode
	Industries() []domain.Industry
}

// CurrencyRepo provides currency lookups needed by chart service layer.
type CurrencyRepo interface {
	Get(ctx context.Context, id int64) (domain.Currency, error)
}

// AccountStore provides account data access bound to a single transaction.
type AccountStore interface {
	Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error)
	GetByCode(ctx context.Context, projectID int64, code string) (domain.Account, error)
	GetByFullCode(ctx context.Context, projectID int64, fullCode string) (domain.Account, error)
}

// Repo provides data access layer interface needed by chart service layer.
type Repo interface {
	ExecTx(ctx context.Context, projectID int64, fn func(AccountStore) error) error
	List(ctx context.Context, projectID int64) ([]domain.Account, error)
}

// Service facilitates chart service layer logic.
type Service struct {
	repo              Repo
	currencies        CurrencyRepo
	assembler         Assembler
	defaultCurrencyID int64
}

// New returns chart service struct to manage chart of accounts business logic.
func New(r Repo, cr CurrencyRepo, a Assembler, defaultCurrencyID int64) *Service {
	return &Service{
		repo:              r,
		currencies:        cr,
		assembler:         a,
		defaultCurrencyID: defaultCurrencyID,
	}
}

// Seed assembles the catalog for the industry and materializes it for the project.
//
// An unset or unknown currency is replaced by the default one. Other currency
// lookup failures abort the seed.
func (s *Service) Seed(ctx context.Context, arg domain.SeedParams) (domain.SeedResult, error) {
	return s.seed(ctx, arg, s.assembler.Assemble)
}

// SeedNodes materializes the given nodes for the project in place of the
// assembled catalog. The industry is only logged.
func (s *Service) SeedNodes(ctx context.Context, arg domain.SeedParams, nodes []domain.AccountNode) (domain.SeedResult, error) {
	return s.seed(ctx, arg, func(string) []domain.AccountNode { return nodes })
}

func (s *Service) seed(ctx context.Context, arg domain.SeedParams, assemble func(string) []domain.AccountNode) (domain.SeedResult, error) {
	l := zerolog.Ctx(ctx)

	if arg.ProjectID <= 0 {
		l.Info().Int64("project_id", arg.ProjectID).Msg("rejected seed")
		return domain.SeedResult{}, &domain.ValidationError{Err: domain.ErrInvalidProjectID}
	}

	currencyID, err := s.resolveCurrency(ctx, arg.CurrencyID)
	if err != nil {
		return domain.SeedResult{}, err
	}

	l.Info().
		Int64("project_id", arg.ProjectID).
		Str("industry", arg.Industry).
		Str("company_size", arg.CompanySize).
		Int64("currency_id", currencyID).
		Msg("seeding chart of accounts")

	return s.Materialize(ctx, arg.ProjectID, currencyID, assemble(arg.Industry))
}

// resolveCurrency returns the default currency when id is unset or not found.
func (s *Service) resolveCurrency(ctx context.Context, id int64) (int64, error) {
	l := zerolog.Ctx(ctx)

	if id <= 0 {
		return s.defaultCurrencyID, nil
	}

	c, err := s.currencies.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCurrencyNotFound) {
			l.Warn().Int64("currency_id", id).Int64("fallback", s.defaultCurrencyID).Msg("currency not found")
			return s.defaultCurrencyID, nil
		}

		return 0, err
	}

	return c.ID, nil
}

// ValidateNodes checks that every node has a unique non-empty code, a known
// type and a positive depth.
func ValidateNodes(nodes []domain.AccountNode) error {
	seen := make(map[string]struct{}, len(nodes))

	for _, n := range nodes {
		if n.Code == "" {
			return &domain.ValidationError{Err: domain.ErrMissingAccountCode}
		}

		if _, ok := seen[n.Code]; ok {
			return &domain.ValidationError{Code: n.Code, Err: domain.ErrDuplicateAccountCode}
		}
		seen[n.Code] = struct{}{}

		if !n.Type.Valid() {
			return &domain.ValidationError{Code: n.Code, Err: domain.ErrInvalidAccountType}
		}

		if n.Depth < 1 {
			return &domain.ValidationError{Code: n.Code, Err: domain.ErrInvalidDepth}
		}
	}

	return nil
}

// Materialize persists the nodes as the project's account tree in one transaction.
//
// Nodes are processed in depth order. A node whose parent cannot be resolved is
// reported in the result and left out. Nodes already stored under the same full
// code are reused. Any store failure rolls the whole run back.
func (s *Service) Materialize(ctx context.Context, projectID, currencyID int64, nodes []domain.AccountNode) (domain.SeedResult, error) {
	l := zerolog.Ctx(ctx)

	if projectID <= 0 {
		return domain.SeedResult{}, &domain.ValidationError{Err: domain.ErrInvalidProjectID}
	}

	if err := ValidateNodes(nodes); err != nil {
		l.Info().Err(err).Int64("project_id", projectID).Send()
		return domain.SeedResult{}, err
	}

	ordered := make([]domain.AccountNode, len(nodes))
	copy(ordered, nodes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Depth < ordered[j].Depth
	})

	var result domain.SeedResult

	err := s.repo.ExecTx(ctx, projectID, func(store AccountStore) error {
		m := materializer{
			store:      store,
			projectID:  projectID,
			currencyID: currencyID,
			resolved:   make(map[string]domain.Account, len(ordered)),
			result: domain.SeedResult{
				Defaults:   make(map[string]int64),
				CurrencyID: currencyID,
				Skipped:    []domain.SkippedNode{},
			},
		}

		for _, n := range ordered {
			if err := m.place(ctx, n); err != nil {
				return err
			}
		}

		result = m.result

		return nil
	})
	if err != nil {
		l.Error().Err(err).Int64("project_id", projectID).Msg("chart of accounts rolled back")
		return domain.SeedResult{}, err
	}

	l.Info().
		Int64("project_id", projectID).
		Int("created", result.Created).
		Int("existing", result.Existing).
		Int("skipped", len(result.Skipped)).
		Int("defaults", len(result.Defaults)).
		Msg("chart of accounts seeded")

	return result, nil
}

type materializer struct {
	store      AccountStore
	projectID  int64
	currencyID int64
	resolved   map[string]domain.Account
	result     domain.SeedResult
}

func (m *materializer) place(ctx context.Context, n domain.AccountNode) error {
	l := zerolog.Ctx(ctx)

	arg := domain.CreateAccountParams{
		ProjectID:  m.projectID,
		Code:       n.Code,
		FullCode:   n.Code,
		Level:      n.Depth,
		IsGroup:    n.IsGroup,
		Type:       n.Type,
		NameAr:     n.NameAr,
		NameEn:     n.NameEn,
		CurrencyID: m.currencyID,
	}

	if n.ParentCode != "" {
		parent, ok, err := m.parent(ctx, n.ParentCode)
		if err != nil {
			return err
		}

		if !ok {
			l.Warn().Str("code", n.Code).Str("parent_code", n.ParentCode).Msg("parent not found, node skipped")
			m.result.Skipped = append(m.result.Skipped, domain.SkippedNode{
				Code:       n.Code,
				ParentCode: n.ParentCode,
				Reason:     domain.ErrParentNotFound.Error(),
			})

			return nil
		}

		parentID := parent.ID
		arg.ParentAccountID = &parentID
		arg.FullCode = parent.FullCode + "." + n.Code
	}

	a, err := m.store.GetByFullCode(ctx, m.projectID, arg.FullCode)

	switch {
	case err == nil:
		m.result.Existing++
	case errors.Is(err, domain.ErrAccountNotFound):
		a, err = m.store.Create(ctx, arg)
		if err != nil {
			return err
		}
		m.result.Created++
	default:
		return err
	}

	m.resolved[n.Code] = a

	if n.Tag != "" {
		m.result.Defaults[n.Tag] = a.ID
	}

	return nil
}

// parent looks the code up among accounts placed in this run first, then
// among accounts already stored for the project.
func (m *materializer) parent(ctx context.Context, code string) (domain.Account, bool, error) {
	if a, ok := m.resolved[code]; ok {
		return a, true, nil
	}

	a, err := m.store.GetByCode(ctx, m.projectID, code)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.Account{}, false, nil
		}

		return domain.Account{}, false, err
	}

	return a, true, nil
}

// Preview returns the catalog the industry would seed without touching the store.
func (s *Service) Preview(industry string) []domain.AccountNode {
	return s.assembler.Assemble(industry)
}

// Industries returns the known industry keys.
func (s *Service) Industries() []domain.Industry {
	return s.assembler.Industries()
}

// Tree returns the project's stored accounts as a forest ordered by full code.
// Every node's total is its own balance plus the totals of its children.
func (s *Service) Tree(ctx context.Context, projectID int64) ([]*domain.AccountTree, error) {
	l := zerolog.Ctx(ctx)

	if projectID <= 0 {
		return nil, &domain.ValidationError{Err: domain.ErrInvalidProjectID}
	}

	accounts, err := s.repo.List(ctx, projectID)
	if err != nil {
		return nil, err
	}

	nodes := make(map[int64]*domain.AccountTree, len(accounts))
	for i := range accounts {
		nodes[accounts[i].ID] = &domain.AccountTree{
			Account:  accounts[i],
			Children: []*domain.AccountTree{},
		}
	}

	roots := []*domain.AccountTree{}

	for _, a := range accounts {
		node := nodes[a.ID]

		if a.ParentAccountID != nil {
			if parent, ok := nodes[*a.ParentAccountID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}

		roots = append(roots, node)
	}

	for _, root := range roots {
		if _, err := rollUp(root); err != nil {
			l.Error().Err(err).Int64("project_id", projectID).Send()
			return nil, err
		}
	}

	return roots, nil
}

func rollUp(node *domain.AccountTree) (decimal.Decimal, error) {
	total, err := decimal.NewFromString(node.Account.Balance)
	if err != nil {
		return decimal.Zero, err
	}

	for _, child := range node.Children {
		sub, err := rollUp(child)
		if err != nil {
			return decimal.Zero, err
		}

		total = total.Add(sub)
	}

	node.Total = total.String()

	return total, nil
}
