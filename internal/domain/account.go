// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountAlreadyExists indicates that the project already has an account with the given full code.
	ErrAccountAlreadyExists = errors.New("account full code already exists")
	// ErrParentNotFound indicates that the parent account referenced by a row does not exist.
	ErrParentNotFound = errors.New("parent account not found")
)

// AccountType is the accounting class of an account.
type AccountType string

// Supported account types.
const (
	AccountTypeAsset     AccountType = "Asset"
	AccountTypeLiability AccountType = "Liability"
	AccountTypeEquity    AccountType = "Equity"
	AccountTypeRevenue   AccountType = "Revenue"
	AccountTypeExpense   AccountType = "Expense"
)

// Valid reports whether t is one of the supported account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return true
	default:
		return false
	}
}

// Account is a chart of accounts row owned by a project.
type Account struct {
	ID              int64       `json:"id"`
	ProjectID       int64       `json:"project_id"`
	Code            string      `json:"code"`
	FullCode        string      `json:"full_code"`
	ParentAccountID *int64      `json:"parent_account_id"`
	Level           int32       `json:"level"`
	IsGroup         bool        `json:"is_group"`
	Type            AccountType `json:"type"`
	NameAr          string      `json:"name_ar"`
	NameEn          string      `json:"name_en"`
	CurrencyID      int64       `json:"currency_id"`
	IsActive        bool        `json:"is_active"`
	Balance         string      `json:"balance"`
	CreatedAt       time.Time   `json:"created_at"`
}

// CreateAccountParams is the input data to create an account.
type CreateAccountParams struct {
	ProjectID       int64
	Code            string
	FullCode        string
	ParentAccountID *int64
	Level           int32
	IsGroup         bool
	Type            AccountType
	NameAr          string
	NameEn          string
	CurrencyID      int64
}

// AccountTree is a persisted account together with its children.
//
// Total is the account balance plus the totals of all its descendants.
type AccountTree struct {
	Account  Account        `json:"account"`
	Total    string         `json:"total"`
	Children []*AccountTree `json:"children,omitempty"`
}
