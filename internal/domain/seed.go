package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidProjectID indicates a missing or non-positive project id.
	ErrInvalidProjectID = errors.New("invalid project id")
	// ErrMissingAccountCode indicates a catalog node without a code.
	ErrMissingAccountCode = errors.New("account code is missing")
	// ErrDuplicateAccountCode indicates that a code occurs more than once in a catalog.
	ErrDuplicateAccountCode = errors.New("duplicate account code")
	// ErrInvalidAccountType indicates a catalog node with an unknown account type.
	ErrInvalidAccountType = errors.New("invalid account type")
	// ErrInvalidDepth indicates a catalog node with a non-positive depth.
	ErrInvalidDepth = errors.New("invalid account depth")
)

// ValidationError reports structurally invalid seed input.
//
// Code names the offending catalog node when there is one.
type ValidationError struct {
	Code string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Code == "" {
		return e.Err.Error()
	}

	return fmt.Sprintf("%v: %q", e.Err, e.Code)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// SeedParams is the input data to seed a project's chart of accounts.
type SeedParams struct {
	ProjectID   int64  `json:"project_id"`
	Industry    string `json:"industry"`
	CurrencyID  int64  `json:"currency_id"`
	CompanySize string `json:"company_size"`
}

// SkippedNode is a catalog node left out of the tree because its parent
// could not be resolved.
type SkippedNode struct {
	Code       string `json:"code"`
	ParentCode string `json:"parent_code"`
	Reason     string `json:"reason"`
}

// SeedResult is the result of a seed run.
//
// Defaults maps every tag declared by a materialized node to its account id.
type SeedResult struct {
	Defaults   map[string]int64 `json:"defaults"`
	CurrencyID int64            `json:"currency_id"`
	Created    int              `json:"created"`
	Existing   int              `json:"existing"`
	Skipped    []SkippedNode    `json:"skipped"`
}
