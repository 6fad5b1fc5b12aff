package domain

import "errors"

// ErrCurrencyNotFound indicates that the currency is not found.
var ErrCurrencyNotFound = errors.New("currency not found")

// Currency holds a currency accounts can be denominated in.
type Currency struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
