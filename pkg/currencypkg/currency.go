// Package currencypkg holds the currencies seeded with the schema.
package currencypkg

// DefaultCurrencyID is the id of the currency seeded with the schema.
const DefaultCurrencyID int64 = 1

// Constants for the currencies seeded with the schema.
const (
	USD = "USD"
	EUR = "EUR"
	SAR = "SAR"
)
