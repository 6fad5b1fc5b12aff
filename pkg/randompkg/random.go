// Package randompkg provides functionality gor generating random applications common items.
package randompkg

import (
	"crypto/rand"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz"
	digits   = "0123456789"
)

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Float64 is a shortcut for generating a random float between 0 and 1 using crypto/rand.
func Float64() float64 {
	return float64(Intn(1<<32)) / (1 << 32)
}

// IntBetween generates a random integer in [min, max).
func IntBetween(min, max int) int64 {
	return int64(min) + Intn(max-min)
}

// FloatBetween generates a random decimal number between min and max rounded to 4 decimals.
func FloatBetween(min, max float64) float64 {
	numInRange := min + Float64()*(max-min)
	return math.Floor(numInRange*10_000) / 10_000
}

func fromSet(set string, n int) string {
	var sb strings.Builder

	k := len(set)

	for i := 0; i < n; i++ {
		c := set[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// String generates a random string of length n.
func String(n int) string {
	return fromSet(alphabet, n)
}

// ProjectID generates a random positive project id.
func ProjectID() int64 {
	return IntBetween(1, 1_000_000)
}

// AccountCode generates a random numeric account code of length n without a leading zero.
func AccountCode(n int) string {
	return strconv.FormatInt(IntBetween(1, 10), 10) + fromSet(digits, n-1)
}

// Subject generates a random token subject.
func Subject() string {
	return String(6)
}

// BalanceBetween generates a random balance between min and max rounded to 4 decimals.
func BalanceBetween(min, max float64) string {
	return decimal.NewFromFloat(FloatBetween(min, max)).String()
}
