package model

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
)

// MaxCurrencyLength bounds currency codes.
const MaxCurrencyLength = 10

// MaxAmount is the largest cost or budget accepted, one trillion in any
// currency. Stored cents stay far inside int64.
var MaxAmount = decimal.New(1, 12)

var maxCents = decimal.NewFromInt(math.MaxInt64)

// ParseAmount parses a non-negative currency amount and rounds it to cents.
func ParseAmount(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, apperr.Invalid("%s is required", field)
	}
	switch strings.ToLower(strings.TrimLeft(s, "+-")) {
	case "nan", "inf", "infinity":
		return decimal.Zero, apperr.Invalid("%s must be a finite number", field)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperr.Invalid("%s must be a number", field)
	}
	return NormalizeAmount(field, d)
}

// NormalizeAmount rejects negative or oversized amounts and rounds to two
// decimals.
func NormalizeAmount(field string, d decimal.Decimal) (decimal.Decimal, error) {
	if d.IsNegative() {
		return decimal.Zero, apperr.Invalid("%s must not be negative", field)
	}
	d = d.Round(2)
	if d.GreaterThan(MaxAmount) {
		return decimal.Zero, apperr.Invalid("%s must be at most %s", field, MaxAmount.String())
	}
	return d, nil
}

// NormalizeCurrency upper-cases and bounds a currency code.
func NormalizeCurrency(s string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(s))
	if c == "" {
		return "", apperr.Invalid("currency must not be empty")
	}
	if len(c) > MaxCurrencyLength {
		return "", apperr.Invalid("currency must be at most %d characters", MaxCurrencyLength)
	}
	return c, nil
}

// ToCents converts a rounded amount to integer minor units for storage.
// Amounts that do not fit a non-negative int64 are rejected.
func ToCents(d decimal.Decimal) (int64, error) {
	cents := d.Shift(2).Round(0)
	if cents.IsNegative() || cents.GreaterThan(maxCents) {
		return 0, apperr.Invalid("amount %s cannot be stored", d.String())
	}
	return cents.IntPart(), nil
}

// FromCents converts stored minor units back to an amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
