// Package money defines the monetary value object shared across settlement
// math. Amounts are shopspring decimals rounded to the currency's minor unit;
// float64 never touches money.
package money

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount   = errors.New("amount cannot be negative")
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	JPY Currency = "JPY"
)

// MinorUnits returns the number of decimal places carried by the currency.
func (c Currency) MinorUnits() int32 {
	switch c {
	case JPY:
		return 0
	default:
		return 2
	}
}

func (c Currency) String() string {
	return string(c)
}

type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// New rounds the amount to the currency's minor unit, half up.
func New(amount decimal.Decimal, currency Currency) Money {
	return Money{
		amount:   amount.Round(currency.MinorUnits()),
		currency: currency,
	}
}

func NewNonNegative(amount decimal.Decimal, currency Currency) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return New(amount, currency), nil
}

func Zero(currency Currency) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

// Parse accepts a decimal string such as "5000.00".
func Parse(s string, currency Currency) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return New(d, currency), nil
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() Currency     { return m.currency }

func (m Money) IsZero() bool     { return m.amount.IsZero() }
func (m Money) IsNegative() bool { return m.amount.IsNegative() }
func (m Money) IsPositive() bool { return m.amount.IsPositive() }

func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

func (m Money) Sub(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// MulPercent multiplies by a fractional percentage (0.10 = 10%) and rounds
// half up to the minor unit.
func (m Money) MulPercent(pct decimal.Decimal) Money {
	return New(m.amount.Mul(pct), m.currency)
}

// ClampNonNegative floors the amount at zero.
func (m Money) ClampNonNegative() Money {
	if m.amount.IsNegative() {
		return Zero(m.currency)
	}
	return m
}

func (m Money) String() string {
	return m.amount.StringFixed(m.currency.MinorUnits()) + " " + string(m.currency)
}

type moneyJSON struct {
	Amount   string   `json:"amount"`
	Currency Currency `json:"currency"`
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{
		Amount:   m.amount.StringFixed(m.currency.MinorUnits()),
		Currency: m.currency,
	})
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := Parse(raw.Amount, raw.Currency)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
