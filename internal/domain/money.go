package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount int64, cur currency.Unit) Money {
	return Money{
		Amount:   decimal.NewFromInt(amount),
		Currency: cur,
	}
}

func ZeroMoney(cur currency.Unit) Money {
	return Money{Amount: decimal.Zero, Currency: cur}
}

// Add keeps the receiver currency. Mixing currencies is prevented at catalog construction.
func (m Money) Add(other Money) Money {
	return Money{
		Amount:   m.Amount.Add(other.Amount),
		Currency: m.Currency,
	}
}

func (m Money) Mul(n int) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(int64(n))),
		Currency: m.Currency,
	}
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// String renders whole amounts without decimals ("$45") and fractional ones with two ("$12.50").
func (m Money) String() string {
	amount := m.Amount.StringFixed(2)
	if m.Amount.IsInteger() {
		amount = m.Amount.String()
	}

	return symbol(m.Currency) + amount
}

var printer = message.NewPrinter(language.AmericanEnglish)

func symbol(cur currency.Unit) string {
	return printer.Sprint(currency.NarrowSymbol(cur))
}
