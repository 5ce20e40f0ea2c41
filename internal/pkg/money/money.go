// Package money formats monetary values for customer-facing text.
//
// Every notification channel (chat alert, admin email, access email) shows
// amounts the same way the checkout does: pt-BR locale, BRL currency,
// e.g. "R$ 1.234,56".
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders a value as Brazilian Real: "R$ 99,90".
func FormatBRL(value float64) string {
	return ptBR.Sprintf("R$ %v", number.Decimal(value, number.Scale(2)))
}
