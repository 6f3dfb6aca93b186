package model

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrencySymbol is the Indian Rupee sign.
const DefaultCurrencySymbol = "₹"

var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency renders an amount with grouped thousands and two decimals.
// Western symbols ($, €, £) attach directly; the Rupee sign (and anything
// else) is separated by a space, matching house style in outbound documents.
func FormatCurrency(amount float64, symbol string) string {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	formatted := currencyPrinter.Sprintf("%.2f", amount)
	switch symbol {
	case "$", "€", "£":
		return symbol + formatted
	default:
		return symbol + " " + formatted
	}
}
