package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var displayPrinter = message.NewPrinter(language.English)

// FormatAmount groups an amount into thousands for display ("16387" ->
// "16,387"). No currency symbol; callers append the currency code.
func FormatAmount(amount int64) string {
	return displayPrinter.Sprintf("%d", amount)
}
