package service

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var jaPrinter = message.NewPrinter(language.Japanese)

// FormatCurrency formats amount with Japanese digit grouping, e.g. 30,000.
func FormatCurrency(amount int64) string {
	return jaPrinter.Sprintf("%d", amount)
}

// FormatCurrencyWithSymbol formats amount with the yen sign, e.g. ¥30,000.
func FormatCurrencyWithSymbol(amount int64) string {
	return "¥" + FormatCurrency(amount)
}

// FormatDate formats t as 2026年10月19日.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d年%02d月%02d日", t.Year(), int(t.Month()), t.Day())
}
