package helpers

import (
	"fmt"
	"strings"
)

// FormatBRL renders an amount in cents as Brazilian currency, e.g.
// 123456789 -> "R$ 1.234.567,89". Negative amounts keep the sign before
// the symbol.
func FormatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	reais := cents / 100
	centavos := cents % 100

	digits := fmt.Sprintf("%d", reais)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(d)
	}

	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped.String(), centavos)
}

// FormatPercent renders a percentage with Brazilian decimal notation,
// trimming a trailing ",00".
func FormatPercent(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	formatted = strings.Replace(formatted, ".", ",", 1)
	formatted = strings.TrimSuffix(formatted, ",00")
	return formatted + "%"
}
