package utils

import (
	"fmt"
	"strings"
)

// FormatEuro formatta un importo in euro con separatore delle migliaia
// e virgola decimale (es. 1240.50 -> "€ 1.240,50").
func FormatEuro(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	negative := strings.HasPrefix(integerPart, "-")
	if negative {
		integerPart = integerPart[1:]
	}

	var result []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		result = append([]string{integerPart[start:i]}, result...)
	}

	out := strings.Join(result, ".") + "," + decimalPart
	if negative {
		out = "-" + out
	}
	return "€ " + out
}
