// internal/pkg/format/format.go
package format

import "fmt"

// Price renders an amount as a US dollar string
func Price(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// Truncate shortens text to at most maxLen runes, appending an ellipsis
func Truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "…"
}
