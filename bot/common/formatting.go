package common

import (
	"fmt"
	"strings"
)

// FormatCoins formats a coin amount with thousand separators
func FormatCoins(amount int64) string {
	str := fmt.Sprintf("%d", amount)
	negative := strings.HasPrefix(str, "-")
	if negative {
		str = str[1:]
	}

	n := len(str)
	if n > 3 {
		var result strings.Builder
		for i, digit := range str {
			if i > 0 && (n-i)%3 == 0 {
				result.WriteRune(',')
			}
			result.WriteRune(digit)
		}
		str = result.String()
	}

	if negative {
		return "-" + str
	}
	return str
}

// FormatHand renders a blackjack hand like [11, 10]
func FormatHand(cards []int) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = fmt.Sprintf("%d", card)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatHiddenHand renders a dealer hand with only the upcard showing
func FormatHiddenHand(cards []int) string {
	if len(cards) == 0 {
		return "[?]"
	}
	return fmt.Sprintf("[%d, ?]", cards[0])
}

// FormatSymbols renders a slot reel line like 🍒 🍒 🍋
func FormatSymbols(symbols [3]string) string {
	return strings.Join(symbols[:], " ")
}

// FormatMultiplier renders a payout multiplier like 2.5x
func FormatMultiplier(value float64) string {
	s := fmt.Sprintf("%g", value)
	return s + "x"
}
