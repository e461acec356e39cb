package utils

import (
	"strings"
	"time"
)

// ValidTCKN validates a Turkish national identity number.
func ValidTCKN(value string) bool {
	if len(value) != 11 || value[0] == '0' {
		return false
	}

	digits := make([]int, 11)
	for i, r := range value {
		if r < '0' || r > '9' {
			return false
		}
		digits[i] = int(r - '0')
	}

	odd := digits[0] + digits[2] + digits[4] + digits[6] + digits[8]
	even := digits[1] + digits[3] + digits[5] + digits[7]

	check10 := ((odd*7-even)%10 + 10) % 10
	if digits[9] != check10 {
		return false
	}

	sum := 0
	for i := 0; i < 10; i++ {
		sum += digits[i]
	}
	return digits[10] == sum%10
}

// ValidVKN validates a Turkish tax identification number.
func ValidVKN(value string) bool {
	if len(value) != 10 {
		return false
	}

	digits := make([]int, 10)
	for i, r := range value {
		if r < '0' || r > '9' {
			return false
		}
		digits[i] = int(r - '0')
	}

	sum := 0
	for i := 0; i < 9; i++ {
		v := (digits[i] + 10 - (i + 1)) % 10
		if v == 9 {
			sum += v
			continue
		}
		sum += (v * pow2(10-(i+1))) % 9
	}

	return digits[9] == (10-sum%10)%10
}

func pow2(n int) int {
	result := 1
	for i := 0; i < n; i++ {
		result *= 2
	}
	return result
}

// ValidPhone validates Turkish mobile numbers. Accepts "+90", "90" and "0"
// prefixes and ignores spaces, dashes and parentheses.
func ValidPhone(value string) bool {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, value)

	cleaned = strings.TrimPrefix(cleaned, "+90")
	if len(cleaned) == 12 && strings.HasPrefix(cleaned, "90") {
		cleaned = cleaned[2:]
	}
	cleaned = strings.TrimPrefix(cleaned, "0")

	if len(cleaned) != 10 || cleaned[0] != '5' {
		return false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidCardNumber runs the Luhn check over a 12-19 digit card number.
func ValidCardNumber(value string) bool {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), "-", "")
	if len(cleaned) < 12 || len(cleaned) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		r := cleaned[i]
		if r < '0' || r > '9' {
			return false
		}
		d := int(r - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// ValidExpiry checks a card expiry month/year pair against the current date.
// Two-digit years are interpreted in the 2000s.
func ValidExpiry(month, year int) bool {
	if month < 1 || month > 12 {
		return false
	}
	if year < 100 {
		year += 2000
	}

	now := time.Now()
	if year < now.Year() {
		return false
	}
	if year == now.Year() && month < int(now.Month()) {
		return false
	}
	return true
}
