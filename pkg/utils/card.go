package utils

import "time"

// IsValidLuhn applies the Luhn checksum to a string of decimal digits,
// scanning from the rightmost digit and doubling every second one.
// Returns false on any non-digit character.
func IsValidLuhn(number string) bool {
	if number == "" {
		return false
	}

	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}

		digit := int(c - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	return sum%10 == 0
}

// IsCardNotExpired reports whether a card expiring month/year is still
// usable now. A card expiring in the current month is valid until the
// end of that month.
func IsCardNotExpired(month, year int) bool {
	return IsCardNotExpiredAt(month, year, time.Now())
}

// IsCardNotExpiredAt is IsCardNotExpired against an explicit clock.
func IsCardNotExpiredAt(month, year int, now time.Time) bool {
	if year > now.Year() {
		return true
	}
	return year == now.Year() && month >= int(now.Month())
}
