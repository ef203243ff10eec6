package utils

import "strconv"

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// CardLast4 returns the last four digits of a card number.
func CardLast4(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}
