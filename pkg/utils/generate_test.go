package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePNR(t *testing.T) {
	pnrPattern := regexp.MustCompile(`^[0-9A-Z]{6}$`)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		pnr := GeneratePNR()
		assert.Regexp(t, pnrPattern, pnr)
		seen[pnr] = true
	}

	// 36^6 codes - a thousand draws colliding down to a handful would
	// mean the generator is broken
	assert.Greater(t, len(seen), 990)
}

func TestGenerateOTP(t *testing.T) {
	otpPattern := regexp.MustCompile(`^[0-9]+$`)

	otp := GenerateOTP(6)
	assert.Len(t, otp, 6)
	assert.Regexp(t, otpPattern, otp)

	otp = GenerateOTP(4)
	assert.Len(t, otp, 4)

	// Non-positive length falls back to the default
	otp = GenerateOTP(0)
	assert.Len(t, otp, 6)
}

func TestCardLast4(t *testing.T) {
	assert.Equal(t, "6467", CardLast4("4539148803436467"))
	assert.Equal(t, "123", CardLast4("123"))
	assert.Equal(t, "", CardLast4(""))
}
