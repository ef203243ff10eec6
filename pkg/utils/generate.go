package utils

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== OTP ====================

// GenerateOTP creates a numeric OTP of specified length
func GenerateOTP(length int) string {
	if length <= 0 {
		length = 6
	}

	otp := ""
	for i := 0; i < length; i++ {
		otp += fmt.Sprintf("%d", rand.Intn(10))
	}

	return otp
}

// ==================== PNR ====================

const pnrAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// PNRLength is the length of a booking locator.
const PNRLength = 6

// GeneratePNR creates a booking locator: PNRLength base-36 characters,
// uppercase. Uniqueness is enforced by the booking store; callers retry
// on collision.
func GeneratePNR() string {
	b := make([]byte, PNRLength)
	for i := range b {
		b[i] = pnrAlphabet[rand.Intn(len(pnrAlphabet))]
	}
	return string(b)
}
