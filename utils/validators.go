// File: /utils/validators.go
package utils

import (
	"regexp"
	"strings"
	"unicode"
)

func IsValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func IsValidPassword(password string) bool {
	if len(password) < 6 {
		return false
	}

	var (
		hasUpper   = false
		hasLower   = false
		hasNumber  = false
		hasSpecial = false
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	// At least 3 of 4 character types required
	count := 0
	if hasUpper {
		count++
	}
	if hasLower {
		count++
	}
	if hasNumber {
		count++
	}
	if hasSpecial {
		count++
	}

	return count >= 3
}

// IsValidPlate accepts any non-empty plate up to 20 characters. Plate formats
// vary (old ABC-1234 and Mercosul ABC1D23 both occur), so only length is checked.
func IsValidPlate(plate string) bool {
	trimmed := strings.TrimSpace(plate)
	return trimmed != "" && len(trimmed) <= 20
}

// NormalizeDocument strips formatting characters from a CPF/CNPJ so lookups
// match regardless of punctuation.
func NormalizeDocument(document string) string {
	var b strings.Builder
	for _, r := range document {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
