package analytics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// isinRegex checks for the basic structure: 2 letters, 9 alphanumeric, 1 digit.
var isinRegex = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)

// ValidateISIN checks if a string is a validly formatted ISIN (ISO 6166).
// It returns nil if valid, or a descriptive error if invalid.
func ValidateISIN(isin string) error {
	if len(isin) != 12 {
		return fmt.Errorf("invalid ISIN %q: must be 12 characters, got %d", isin, len(isin))
	}
	if !isinRegex.MatchString(isin) {
		return fmt.Errorf("invalid ISIN %q: must be 2 uppercase letters, 9 alphanumeric chars, and 1 digit", isin)
	}

	// Letters count as two digits (A=10 ... Z=35).
	var digits strings.Builder
	for _, char := range isin[:11] {
		if char >= 'A' && char <= 'Z' {
			digits.WriteString(strconv.Itoa(int(char - 'A' + 10)))
		} else {
			digits.WriteRune(char)
		}
	}

	// Luhn, doubling from the rightmost digit.
	sum := 0
	double := true
	s := digits.String()
	for i := len(s) - 1; i >= 0; i-- {
		digit := int(s[i] - '0')
		if double {
			digit *= 2
		}
		sum += digit/10 + digit%10
		double = !double
	}

	want := (10 - sum%10) % 10
	if got := int(isin[11] - '0'); got != want {
		return fmt.Errorf("invalid ISIN %q: check digit is %d, want %d", isin, got, want)
	}
	return nil
}
