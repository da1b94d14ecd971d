// Package luhn implements Luhn checksum validation and checksum-valid random
// digit-sequence generation over raw decimal digit slices.
package luhn

import (
	"crypto/rand"
	"fmt"
)

// Validate reports whether digits satisfies the Luhn checksum relation.
// It accepts sequences of any length and returns false for an empty sequence
// or for any element outside 0-9.
func Validate(digits []uint8) bool {
	if len(digits) == 0 {
		return false
	}

	sum := 0
	double := false

	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i])
		if d > 9 {
			return false
		}
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

// GenerateWithPrefix returns a random Luhn-valid sequence of exactly length
// digits beginning with prefix. The non-prefix body is drawn from crypto/rand
// and the final digit is the computed check digit.
//
// It fails only on invalid arguments or an unreadable entropy source; a
// fixed-length request with a shorter all-decimal prefix never fails on
// arguments.
func GenerateWithPrefix(length int, prefix []uint8) ([]uint8, error) {
	if length < 1 {
		return nil, fmt.Errorf("luhn: length must be positive, got %d", length)
	}
	if len(prefix) >= length {
		return nil, fmt.Errorf("luhn: prefix of %d digits leaves no room for a check digit in %d", len(prefix), length)
	}
	for _, d := range prefix {
		if d > 9 {
			return nil, fmt.Errorf("luhn: prefix digit %d out of range", d)
		}
	}

	digits := make([]uint8, length)
	copy(digits, prefix)

	buf := make([]byte, length-len(prefix)-1)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("luhn: could not read random digits: %w", err)
	}
	for i, b := range buf {
		digits[len(prefix)+i] = b % 10
	}

	digits[length-1] = checkDigit(digits[:length-1])
	return digits, nil
}

// checkDigit computes the digit that makes body followed by it Luhn-valid.
// The check digit occupies the rightmost, undoubled position, so doubling
// starts at the last element of body.
func checkDigit(body []uint8) uint8 {
	sum := 0
	double := true

	for i := len(body) - 1; i >= 0; i-- {
		d := int(body[i])
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return uint8((10 - sum%10) % 10)
}
