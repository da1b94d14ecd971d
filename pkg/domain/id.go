// Package domain defines the Saudi national identifier model: a validated
// 10-digit value type and its holder-category enumeration.
//
// An identifier is valid when it is exactly 10 decimal digits, satisfies the
// Luhn checksum relation, and starts with a category prefix digit (1 for
// citizens, 2 for residents). IDs are only ever created through validated
// construction paths; once constructed they are immutable values, safe to
// share across goroutines without synchronization.
package domain

import (
	"strconv"

	"saudiid/internal/luhn"
	dErrors "saudiid/pkg/domain-errors"
)

// SizeDigits is the fixed identifier length.
const SizeDigits = 10

// IDType identifies the holder category encoded in an identifier's first
// digit. Invariant: the value must be one of the supported categories.
//
// Usage: construct via ParseIDType at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type IDType string

// Supported holder categories.
const (
	IDTypeCitizen  IDType = "citizen"
	IDTypeResident IDType = "resident"
)

// idTypePrefixes is the single source of truth for the category-to-prefix
// mapping. The inverse map is derived from it at init so the two can never
// drift apart.
var idTypePrefixes = map[IDType]uint8{
	IDTypeCitizen:  1,
	IDTypeResident: 2,
}

var idTypeByPrefix = func() map[uint8]IDType {
	m := make(map[uint8]IDType, len(idTypePrefixes))
	for t, p := range idTypePrefixes {
		m[p] = t
	}
	return m
}()

// ParseIDType constructs an IDType from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported; no
// other errors are expected.
func ParseIDType(s string) (IDType, error) {
	t := IDType(s)
	if !t.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid id type")
	}
	return t, nil
}

// IsValid checks if the category is one of the supported enum values.
func (t IDType) IsValid() bool {
	_, ok := idTypePrefixes[t]
	return ok
}

// Prefix returns the single leading digit that encodes the category.
// It is zero for an invalid IDType; validated call sites never observe that.
func (t IDType) Prefix() uint8 {
	return idTypePrefixes[t]
}

// String returns the string representation of the category.
func (t IDType) String() string {
	return string(t)
}

// ID is one validated national identifier, most-significant digit first.
//
// The zero value is not a valid identifier; use one of the constructors.
// Comparison with == implements value equality over the digit sequence, and
// assignment copies the digits, so copies share no state.
type ID struct {
	digits [SizeDigits]uint8
}

// checkDigits applies the construction policy. Each rejection names the
// violated invariant but carries the same code, so callers match a single
// invalid-identifier condition.
func checkDigits(digits []uint8) error {
	if len(digits) != SizeDigits {
		return dErrors.New(dErrors.CodeInvalidInput, "identifier must be exactly 10 digits")
	}
	if !luhn.Validate(digits) {
		return dErrors.New(dErrors.CodeInvalidInput, "identifier fails its checksum")
	}
	if _, ok := idTypeByPrefix[digits[0]]; !ok {
		return dErrors.New(dErrors.CodeInvalidInput, "identifier must start with a citizen or resident prefix")
	}
	return nil
}

// IDFromDigits constructs an ID from a raw digit sequence, most-significant
// digit first. This is the most permissive entry point; the number and text
// paths reduce to it. Elements outside 0-9 fail the checksum check.
func IDFromDigits(digits []uint8) (ID, error) {
	if err := checkDigits(digits); err != nil {
		return ID{}, err
	}
	var id ID
	copy(id.digits[:], digits)
	return id, nil
}

// IDFromNumber constructs an ID from the identifier's positional base-10
// value. Values with fewer than 10 decimal digits (including zero) fail the
// length invariant; leading zeros cannot survive this path.
func IDFromNumber(n uint64) (ID, error) {
	digits := make([]uint8, 0, SizeDigits)
	for n > 0 {
		digits = append(digits, uint8(n%10))
		n /= 10
	}
	// Decomposition yields least-significant first.
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return IDFromDigits(digits)
}

// ParseID constructs an ID from its canonical decimal text.
//
// The input is parsed as a strict base-10 unsigned integer: no sign, no
// whitespace, ASCII digits only. Zero-prefixed text loses its leading zeros
// before validation; that can only change the verdict for inputs that were
// invalid anyway, since no valid identifier starts with 0.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return ID{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "identifier is not a decimal number")
	}
	return IDFromNumber(n)
}

// NewID generates a random valid identifier for the given category.
//
// The checksum primitive must not fail for a fixed-length request with a
// single-digit prefix; if it ever does, the failure surfaces as an invariant
// violation rather than invalid input. The generated sequence is re-validated
// before an ID is returned.
func NewID(t IDType) (ID, error) {
	if !t.IsValid() {
		return ID{}, dErrors.New(dErrors.CodeInvalidInput, "invalid id type")
	}
	digits, err := luhn.GenerateWithPrefix(SizeDigits, []uint8{t.Prefix()})
	if err != nil {
		return ID{}, dErrors.Wrap(err, dErrors.CodeInvariantViolation, "checksum generation failed for a fixed-size request")
	}
	id, err := IDFromDigits(digits)
	if err != nil {
		return ID{}, dErrors.Wrap(err, dErrors.CodeInvariantViolation, "generated identifier failed validation")
	}
	return id, nil
}

// MustNewID is NewID for contexts where generation cannot reasonably fail,
// such as tests and fixtures. It panics on error.
func MustNewID(t IDType) ID {
	id, err := NewID(t)
	if err != nil {
		panic(err)
	}
	return id
}

// Type returns the holder category encoded in the first digit.
//
// A validly constructed ID always carries a known prefix; observing anything
// else means a construction-path defect and is reported as a panic rather
// than a default category.
func (id ID) Type() IDType {
	t, ok := idTypeByPrefix[id.digits[0]]
	if !ok {
		panic("domain: ID with unknown category prefix")
	}
	return t
}

// Digits returns a copy of the digit sequence, most-significant first.
// Mutating the returned slice does not affect the ID.
func (id ID) Digits() []uint8 {
	out := make([]uint8, SizeDigits)
	copy(out, id.digits[:])
	return out
}

// Number returns the identifier's positional base-10 value.
func (id ID) Number() uint64 {
	var n uint64
	for _, d := range id.digits {
		n = n*10 + uint64(d)
	}
	return n
}

// String renders the canonical decimal text: exactly 10 ASCII digits, no
// separators, no padding, no sign. ParseID inverts it for every valid ID.
func (id ID) String() string {
	buf := make([]byte, SizeDigits)
	for i, d := range id.digits {
		buf[i] = '0' + d
	}
	return string(buf)
}

// IsZero reports whether id is the zero value, which is never a valid
// identifier.
func (id ID) IsZero() bool {
	return id == ID{}
}
