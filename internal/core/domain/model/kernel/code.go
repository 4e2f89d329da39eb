package kernel

import (
	"fmt"
	"math/rand"

	"pos/internal/pkg/errs"
)

// codeLength is the number of digits in an order code.
const codeLength = 8

// ErrCodeIsNotConstructed indicates that a Code was not initialized through one
// of the constructor functions.
var ErrCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"Code must be created via NewRandomCode or CodeFromString",
)

// Code is the externally visible 8-digit order code printed on receipts and
// used by staff to look orders up. A code stays attached to an order for its
// whole life: it moves with the order into the archive and back out on revert,
// and must be unique across the live and archived tables simultaneously.
// Uniqueness is checked against storage at generation time, not here.
type Code struct {
	value string
}

// NewRandomCode generates a random candidate code in the range
// 10000000-99999999. Callers must verify uniqueness against both the live and
// archived order tables before using it.
func NewRandomCode() Code {
	return Code{value: fmt.Sprintf("%d", 10000000+rand.Intn(90000000))}
}

// CodeFromString parses and validates an order code.
func CodeFromString(s string) (Code, error) {
	if s == "" {
		return Code{}, errs.NewValueIsRequiredError("code")
	}
	if len(s) != codeLength {
		return Code{}, errs.NewValueIsInvalidErrorWithCause("code",
			fmt.Errorf("%q is not %d characters long", s, codeLength))
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return Code{}, errs.NewValueIsInvalidErrorWithCause("code",
				fmt.Errorf("%q contains a non-digit character", s))
		}
	}
	if s[0] == '0' {
		return Code{}, errs.NewValueIsInvalidErrorWithCause("code",
			fmt.Errorf("%q has a leading zero", s))
	}
	return Code{value: s}, nil
}

// String returns the code digits.
func (c Code) String() string {
	return c.value
}

// IsEqual compares two codes for equality.
func (c Code) IsEqual(other Code) bool {
	return c.value == other.value
}

// Validate returns ErrCodeIsNotConstructed for the zero-value Code.
func (c Code) Validate() error {
	if c.value == "" {
		return ErrCodeIsNotConstructed
	}
	return nil
}
