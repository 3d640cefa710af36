package form

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PostcodeLength is the exact number of characters a postcode must have.
const PostcodeLength = 6

// postcodeRule mirrors the form field constraint: present and exactly six
// characters. Digits are not enforced.
var postcodeRule = fmt.Sprintf("required,len=%d", PostcodeLength)

var validate = validator.New()

// ErrInvalidPostcode is returned when a submission does not meet the length rule.
var ErrInvalidPostcode = errors.New("postcode must be exactly 6 characters")

// ValidatePostcode reports whether s may be submitted.
func ValidatePostcode(s string) error {
	if err := validate.Var(s, postcodeRule); err != nil {
		return ErrInvalidPostcode
	}
	return nil
}
