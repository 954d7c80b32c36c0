package passwordreset

import "errors"

// ErrConstraintViolation is returned when a submitted value would have
// been rejected by the form's native required/email constraint.
var ErrConstraintViolation = errors.New("email does not satisfy the form constraint")
