// Package passwordreset holds the state machine behind the "forgot
// password" page: an email form that, once submitted, turns into a
// confirmation until the user asks to try another address.
package passwordreset

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Phase is the rendered state of a password reset view.
type Phase int

const (
	// AwaitingInput renders the email form. It is the initial phase.
	AwaitingInput Phase = iota
	// Submitted renders the confirmation for the stored email.
	Submitted
)

// String returns the phase name used in logs and session payloads.
func (p Phase) String() string {
	switch p {
	case AwaitingInput:
		return "awaiting_input"
	case Submitted:
		return "submitted"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ParsePhase is the inverse of Phase.String. Unknown names fall back to
// AwaitingInput with ok set to false.
func ParsePhase(s string) (p Phase, ok bool) {
	switch s {
	case "awaiting_input":
		return AwaitingInput, true
	case "submitted":
		return Submitted, true
	default:
		return AwaitingInput, false
	}
}

// View is the transient state of one password reset page.
type View struct {
	Email string
	Phase Phase
}

// submission mirrors the constraints the browser enforces on the form's
// <input type="email" required>.
type submission struct {
	Email string `validate:"required,html_email"`
}

// htmlEmail is the "valid email address" production browsers apply to
// <input type="email">. It is looser than RFC 5322 in the local part and
// does not require a dot in the domain.
var htmlEmail = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@" +
	"[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?" +
	"(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("html_email", func(fl validator.FieldLevel) bool {
		return htmlEmail.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// NewView returns a view in its initial state.
func NewView() View {
	return View{Phase: AwaitingInput}
}

// Submitted reports whether the confirmation should be rendered.
func (v View) Submitted() bool {
	return v.Phase == Submitted
}

// Input records what the user typed without changing the phase.
func (v *View) Input(email string) {
	v.Email = email
}

// Submit moves the view to the Submitted phase.
//
// The value is normalised the way browsers sanitise an email input
// (surrounding whitespace removed) before the native constraint is
// checked. A value the browser would have refused leaves the view
// untouched and returns ErrConstraintViolation. Submitting an already
// submitted view is a no-op.
func (v *View) Submit(email string) error {
	if v.Phase == Submitted {
		return nil
	}

	email = NormalizeEmail(email)
	if err := validate.Struct(submission{Email: email}); err != nil {
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	}

	v.Email = email
	v.Phase = Submitted
	return nil
}

// TryAnother returns a submitted view to the form. The email is kept.
func (v *View) TryAnother() {
	v.Phase = AwaitingInput
}

// ConfirmationText is the sentence shown once the view is submitted.
func (v View) ConfirmationText() string {
	return ConfirmationPrefix + v.Email
}

// ConfirmationPrefix precedes the emphasised email on the confirmation.
const ConfirmationPrefix = "We've sent a password reset link to "

// NormalizeEmail strips leading and trailing whitespace, matching the
// value sanitisation browsers apply to email inputs.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
