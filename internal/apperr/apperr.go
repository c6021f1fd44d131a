// Package apperr defines the classified business errors returned by services.
// Every error carries a Kind used for transport mapping and a stable Code and
// Message shown to the client.
package apperr

import "errors"

// Kind classifies a business failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidationFailed
	KindAuthenticationFailed
	KindNotLoggedIn
	KindLoggedOut
	KindSessionExpired
	KindWeakPassword
	KindIncorrectOldPassword
	KindEmptyField
	KindSignupRestricted
	KindNotFound
	KindForbidden
)

var kindNames = map[Kind]string{
	KindUnknown:              "Unknown",
	KindValidationFailed:     "ValidationFailed",
	KindAuthenticationFailed: "AuthenticationFailed",
	KindNotLoggedIn:          "NotLoggedIn",
	KindLoggedOut:            "LoggedOut",
	KindSessionExpired:       "SessionExpired",
	KindWeakPassword:         "WeakPassword",
	KindIncorrectOldPassword: "IncorrectOldPassword",
	KindEmptyField:           "EmptyField",
	KindSignupRestricted:     "SignupRestricted",
	KindNotFound:             "NotFound",
	KindForbidden:            "Forbidden",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Error is a classified business error.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

// New creates an Error.
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// Is matches errors with the same kind and code, so errors.Is works against
// freshly built constructor values.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
