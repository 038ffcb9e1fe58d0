package domain

import (
	"fmt"
	"net/http"
)

// Error is a terminal, user-visible failure. Code is stable and
// machine-readable; Status is the HTTP status the boundary layer maps it
// to. Two Errors match under errors.Is when their codes are equal, so a
// sentinel can be rephrased per operation with WithMessage and still be
// matched by tests and handlers.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// WithMessage returns a copy carrying an operation-specific message.
func (e *Error) WithMessage(message string) *Error {
	return &Error{Code: e.Code, Message: message, Status: e.Status}
}

var (
	// Sign-in failures. The codes stay distinct but both carry the same
	// generic message so responses do not reveal whether the username or
	// the password was wrong.
	ErrUnknownUsername  = &Error{Code: "ATH-001", Message: "authentication failed", Status: http.StatusUnauthorized}
	ErrPasswordMismatch = &Error{Code: "ATH-002", Message: "authentication failed", Status: http.StatusUnauthorized}

	// Session guard failures.
	ErrNotSignedIn    = &Error{Code: "ATHR-001", Message: "User has not signed in", Status: http.StatusUnauthorized}
	ErrSignedOut      = &Error{Code: "ATHR-002", Message: "User is signed out", Status: http.StatusUnauthorized}
	ErrForbidden      = &Error{Code: "ATHR-003", Message: "Unauthorized Access", Status: http.StatusForbidden}
	ErrSessionExpired = &Error{Code: "ATHR-004", Message: "Session has expired", Status: http.StatusUnauthorized}

	// Sign-up conflicts.
	ErrUsernameTaken = &Error{Code: "SGR-001", Message: "Try any other Username, this Username has already been taken", Status: http.StatusConflict}
	ErrEmailTaken    = &Error{Code: "SGR-002", Message: "This user has already been registered, try with any other emailId", Status: http.StatusConflict}

	// Missing resources.
	ErrUserNotFound     = &Error{Code: "USR-001", Message: "User with entered uuid does not exist", Status: http.StatusNotFound}
	ErrQuestionNotFound = &Error{Code: "QUES-001", Message: "Entered question uuid does not exist", Status: http.StatusNotFound}
	ErrAnswerNotFound   = &Error{Code: "ANS-001", Message: "Entered answer uuid does not exist", Status: http.StatusNotFound}
)
