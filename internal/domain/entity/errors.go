package entity

import (
	"errors"
	"fmt"
)

var (
	ErrNotAvailable      = errors.New("the current environment does not support the DOM command executor")
	ErrCommandPending    = errors.New("currently awaiting a command response")
	ErrEmptyResponse     = errors.New("empty command response")
	ErrMalformedResponse = errors.New("malformed command response")
	ErrTransport         = errors.New("command channel failure")
	ErrClosed            = errors.New("executor closed")
)

// ErrorCode is a status code of the legacy JSON wire protocol.
type ErrorCode int

const (
	CodeSuccess                        ErrorCode = 0
	CodeNoSuchElement                  ErrorCode = 7
	CodeNoSuchFrame                    ErrorCode = 8
	CodeUnknownCommand                 ErrorCode = 9
	CodeStaleElementReference          ErrorCode = 10
	CodeElementNotVisible              ErrorCode = 11
	CodeInvalidElementState            ErrorCode = 12
	CodeUnknownError                   ErrorCode = 13
	CodeElementNotSelectable           ErrorCode = 15
	CodeJavaScriptError                ErrorCode = 17
	CodeXPathLookupError               ErrorCode = 19
	CodeTimeout                        ErrorCode = 21
	CodeNoSuchWindow                   ErrorCode = 23
	CodeInvalidCookieDomain            ErrorCode = 24
	CodeUnableToSetCookie              ErrorCode = 25
	CodeUnexpectedAlertOpen            ErrorCode = 26
	CodeNoSuchAlert                    ErrorCode = 27
	CodeScriptTimeout                  ErrorCode = 28
	CodeInvalidElementCoordinates      ErrorCode = 29
	CodeIMENotAvailable                ErrorCode = 30
	CodeIMEEngineActivationFailed      ErrorCode = 31
	CodeInvalidSelector                ErrorCode = 32
	CodeSessionNotCreated              ErrorCode = 33
	CodeMoveTargetOutOfBounds          ErrorCode = 34
	CodeSQLDatabaseError               ErrorCode = 35
	CodeInvalidXPathSelector           ErrorCode = 51
	CodeInvalidXPathSelectorReturnType ErrorCode = 52
	CodeMethodNotAllowed               ErrorCode = 405
)

var codeNames = map[ErrorCode]string{
	CodeSuccess:                        "success",
	CodeNoSuchElement:                  "no such element",
	CodeNoSuchFrame:                    "no such frame",
	CodeUnknownCommand:                 "unknown command",
	CodeStaleElementReference:          "stale element reference",
	CodeElementNotVisible:              "element not visible",
	CodeInvalidElementState:            "invalid element state",
	CodeUnknownError:                   "unknown error",
	CodeElementNotSelectable:           "element not selectable",
	CodeJavaScriptError:                "javascript error",
	CodeXPathLookupError:               "xpath lookup error",
	CodeTimeout:                        "timeout",
	CodeNoSuchWindow:                   "no such window",
	CodeInvalidCookieDomain:            "invalid cookie domain",
	CodeUnableToSetCookie:              "unable to set cookie",
	CodeUnexpectedAlertOpen:            "unexpected alert open",
	CodeNoSuchAlert:                    "no such alert",
	CodeScriptTimeout:                  "script timeout",
	CodeInvalidElementCoordinates:      "invalid element coordinates",
	CodeIMENotAvailable:                "ime not available",
	CodeIMEEngineActivationFailed:      "ime engine activation failed",
	CodeInvalidSelector:                "invalid selector",
	CodeSessionNotCreated:              "session not created",
	CodeMoveTargetOutOfBounds:          "move target out of bounds",
	CodeSQLDatabaseError:               "sql database error",
	CodeInvalidXPathSelector:           "invalid xpath selector",
	CodeInvalidXPathSelectorReturnType: "invalid xpath selector return type",
	CodeMethodNotAllowed:               "method not allowed",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("error code %d", int(c))
}

// Sentinels for use with errors.Is against a *CommandError.
var (
	ErrNoSuchElement         = &CommandError{Code: CodeNoSuchElement}
	ErrNoSuchFrame           = &CommandError{Code: CodeNoSuchFrame}
	ErrNoSuchWindow          = &CommandError{Code: CodeNoSuchWindow}
	ErrStaleElementReference = &CommandError{Code: CodeStaleElementReference}
	ErrUnknownCommand        = &CommandError{Code: CodeUnknownCommand}
	ErrSessionNotCreated     = &CommandError{Code: CodeSessionNotCreated}
)

// CommandError is a checked failure: the response was well formed but
// reports that the command itself failed.
type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	if e.Message == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches any CommandError carrying the same code.
func (e *CommandError) Is(target error) bool {
	var other *CommandError
	if !errors.As(target, &other) {
		return false
	}
	return other.Code == e.Code
}
