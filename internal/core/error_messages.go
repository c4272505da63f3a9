package core

// # Error Codes Reference
//
// User-facing messages carry a code that users can quote to support.
//
// # Source Errors (SRC001-SRC099)
//
//	SRC001 - Source unavailable: The spreadsheet feed could not be reached
//	         Action: Please try again in a few moments
//	         Matches: ErrSourceUnavailable
//
//	SRC002 - Source timeout: The spreadsheet feed did not answer in time
//	         Action: Please try again later
//	         Matches: ErrSourceUnavailable caused by a deadline
//
//	SRC003 - Unreadable payload: The spreadsheet feed returned data that is not a row list
//	         Action: Check that the sheet tabs are published
//	         Patterns: "invalid payload"
//
// # Country Errors (CTY001-CTY099)
//
//	CTY001 - Country not found: No country has this code
//	         Action: Pick a country from the country list
//	         Matches: ErrNotFound
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Request cancelled
//	         Patterns: "context canceled"
//
// # Rate Limiting (RATE001-RATE099)
//
//	RATE001 - Rate limited: Too many requests
//	          Patterns: "rate limit"
//
// # Default Error (ERR000)
//
//	ERR000 - Anything else. Check the server log for the technical error.

import (
	"errors"
	"strings"
)

// UserMessage is a user-friendly rendering of an error.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

var (
	msgSourceUnavailable = UserMessage{
		Message: "The spreadsheet feed could not be reached",
		Action:  "Please try again in a few moments",
		Code:    "SRC001",
	}
	msgSourceTimeout = UserMessage{
		Message: "The spreadsheet feed did not answer in time",
		Action:  "Please try again later",
		Code:    "SRC002",
	}
	msgNotFound = UserMessage{
		Message: "No country has this code",
		Action:  "Pick a country from the country list",
		Code:    "CTY001",
	}
)

type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns are checked in order against the lowercased error text
// after the sentinel checks in MapError.
var errorPatterns = []errorPattern{
	{
		pattern: "invalid payload",
		msg: UserMessage{
			Message: "The spreadsheet feed returned data that is not a row list",
			Action:  "Check that the sheet tabs are published",
			Code:    "SRC003",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ001",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when nothing matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// Sentinel errors are matched with errors.Is; an unreadable payload is
// reported more specifically than a plain outage. Other errors fall back
// to case-insensitive text patterns, then to ERR000.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	switch {
	case errors.Is(err, ErrNotFound):
		return msgNotFound
	case errors.Is(err, ErrSourceUnavailable) && IsTimeout(err):
		return msgSourceTimeout
	}

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	if errors.Is(err, ErrSourceUnavailable) {
		return msgSourceUnavailable
	}
	return defaultMessage
}
