package core

// error_messages.go maps errors to user-facing messages with support codes.
//
// # Validation Errors (VAL001-VAL099)
//
// Data-quality problems reported per row. They never stop a batch:
//
//	VAL001 - Invalid date          (KindType on date fields, "invalid date")
//	VAL002 - Invalid number        (KindType on numeric fields, "invalid number")
//	VAL003 - Required field        (KindMissing)
//	VAL004 - Missing column        (extract diagnostic, "missing column")
//	VAL005 - Text too long         (KindLength)
//	VAL006 - Not a domain member   (KindDomain)
//	VAL007 - Out of range          (KindRange)
//	VAL008 - Business rule         (KindRule)
//	VAL009 - Invalid geometry      (KindGeometry)
//
// # Fatal Errors
//
// Problems that stop a batch before or while reading it:
//
//	CAT001 - Reference data missing (catalog.ErrReferenceDataMissing)
//	CAT002 - Unknown domain         (ErrDomainNotFound)
//	SCH001 - Unknown record type    (ErrSchemaNotFound)
//	SRC001 - Unsupported source     (ErrUnsupportedSource)
//	SRC002 - Invalid CSV            ("invalid csv")
//	SRC003 - Invalid GeoJSON        ("invalid geojson")
//	SRC004 - Unknown encoding       ("unknown encoding")
//	SRC005 - Empty input            ("empty input")
//	BAT001 - System busy            (ErrTooManyBatches)
//	BAT002 - Request cancelled      (context.Canceled)
//	BAT003 - Request timeout        (context.DeadlineExceeded)
//	BAT004 - Result not found       (ErrResultNotFound)
//	SRC006 - No database            (ErrNoDatabase)
//	ERR000 - Unknown error
//
// Sentinel errors are matched with errors.Is first; the remaining patterns
// are matched case-insensitively against the error text, first match wins.

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/JonMunkholm/geoanla/internal/catalog"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string `json:"message"` // What happened (user-friendly)
	Action  string `json:"action"`  // What to do about it
	Code    string `json:"code"`    // Error code for support reference
}

var (
	msgReferenceMissing = UserMessage{
		Message: "Reference data is missing",
		Action:  "Check the configured municipality table and dictionaries paths",
		Code:    "CAT001",
	}
	msgDomainNotFound = UserMessage{
		Message: "A record type refers to an unknown domain",
		Action:  "The record type declaration is misconfigured; contact support",
		Code:    "CAT002",
	}
	msgSchemaNotFound = UserMessage{
		Message: "Unknown record type",
		Action:  "List the available record types and use one of their keys",
		Code:    "SCH001",
	}
	msgUnsupportedSource = UserMessage{
		Message: "The input format is not supported",
		Action:  "Send CSV or GeoJSON data",
		Code:    "SRC001",
	}
	msgTooManyBatches = UserMessage{
		Message: "System is busy validating other batches",
		Action:  "Please wait a moment and try again",
		Code:    "BAT001",
	}
	msgCancelled = UserMessage{
		Message: "Request was cancelled",
		Action:  "Please try again",
		Code:    "BAT002",
	}
	msgTimeout = UserMessage{
		Message: "Request timed out",
		Action:  "Split the input into smaller batches and use the offset parameter",
		Code:    "BAT003",
	}
	msgResultNotFound = UserMessage{
		Message: "Validation result not found",
		Action:  "Results are kept for a limited time; validate the batch again",
		Code:    "BAT004",
	}
	msgNoDatabase = UserMessage{
		Message: "Query validation is not available",
		Action:  "Configure DATABASE_URL to validate query results",
		Code:    "SRC006",
	}
)

// sentinelMessages is checked with errors.Is before any text pattern.
var sentinelMessages = []struct {
	err error
	msg UserMessage
}{
	{catalog.ErrReferenceDataMissing, msgReferenceMissing},
	{ErrDomainNotFound, msgDomainNotFound},
	{ErrSchemaNotFound, msgSchemaNotFound},
	{ErrUnsupportedSource, msgUnsupportedSource},
	{ErrTooManyBatches, msgTooManyBatches},
	{context.Canceled, msgCancelled},
	{context.DeadlineExceeded, msgTimeout},
	{ErrResultNotFound, msgResultNotFound},
	{ErrNoDatabase, msgNoDatabase},
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps error text (case-insensitive) to user messages.
// Specific patterns come before general ones.
var errorPatterns = []errorPattern{
	// =========================================================================
	// Validation Errors (VAL001-VAL009)
	// =========================================================================
	{
		pattern: "invalid date",
		msg: UserMessage{
			Message: "Invalid date format detected",
			Action:  "Use YYYY-MM-DD or DD/MM/YYYY",
			Code:    "VAL001",
		},
	},
	{
		pattern: "invalid number",
		msg: UserMessage{
			Message: "Invalid number format detected",
			Action:  "Use digits with a single decimal separator",
			Code:    "VAL002",
		},
	},
	{
		pattern: "missing required field",
		msg: UserMessage{
			Message: "Required field is empty",
			Action:  "Fill in every required field",
			Code:    "VAL003",
		},
	},
	{
		pattern: "missing column",
		msg: UserMessage{
			Message: "Expected column is missing from the input",
			Action:  "Check the column names against the record type",
			Code:    "VAL004",
		},
	},
	{
		pattern: "is not a member of",
		msg: UserMessage{
			Message: "Value is not in the allowed list",
			Action:  "Use a code, description or name from the domain",
			Code:    "VAL006",
		},
	},
	{
		pattern: "invalid geometry",
		msg: UserMessage{
			Message: "Geometry could not be read",
			Action:  "Provide WKT or GeoJSON geometries",
			Code:    "VAL009",
		},
	},

	// =========================================================================
	// Source Errors (SRC002-SRC005)
	// =========================================================================
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "File is not a valid CSV",
			Action:  "Ensure the file is delimited consistently and has a header row",
			Code:    "SRC002",
		},
	},
	{
		pattern: "invalid geojson",
		msg: UserMessage{
			Message: "File is not a valid GeoJSON feature collection",
			Action:  "Export the layer as a GeoJSON FeatureCollection",
			Code:    "SRC003",
		},
	},
	{
		pattern: "unknown encoding",
		msg: UserMessage{
			Message: "Character encoding is not supported",
			Action:  "Use utf-8, windows-1252 or iso-8859-1",
			Code:    "SRC004",
		},
	},
	{
		pattern: "empty input",
		msg: UserMessage{
			Message: "The input has no rows",
			Action:  "Provide a header row and at least one record",
			Code:    "SRC005",
		},
	},
}

// kindMessages gives the user message of each validation error kind.
var kindMessages = map[ErrorKind]UserMessage{
	KindMissing:  {Message: "Required field is empty", Action: "Fill in every required field", Code: "VAL003"},
	KindLength:   {Message: "Text is too long", Action: "Shorten the value to the field's maximum length", Code: "VAL005"},
	KindDomain:   {Message: "Value is not in the allowed list", Action: "Use a code, description or name from the domain", Code: "VAL006"},
	KindRange:    {Message: "Value is out of range", Action: "Check units and the field's bounds", Code: "VAL007"},
	KindRule:     {Message: "Business rule violated", Action: "Check the related fields of the record", Code: "VAL008"},
	KindGeometry: {Message: "Geometry is not valid for this record type", Action: "Check the geometry type and vertices", Code: "VAL009"},
}

// defaultMessage is returned when nothing matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts an error to a user-friendly message.
//
// Example:
//
//	_, err := core.Lookup("Nope")
//	msg := core.MapError(err)
//	// msg.Code == "SCH001"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, s := range sentinelMessages {
		if errors.Is(err, s.err) {
			return s.msg
		}
	}

	var ve ValidationError
	if errors.As(err, &ve) {
		return MessageFor(ve)
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// MessageFor returns the user message of a validation error. Type errors are
// refined by their text (date or number).
func MessageFor(e ValidationError) UserMessage {
	if e.Kind == KindType {
		lower := strings.ToLower(e.Message)
		for _, ep := range errorPatterns {
			if strings.Contains(lower, ep.pattern) {
				return ep.msg
			}
		}
		return UserMessage{Message: "Value has the wrong type", Action: "Check the field's expected type", Code: "VAL002"}
	}
	if msg, ok := kindMessages[e.Kind]; ok {
		return msg
	}
	return defaultMessage
}

// Code returns the support code of a validation error.
func (e ValidationError) Code() string {
	return MessageFor(e).Code
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to a specific message rather than
// the ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError wraps a technical error with a user-friendly message.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err to a UserError. Returns nil for a nil error.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{Technical: err, User: MapError(err)}
}
