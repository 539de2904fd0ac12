package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/JonMunkholm/geoanla/internal/catalog"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nil error returns empty",
			err:         nil,
			wantCode:    "",
			wantMessage: "",
		},
		{
			name:        "wrapped missing reference data",
			err:         fmt.Errorf("load subdivisions: %w", catalog.ErrReferenceDataMissing),
			wantCode:    "CAT001",
			wantMessage: "Reference data is missing",
		},
		{
			name:        "unknown domain",
			err:         fmt.Errorf("%w: X.Y declares Dom_Nope", ErrDomainNotFound),
			wantCode:    "CAT002",
			wantMessage: "A record type refers to an unknown domain",
		},
		{
			name:        "unknown schema",
			err:         fmt.Errorf("%w: Nope", ErrSchemaNotFound),
			wantCode:    "SCH001",
			wantMessage: "Unknown record type",
		},
		{
			name:        "unsupported source",
			err:         fmt.Errorf("%w: int", ErrUnsupportedSource),
			wantCode:    "SRC001",
			wantMessage: "The input format is not supported",
		},
		{
			name:        "limiter timeout",
			err:         ErrTooManyBatches,
			wantCode:    "BAT001",
			wantMessage: "System is busy validating other batches",
		},
		{
			name:        "cancelled",
			err:         fmt.Errorf("read row 3: %w", context.Canceled),
			wantCode:    "BAT002",
			wantMessage: "Request was cancelled",
		},
		{
			name:        "deadline",
			err:         context.DeadlineExceeded,
			wantCode:    "BAT003",
			wantMessage: "Request timed out",
		},
		{
			name:        "evicted result",
			err:         fmt.Errorf("%w: abc", ErrResultNotFound),
			wantCode:    "BAT004",
			wantMessage: "Validation result not found",
		},
		{
			name:        "invalid csv text",
			err:         errors.New("invalid csv: bare quote in field"),
			wantCode:    "SRC002",
			wantMessage: "File is not a valid CSV",
		},
		{
			name:        "case insensitive matching",
			err:         errors.New("INVALID GEOJSON: unexpected end"),
			wantCode:    "SRC003",
			wantMessage: "File is not a valid GeoJSON feature collection",
		},
		{
			name:        "empty input",
			err:         errors.New("empty input: no header row"),
			wantCode:    "SRC005",
			wantMessage: "The input has no rows",
		},
		{
			name:        "validation error by kind",
			err:         ValidationError{Field: "IVI", Message: "must be between 0 and 300", Kind: KindRange},
			wantCode:    "VAL007",
			wantMessage: "Value is out of range",
		},
		{
			name:        "unknown error returns default",
			err:         errors.New("some random internal error"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("MapError() message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestValidationErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  ValidationError
		want string
	}{
		{"missing", ValidationError{Kind: KindMissing, Message: "missing required field"}, "VAL003"},
		{"invalid date", ValidationError{Kind: KindType, Message: "expected date: invalid date: \"mayo\""}, "VAL001"},
		{"invalid number", ValidationError{Kind: KindType, Message: "expected decimal: invalid number: \"x\""}, "VAL002"},
		{"length", ValidationError{Kind: KindLength}, "VAL005"},
		{"domain", ValidationError{Kind: KindDomain}, "VAL006"},
		{"rule", ValidationError{Kind: KindRule}, "VAL008"},
		{"geometry", ValidationError{Kind: KindGeometry}, "VAL009"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Code(); got != tt.want {
				t.Errorf("Code() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	result := FormatUserError(fmt.Errorf("%w: Nope", ErrSchemaNotFound))

	expected := "Unknown record type (Code: SCH001). List the available record types and use one of their keys"
	if result != expected {
		t.Errorf("FormatUserError() = %q, want %q", result, expected)
	}

	if got := FormatUserError(nil); got != "" {
		t.Errorf("FormatUserError(nil) = %q, want empty", got)
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error is not user facing",
			err:  nil,
			want: false,
		},
		{
			name: "known error is user facing",
			err:  errors.New("unknown encoding \"klingon\""),
			want: true,
		},
		{
			name: "unknown error is not user facing",
			err:  errors.New("random internal error xyz"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsUserFacing(tt.err)
			if got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewUserError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		if got := NewUserError(nil); got != nil {
			t.Errorf("NewUserError(nil) = %v, want nil", got)
		}
	})

	t.Run("wraps technical error with user message", func(t *testing.T) {
		techErr := fmt.Errorf("%w: Nope", ErrSchemaNotFound)
		userErr := NewUserError(techErr)

		if userErr.Error() != "Unknown record type" {
			t.Errorf("Error() = %q, want user message", userErr.Error())
		}
		if !errors.Is(userErr, ErrSchemaNotFound) {
			t.Error("Unwrap() should return original error")
		}
	})
}
