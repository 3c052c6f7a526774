package service

import (
	"errors"
	"fmt"
	"testing"

	"notes-api/internal/storage"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "field and message",
			err: &ValidationError{
				Field:   "title",
				Message: "Title is required",
			},
			want: "validation error on field title: Title is required",
		},
		{
			name: "empty field",
			err: &ValidationError{
				Field:   "",
				Message: "invalid",
			},
			want: "validation error on field : invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		msg     string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "nil error",
			err:     nil,
			msg:     "context",
			wantNil: true,
		},
		{
			name:    "wrapped error",
			err:     errors.New("original error"),
			msg:     "context",
			wantNil: false,
			wantMsg: "context: original error",
		},
		{
			name:    "empty message",
			err:     errors.New("original error"),
			msg:     "",
			wantNil: false,
			wantMsg: ": original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapError(tt.err, tt.msg)
			if tt.wantNil {
				if got != nil {
					t.Errorf("WrapError() = %v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Errorf("WrapError() = nil, want error")
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("WrapError() = %v, want %v", got.Error(), tt.wantMsg)
			}
			// Verify error wrapping
			if !errors.Is(got, tt.err) {
				t.Errorf("WrapError() should wrap original error")
			}
		})
	}
}

func TestFromStore(t *testing.T) {
	driverErr := errors.New("disk I/O error")

	tests := []struct {
		name    string
		err     error
		wantIs  []error
		wantNil bool
	}{
		{name: "nil", err: nil, wantNil: true},
		{name: "not found", err: storage.ErrNotFound, wantIs: []error{ErrNotFound}},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", storage.ErrNotFound), wantIs: []error{ErrNotFound}},
		{name: "duplicate", err: storage.ErrDuplicate, wantIs: []error{ErrConflict}},
		{name: "driver failure", err: driverErr, wantIs: []error{ErrBackend, driverErr}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fromStore(tt.err, "failed to load note")
			if tt.wantNil {
				if got != nil {
					t.Errorf("fromStore() = %v, want nil", got)
				}
				return
			}
			for _, want := range tt.wantIs {
				if !errors.Is(got, want) {
					t.Errorf("fromStore() = %v, should match %v", got, want)
				}
			}
		})
	}
}
