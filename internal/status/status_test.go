package status

import (
	"errors"
	"fmt"
	"testing"
)

func TestCode_String(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want string
	}{
		{"success", Success, "SUCCESS"},
		{"not found", NotFound, "NOT_FOUND"},
		{"invalid operation", InvalidOperation, "INVALID_OPERATION"},
		{"aborted", AbortedByUser, "ABORTED_BY_USER"},
		{"timeout", Timeout, "TIMEOUT"},
		{"unknown", Code(99), "UNKNOWN(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code.String() != tt.want {
				t.Errorf("String() = %v, want %v", tt.code, tt.want)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	if CodeOf(nil) != Success {
		t.Error("nil error should be Success")
	}

	err := Errorf(NotFound, "handle %d", 7)
	if CodeOf(err) != NotFound {
		t.Errorf("CodeOf = %v, want NOT_FOUND", CodeOf(err))
	}

	wrapped := fmt.Errorf("lookup failed: %w", err)
	if CodeOf(wrapped) != NotFound {
		t.Error("CodeOf should see through wrapping")
	}

	if CodeOf(errors.New("plain")) != InternalFailure {
		t.Error("plain errors map to INTERNAL_FAILURE")
	}
}

func TestErr(t *testing.T) {
	if Err(Success) != nil {
		t.Error("Err(Success) should be nil")
	}
	if !Is(Err(AbortedByUser), AbortedByUser) {
		t.Error("Err should round-trip the code")
	}
}

func TestError_Message(t *testing.T) {
	err := New(InvalidOperation, "double activation")
	want := "INVALID_OPERATION: double activation"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	bare := &Error{Code: Timeout}
	if bare.Error() != "TIMEOUT" {
		t.Errorf("bare Error() = %q", bare.Error())
	}
}
