package docfrag

import (
	"errors"
	"testing"
)

func TestErrorTypes(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "InvalidArgumentError with arg",
			err:     &InvalidArgumentError{Arg: "colors", Message: "got 2 values for 3 segments"},
			wantMsg: `invalid argument "colors": got 2 values for 3 segments`,
		},
		{
			name:    "InvalidArgumentError without arg",
			err:     &InvalidArgumentError{Message: "document is nil"},
			wantMsg: "invalid argument: document is nil",
		},
		{
			name:    "TypeMismatchError",
			err:     &TypeMismatchError{Arg: "fontSize", Value: []int{1}},
			wantMsg: `type mismatch for "fontSize": []int is neither numeric nor string`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestErrorConstructors(t *testing.T) {
	var invArg *InvalidArgumentError
	if err := NewInvalidArgumentError("x", "bad"); !errors.As(err, &invArg) {
		t.Errorf("NewInvalidArgumentError returned %T, want *InvalidArgumentError", err)
	}
	var mismatch *TypeMismatchError
	if err := NewTypeMismatchError("x", 1.5); !errors.As(err, &mismatch) {
		t.Errorf("NewTypeMismatchError returned %T, want *TypeMismatchError", err)
	}
}
