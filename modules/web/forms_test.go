package web

import (
	"strings"
	"testing"
)

func TestSignupForm_Validate(t *testing.T) {
	tests := []struct {
		name    string
		form    SignupForm
		wantErr string // substring of the first error message, "" means valid
	}{
		{
			name: "valid",
			form: SignupForm{Username: "lenil", Password1: "longenough", Password2: "longenough"},
		},
		{
			name:    "missing username",
			form:    SignupForm{Username: "", Password1: "longenough", Password2: "longenough"},
			wantErr: "Username is required",
		},
		{
			name:    "password mismatch",
			form:    SignupForm{Username: "lenil", Password1: "longenough", Password2: "different1"},
			wantErr: "The password does not match",
		},
		{
			name:    "short password",
			form:    SignupForm{Username: "lenil", Password1: "short", Password2: "short"},
			wantErr: "at least 8 characters",
		},
		{
			name:    "over bcrypt limit",
			form:    SignupForm{Username: "lenil", Password1: strings.Repeat("a", 73), Password2: strings.Repeat("a", 73)},
			wantErr: "at most 72 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()
			got := firstMessage(errs)
			if tt.wantErr == "" {
				if len(errs) != 0 {
					t.Errorf("Validate() = %v, want no errors", errs)
				}
				return
			}
			if !strings.Contains(got, tt.wantErr) {
				t.Errorf("Validate() first message = %q, want containing %q", got, tt.wantErr)
			}
		})
	}
}

func TestTodoForm_Validate(t *testing.T) {
	tests := []struct {
		name    string
		form    TodoForm
		wantErr string
	}{
		{
			name: "valid",
			form: TodoForm{Title: "Buy milk", Memo: "optional"},
		},
		{
			name: "memo optional",
			form: TodoForm{Title: "Buy milk"},
		},
		{
			name:    "empty title",
			form:    TodoForm{Title: ""},
			wantErr: "Title is required",
		},
		{
			name:    "title too long",
			form:    TodoForm{Title: strings.Repeat("x", 101)},
			wantErr: "at most 100 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()
			got := firstMessage(errs)
			if tt.wantErr == "" {
				if len(errs) != 0 {
					t.Errorf("Validate() = %v, want no errors", errs)
				}
				return
			}
			if !strings.Contains(got, tt.wantErr) {
				t.Errorf("Validate() first message = %q, want containing %q", got, tt.wantErr)
			}
		})
	}
}
