package main

import (
	"testing"

	"github.com/richhaase/pr-prompt/internal/domain"
)

func TestParsePRNumber(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"42", 42, false},
		{"1", 1, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"12.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parsePRNumber(tt.arg)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parsePRNumber(%q) expected error, got %d", tt.arg, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePRNumber(%q) error = %v", tt.arg, err)
			}
			if got != tt.want {
				t.Errorf("parsePRNumber(%q) = %d, want %d", tt.arg, got, tt.want)
			}
		})
	}
}

func TestExitCode_OK(t *testing.T) {
	if err := exitCode(domain.ExitOK); err != nil {
		t.Errorf("exitCode(ExitOK) = %v, want nil", err)
	}
}

func TestExitCode_Error(t *testing.T) {
	err := exitCode(domain.ExitError)
	if err == nil {
		t.Fatal("exitCode(ExitError) = nil, want error")
	}
	exitErr, ok := err.(exitCodeError)
	if !ok {
		t.Fatalf("exitCode(ExitError) = %T, want exitCodeError", err)
	}
	if exitErr.code != domain.ExitError {
		t.Errorf("code = %v, want ExitError", exitErr.code)
	}
}

func TestExitCodeError_Messages(t *testing.T) {
	if msg := (exitCodeError{code: domain.ExitError}).Error(); msg != "run failed with error" {
		t.Errorf("Error() = %q", msg)
	}
	if msg := (exitCodeError{code: domain.ExitInterrupted}).Error(); msg != "run was interrupted" {
		t.Errorf("Error() = %q", msg)
	}
}
