package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "unknown format %q", "bmp")

	if err.Code != ErrCodeInvalidFormat {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidFormat)
	}
	expected := `INVALID_FORMAT: unknown format "bmp"`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeRender, cause, "write BINTREE1.html")

	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if err.Error() != "RENDER: write BINTREE1.html: disk full" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestIs(t *testing.T) {
	inner := New(ErrCodeFileNotFound, "tree.toml")
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeInvalidTree, "x"), ErrCodeInvalidTree, true},
		{"different code", New(ErrCodeInvalidTree, "x"), ErrCodeLaunch, false},
		{"fmt wrapped", fmt.Errorf("load: %w", inner), ErrCodeFileNotFound, true},
		{"nested coded", Wrap(ErrCodeInvalidInput, inner, "load"), ErrCodeFileNotFound, true},
		{"outer of nested", Wrap(ErrCodeInvalidInput, inner, "load"), ErrCodeInvalidInput, true},
		{"plain error", errors.New("x"), ErrCodeInternal, false},
		{"nil", nil, ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(fmt.Errorf("ctx: %w", New(ErrCodeSession, "x"))); got != ErrCodeSession {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeSession)
	}
	if got := GetCode(errors.New("x")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := Wrap(ErrCodeLaunch, errors.New("xdg-open not found"), "open BINTREE2.html")
	if got := UserMessage(err); got != "open BINTREE2.html: xdg-open not found" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
