package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestSiteErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *SiteError
		want string
	}{
		{
			name: "message only",
			err:  &SiteError{Code: ErrCodeValidation, Message: "invalid hostname"},
			want: "invalid hostname",
		},
		{
			name: "with key",
			err:  &SiteError{Code: ErrCodeMissingBinding, Message: "missing configuration value", Key: "installation.system.hostname"},
			want: "installation.system.hostname: missing configuration value",
		},
		{
			name: "with wrapped error",
			err:  &SiteError{Code: ErrCodeConfig, Message: "failed to load bindings", Err: fmt.Errorf("permission denied")},
			want: "failed to load bindings: permission denied",
		},
		{
			name: "with key and wrapped error",
			err:  &SiteError{Code: ErrCodeDriver, Message: "install failed", Key: "example.com", Err: fmt.Errorf("disk full")},
			want: "example.com: install failed: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMissingBinding(t *testing.T) {
	err := MissingBinding("installation.paths.run_dir")

	if !Is(err, ErrMissingBinding) {
		t.Error("expected MissingBinding to match ErrMissingBinding")
	}
	if !strings.Contains(err.Error(), "installation.paths.run_dir") {
		t.Errorf("expected key in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "missing configuration value") {
		t.Errorf("expected standard message, got %q", err.Error())
	}
}

func TestBadTemplate(t *testing.T) {
	err := BadTemplate("unterminated placeholder")

	if !Is(err, ErrBadTemplate) {
		t.Error("expected BadTemplate to match ErrBadTemplate")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := MissingBinding("some.key")

	if Is(err, ErrBadTemplate) {
		t.Error("MISSING_BINDING error should not match TEMPLATE sentinel")
	}
	if Is(err, fmt.Errorf("plain error")) {
		t.Error("SiteError should not match plain errors")
	}
}

func TestWrapUnwrap(t *testing.T) {
	underlying := fmt.Errorf("file not found")
	err := Wrap(ErrCodeConfig, "failed to load bindings", underlying)

	var siteErr *SiteError
	if !As(err, &siteErr) {
		t.Fatal("expected error to be a *SiteError")
	}
	if siteErr.Code != ErrCodeConfig {
		t.Errorf("expected CONFIG code, got %s", siteErr.Code)
	}
	if !Is(err, underlying) {
		t.Error("expected wrapped error to be found in chain")
	}
}

func TestWrapKey(t *testing.T) {
	underlying := fmt.Errorf("symlink exists")
	err := WrapKey(ErrCodeDriver, "example.com", underlying)

	var siteErr *SiteError
	if !As(err, &siteErr) {
		t.Fatal("expected error to be a *SiteError")
	}
	if siteErr.Key != "example.com" {
		t.Errorf("expected key example.com, got %s", siteErr.Key)
	}
}

func TestValidation(t *testing.T) {
	err := Validation("hostname cannot contain spaces")

	var siteErr *SiteError
	if !As(err, &siteErr) {
		t.Fatal("expected error to be a *SiteError")
	}
	if siteErr.Code != ErrCodeValidation {
		t.Errorf("expected VALIDATION code, got %s", siteErr.Code)
	}
}
