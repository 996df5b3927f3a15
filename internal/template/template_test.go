package template

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/avikstrom/siteconf/internal/errors"
)

func testBindings() map[string]string {
	return map[string]string{
		"installation.system.hostname":   "example.com",
		"installation.paths.run_dir":     "/var/run/app",
		"installation.paths.install_dir": "/opt/app",
	}
}

func TestExpandDefault(t *testing.T) {
	result, err := Expand(Default(), testBindings())
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	contains := []string{
		"server_name example.com;",
		"uwsgi_pass unix:///var/run/app/main/sockets/uwsgi.unix;",
		"alias /opt/app/resources/;",
		"listen 80;",
		"listen [::]:80;",
		"expires 30d;",
		"text/css css;",
		"text/javascript js;",
		"image/png png;",
	}
	for _, expected := range contains {
		if !strings.Contains(result, expected) {
			t.Errorf("expected output to contain %q", expected)
		}
	}

	// No placeholder may survive substitution
	if strings.Contains(result, "%(") {
		t.Error("rendered output still contains a placeholder")
	}
}

func TestExpandBalancedBraces(t *testing.T) {
	result, err := Expand(Default(), testBindings())
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	if open, close := strings.Count(result, "{"), strings.Count(result, "}"); open != close {
		t.Errorf("unbalanced braces: %d open, %d close", open, close)
	}
}

func TestExpandDeterministic(t *testing.T) {
	first, err := Expand(Default(), testBindings())
	if err != nil {
		t.Fatalf("first Expand failed: %v", err)
	}
	second, err := Expand(Default(), testBindings())
	if err != nil {
		t.Fatalf("second Expand failed: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated renders differ (-first +second):\n%s", diff)
	}
}

func TestExpandMissingBinding(t *testing.T) {
	for _, key := range []string{
		"installation.system.hostname",
		"installation.paths.run_dir",
		"installation.paths.install_dir",
	} {
		t.Run(key, func(t *testing.T) {
			bindings := testBindings()
			delete(bindings, key)

			result, err := Expand(Default(), bindings)
			if err == nil {
				t.Fatal("expected error for missing binding")
			}
			if !errors.Is(err, errors.ErrMissingBinding) {
				t.Errorf("expected ErrMissingBinding, got %v", err)
			}
			if !strings.Contains(err.Error(), key) {
				t.Errorf("error %q does not name the missing key %s", err, key)
			}
			if result != "" {
				t.Error("expected no output on failed render")
			}
		})
	}
}

func TestExpandEmptyValueIsMissing(t *testing.T) {
	bindings := testBindings()
	bindings["installation.system.hostname"] = ""

	if _, err := Expand(Default(), bindings); !errors.Is(err, errors.ErrMissingBinding) {
		t.Errorf("expected ErrMissingBinding for empty value, got %v", err)
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name     string
		tmpl     string
		bindings map[string]string
		want     string
		wantErr  bool
	}{
		{
			name:     "plain text",
			tmpl:     "no placeholders here",
			bindings: nil,
			want:     "no placeholders here",
		},
		{
			name:     "single placeholder",
			tmpl:     "server_name %(host)s;",
			bindings: map[string]string{"host": "example.com"},
			want:     "server_name example.com;",
		},
		{
			name:     "repeated placeholder",
			tmpl:     "%(x)s and %(x)s",
			bindings: map[string]string{"x": "a"},
			want:     "a and a",
		},
		{
			name:     "escaped percent",
			tmpl:     "100%% static",
			bindings: nil,
			want:     "100% static",
		},
		{
			name:     "placeholder adjacent to escape",
			tmpl:     "%%%(x)s%%",
			bindings: map[string]string{"x": "v"},
			want:     "%v%",
		},
		{
			name:     "empty template",
			tmpl:     "",
			bindings: nil,
			want:     "",
		},
		{
			name:     "missing binding",
			tmpl:     "%(absent)s",
			bindings: map[string]string{"other": "v"},
			wantErr:  true,
		},
		{
			name:     "trailing percent",
			tmpl:     "50%",
			bindings: nil,
			wantErr:  true,
		},
		{
			name:     "stray percent",
			tmpl:     "%x",
			bindings: nil,
			wantErr:  true,
		},
		{
			name:     "unterminated placeholder",
			tmpl:     "%(host",
			bindings: map[string]string{"host": "x"},
			wantErr:  true,
		},
		{
			name:     "missing conversion",
			tmpl:     "%(host)d",
			bindings: map[string]string{"host": "x"},
			wantErr:  true,
		},
		{
			name:     "empty placeholder name",
			tmpl:     "%()s",
			bindings: nil,
			wantErr:  true,
		},
		{
			name:     "invalid name character",
			tmpl:     "%(a b)s",
			bindings: nil,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.tmpl, tt.bindings)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expand(%q) error = %v, wantErr %v", tt.tmpl, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.tmpl, got, tt.want)
			}
		})
	}
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		want    []string
		wantErr bool
	}{
		{
			name: "default template",
			tmpl: Default(),
			want: []string{
				"installation.system.hostname",
				"installation.paths.run_dir",
				"installation.paths.install_dir",
			},
		},
		{
			name: "duplicates collapsed",
			tmpl: "%(a)s %(b)s %(a)s",
			want: []string{"a", "b"},
		},
		{
			name: "no placeholders",
			tmpl: "static text",
			want: nil,
		},
		{
			name:    "malformed",
			tmpl:    "%(",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Placeholders(tt.tmpl)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Placeholders() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Placeholders() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMissing(t *testing.T) {
	tmpl := "%(a)s %(b)s %(c)s"

	missing, err := Missing(tmpl, map[string]string{"b": "set"})
	if err != nil {
		t.Fatalf("Missing failed: %v", err)
	}

	want := []string{"a", "c"}
	if diff := cmp.Diff(want, missing); diff != "" {
		t.Errorf("Missing() mismatch (-want +got):\n%s", diff)
	}
}

func TestMissingComplete(t *testing.T) {
	missing, err := Missing(Default(), testBindings())
	if err != nil {
		t.Fatalf("Missing failed: %v", err)
	}
	if len(missing) != 0 {
		t.Errorf("expected no missing bindings, got %v", missing)
	}
}

func TestLoad(t *testing.T) {
	_, err := Load("/nonexistent/template.conf")
	if err == nil {
		t.Error("expected error for nonexistent template file")
	}
}
