package template

import (
	"fmt"
	"strings"

	"github.com/avikstrom/siteconf/internal/errors"
)

// isNameChar reports whether c may appear in a placeholder name.
func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '.' || c == '-'
}

// walk scans tmpl and calls literal for plain text runs and ref for each
// placeholder name. Placeholders have the form %(name)s; %% is a literal
// percent sign. Any other use of % is a syntax error.
func walk(tmpl string, literal func(string), ref func(name string) error) error {
	for {
		i := strings.IndexByte(tmpl, '%')
		if i < 0 {
			if tmpl != "" {
				literal(tmpl)
			}
			return nil
		}
		if i > 0 {
			literal(tmpl[:i])
		}
		rest := tmpl[i:]

		if len(rest) < 2 {
			return errors.BadTemplate("template ends with a bare percent sign")
		}
		switch rest[1] {
		case '%':
			literal("%")
			tmpl = rest[2:]
		case '(':
			end := strings.IndexByte(rest, ')')
			if end < 0 {
				return errors.BadTemplate("unterminated placeholder")
			}
			name := rest[2:end]
			if name == "" {
				return errors.BadTemplate("placeholder with empty name")
			}
			for j := 0; j < len(name); j++ {
				if !isNameChar(name[j]) {
					return errors.BadTemplate(fmt.Sprintf("invalid character %q in placeholder name %q", name[j], name))
				}
			}
			if end+1 >= len(rest) || rest[end+1] != 's' {
				return errors.BadTemplate(fmt.Sprintf("placeholder %q is not followed by the s conversion", name))
			}
			if err := ref(name); err != nil {
				return err
			}
			tmpl = rest[end+2:]
		default:
			return errors.BadTemplate(fmt.Sprintf("stray percent sign before %q", rest[1]))
		}
	}
}

// Expand substitutes every placeholder in tmpl with its value from bindings.
// Expansion fails before producing any output if a referenced binding is
// missing or empty, or if the template syntax is malformed. The result is
// deterministic: the same template and bindings always yield the same text.
func Expand(tmpl string, bindings map[string]string) (string, error) {
	// Validate first so a syntax or binding error never emits partial text.
	if err := walk(tmpl, func(string) {}, func(name string) error {
		if bindings[name] == "" {
			return errors.MissingBinding(name)
		}
		return nil
	}); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(tmpl))
	_ = walk(tmpl, func(s string) { b.WriteString(s) }, func(name string) error {
		b.WriteString(bindings[name])
		return nil
	})
	return b.String(), nil
}

// Placeholders returns the distinct placeholder names referenced by tmpl,
// in order of first appearance.
func Placeholders(tmpl string) ([]string, error) {
	var names []string
	seen := make(map[string]bool)
	err := walk(tmpl, func(string) {}, func(name string) error {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Missing returns the placeholder names in tmpl that have no value in
// bindings, in order of first appearance. Unlike Expand, it collects every
// missing key instead of stopping at the first one.
func Missing(tmpl string, bindings map[string]string) ([]string, error) {
	names, err := Placeholders(tmpl)
	if err != nil {
		return nil, err
	}
	var missing []string
	for _, name := range names {
		if bindings[name] == "" {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
