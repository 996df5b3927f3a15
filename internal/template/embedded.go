package template

import (
	"embed"
	"os"

	"github.com/avikstrom/siteconf/internal/errors"
)

//go:embed nginx/site.conf
var siteTemplates embed.FS

// Default returns the embedded nginx site template.
func Default() string {
	content, err := siteTemplates.ReadFile("nginx/site.conf")
	if err != nil {
		// The file is embedded at build time; failing to read it is a bug.
		panic("embedded site template missing: " + err.Error())
	}
	return string(content)
}

// Load reads a template from an external file, for installations that
// override the embedded site definition.
func Load(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeTemplate, "failed to read template file", err)
	}
	return string(content), nil
}
