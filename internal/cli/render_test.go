package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderToFile(t *testing.T) {
	setupTest(t, validInstallation())

	renderOutput = filepath.Join(t.TempDir(), "example.com.conf")

	if err := runRender(renderCmd, nil); err != nil {
		t.Fatalf("runRender failed: %v", err)
	}

	data, err := os.ReadFile(renderOutput)
	if err != nil {
		t.Fatalf("rendered file not written: %v", err)
	}

	content := string(data)
	for _, expected := range []string{
		"server_name example.com;",
		"uwsgi_pass unix:///var/run/app/main/sockets/uwsgi.unix;",
		"alias /opt/app/resources/;",
	} {
		if !strings.Contains(content, expected) {
			t.Errorf("expected rendered file to contain %q", expected)
		}
	}
}

func TestRenderMissingBindingWritesNothing(t *testing.T) {
	inst := validInstallation()
	inst.System.Hostname = ""
	setupTest(t, inst)

	renderOutput = filepath.Join(t.TempDir(), "example.com.conf")

	if err := runRender(renderCmd, nil); err == nil {
		t.Fatal("expected error for missing hostname")
	}

	if _, err := os.Stat(renderOutput); !os.IsNotExist(err) {
		t.Error("expected no output file after failed render")
	}
}

func TestRenderIdempotent(t *testing.T) {
	setupTest(t, validInstallation())

	dir := t.TempDir()

	renderOutput = filepath.Join(dir, "first.conf")
	if err := runRender(renderCmd, nil); err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	first, err := os.ReadFile(renderOutput)
	if err != nil {
		t.Fatalf("failed to read first render: %v", err)
	}

	renderOutput = filepath.Join(dir, "second.conf")
	if err := runRender(renderCmd, nil); err != nil {
		t.Fatalf("second render failed: %v", err)
	}
	second, err := os.ReadFile(renderOutput)
	if err != nil {
		t.Fatalf("failed to read second render: %v", err)
	}

	if string(first) != string(second) {
		t.Error("expected identical output from repeated renders")
	}
}

func TestRenderCustomTemplate(t *testing.T) {
	setupTest(t, validInstallation())

	tmplPath := filepath.Join(t.TempDir(), "custom.conf")
	custom := "# custom site\nserver_name %(installation.system.hostname)s;\n"
	if err := os.WriteFile(tmplPath, []byte(custom), 0644); err != nil {
		t.Fatalf("failed to write template: %v", err)
	}

	templatePath = tmplPath
	renderOutput = filepath.Join(t.TempDir(), "out.conf")

	if err := runRender(renderCmd, nil); err != nil {
		t.Fatalf("runRender failed: %v", err)
	}

	data, err := os.ReadFile(renderOutput)
	if err != nil {
		t.Fatalf("rendered file not written: %v", err)
	}
	if string(data) != "# custom site\nserver_name example.com;\n" {
		t.Errorf("unexpected rendered content: %q", string(data))
	}
}

func TestRenderMissingTemplateFile(t *testing.T) {
	setupTest(t, validInstallation())

	templatePath = filepath.Join(t.TempDir(), "absent.conf")

	if err := runRender(renderCmd, nil); err == nil {
		t.Error("expected error for missing template file")
	}
}
